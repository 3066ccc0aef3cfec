package scene_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/livescene/scene"
)

const flower = `# a flower
petals: 6
r: 2 + sin(time)
color 1 0.5 0
for 6 {
  circle r
  move cos(time)*r, -1
}
reset_m
if r > 2.5 and (time < 10 or petals = 6)
  square r r/2
else if r>=2
  square -1
else
  circle
end if
`

func TestFormatGolden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "format", []byte(scene.Format(mustParse(t, flower))))
}

func TestFormatRoundTrip(t *testing.T) {
	sources := []string{
		flower,
		"x: 1\nsquare x x + 3",
		"square 1 -2\nsquare -1 (1 - 2)",
		"x: 8 - (4 - 2)\ny: (8 / 4) / 2\nz: 8 / (4 * 2)",
		"for -3 {\n}\nfor 2 { for 2 { circle 0.25 } }",
		"if false circle\nelse\nif true square\nend if\nend if",
		"if (a < 1 or b < 2) and c < 3 circle end if",
		"if a < 1 or b < 2 and c < 3 circle end if",
		"if (x + 1) * 2 >= 0 - y circle end if",
		"move -1, 0 - (2)\ncolor 1e-3 (0-1) 1\ncolor 1 (-1) 1",
		"x: 1e39\nsquare -1e40 (-1e39)",
	}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			program := mustParse(t, src)
			formatted := scene.Format(program)
			reparsed, err := scene.ParseString(formatted)
			require.NoError(t, err, formatted)
			require.Equal(t, program, reparsed, formatted)
			require.Equal(t, formatted, scene.Format(reparsed))
		})
	}
}

func TestFormatOperation(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"(1 + 2) + 3", "1 + 2 + 3"},
		{"1 + (2 + 3)", "1 + (2 + 3)"},
		{"(1 + 2) * 3", "(1 + 2) * 3"},
		{"1 - (2 * 3)", "1 - 2 * 3"},
		{"sin((time))", "sin(time)"},
		{"17.22", "17.22"},
		{"2e45", "1e39"},
		{"x * -5e50", "x * -1e39"},
	}
	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			require.Equal(t, test.expected, scene.FormatOperation(mustParseExpr(t, test.src)))
		})
	}
}

func TestDump(t *testing.T) {
	program := mustParse(t, "x: 1\nmove x, 2\ncolor 1 1 1\nreset_m")
	require.Equal(t, "x := 1; move(x, 2); color(1, 1, 1); reset_m", scene.Dump(program))
	require.Equal(t, "<nil>", scene.Dump(nil))
}
