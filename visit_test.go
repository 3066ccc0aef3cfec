package scene_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/livescene/scene"
)

func TestIdentifiers(t *testing.T) {
	program := mustParse(t, `
r: a + b
for 2 {
  move r, sin(c)
  if d > 0 and r < 1
    circle e
  else
    color f f f
  end if
}
`)
	require.Equal(t, []string{"a", "b", "c", "d", "e", "f", "r"}, scene.Identifiers(program))
}

func TestVisitPrune(t *testing.T) {
	program := mustParse(t, "for 2 { circle x }\nsquare y")
	seen := []string{}
	err := scene.Visit(program, func(node interface{}, next func() error) error {
		switch n := node.(type) {
		case scene.For:
			return nil
		case scene.Variable:
			seen = append(seen, n.Name)
		}
		return next()
	})
	require.NoError(t, err)
	require.Equal(t, []string{"y", "y"}, seen)
}

func TestVisitStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	count := 0
	err := scene.Visit(mustParse(t, "circle a\ncircle b"), func(node interface{}, next func() error) error {
		if _, ok := node.(scene.Variable); ok {
			count++
			return stop
		}
		return next()
	})
	require.Equal(t, stop, err)
	require.Equal(t, 1, count)
}

func TestCheck(t *testing.T) {
	program := mustParse(t, `
x: x + 1
square y
y: 2
circle y
if true
  z: 1
end if
circle z
move w, w
`)
	errs := scene.Check(program)
	names := []string{}
	for _, err := range errs {
		var unbound *scene.UnboundVariableError
		require.True(t, errors.As(err, &unbound))
		names = append(names, unbound.Name)
	}
	require.Equal(t, []string{"x", "y", "w"}, names)
}

func TestCheckClean(t *testing.T) {
	require.Empty(t, scene.Check(mustParse(t, "i: 0\nfor 3 { i: i + 1\ncircle i }")))
}
