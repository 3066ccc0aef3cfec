package scene_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/livescene/scene"
)

func evaluate(t *testing.T, src string, time float32, options ...scene.EvalOption) []scene.Leaf {
	t.Helper()
	res, err := scene.Evaluate(mustParse(t, src), time, options...)
	require.NoError(t, err)
	return res.Leaves
}

func circle(size float32) scene.Leaf {
	return scene.ShapeLeaf{Shape: scene.CircleShape, Width: size, Height: size}
}

func square(w, h float32) scene.Leaf {
	return scene.ShapeLeaf{Shape: scene.SquareShape, Width: w, Height: h}
}

func TestFold(t *testing.T) {
	env := scene.NewEnvironment()
	env.Set("x", 3)
	tests := []struct {
		src      string
		expected float32
	}{
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"8 - 4 - 2", 2},
		{"8 / 4 / 2", 1},
		{"x * x - 1", 8},
		{"x - -1", 4},
	}
	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			actual, err := scene.Fold(mustParseExpr(t, test.src), env, 0)
			require.NoError(t, err)
			require.Equal(t, test.expected, actual)
		})
	}
}

func TestFoldTime(t *testing.T) {
	env := scene.NewEnvironment()
	actual, err := scene.Fold(mustParseExpr(t, "time * 2"), env, 1.5)
	require.NoError(t, err)
	require.Equal(t, float32(3), actual)

	actual, err = scene.Fold(mustParseExpr(t, "sin(time) + cos(time)"), env, 0)
	require.NoError(t, err)
	require.Equal(t, float32(1), actual)
}

func TestFoldIEEE(t *testing.T) {
	env := scene.NewEnvironment()
	actual, err := scene.Fold(mustParseExpr(t, "1/0"), env, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(float64(actual), 1))

	actual, err = scene.Fold(mustParseExpr(t, "0/0"), env, 0)
	require.NoError(t, err)
	require.True(t, math.IsNaN(float64(actual)))
}

func TestFoldTypeErrors(t *testing.T) {
	env := scene.NewEnvironment()
	_, err := scene.Fold(truth(true), env, 0)
	require.True(t, errors.Is(err, scene.ErrBooleanOperand))

	_, err = scene.Fold(cond(n(1), scene.Lesser, n(2)), env, 0)
	require.True(t, errors.Is(err, scene.ErrConditionOperand))

	_, err = scene.FoldBool(calc(n(1), scene.Plus, n(2)), env, 0)
	require.True(t, errors.Is(err, scene.ErrArithmeticPredicate))

	_, err = scene.FoldBool(n(1), env, 0)
	require.True(t, errors.Is(err, scene.ErrArithmeticPredicate))
}

func TestFoldBool(t *testing.T) {
	env := scene.NewEnvironment()
	env.Set("x", 2)
	tests := []struct {
		src      string
		expected bool
	}{
		{"true or false and false", true},
		{"(true or false) and false", false},
		{"x > 1", true},
		{"x < 1", false},
		{"x >= 2 and x <= 2", true},
		{"x = 2.0", true},
		{"0/0 = 0/0", false},
	}
	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			rest, op, err := scene.ParseBoolExpr(test.src)
			require.NoError(t, err)
			require.Equal(t, "", rest)
			actual, err := scene.FoldBool(op, env, 0)
			require.NoError(t, err)
			require.Equal(t, test.expected, actual)
		})
	}
}

func TestFoldBoolEvaluatesBothOperands(t *testing.T) {
	env := scene.NewEnvironment()
	for _, src := range []string{"false and y > 1", "true or y > 1"} {
		_, op, err := scene.ParseBoolExpr(src)
		require.NoError(t, err)
		_, err = scene.FoldBool(op, env, 0)
		require.True(t, errors.Is(err, scene.ErrUnboundVariable), src)
	}
}

func TestEvaluateShadowing(t *testing.T) {
	require.Equal(t, []scene.Leaf{square(2, 2)}, evaluate(t, "x: 1\nx: 2\nsquare x", 0))
}

func TestEvaluateSelfReference(t *testing.T) {
	require.Equal(t, []scene.Leaf{circle(2)}, evaluate(t, "x: 1\nx: x + 1\ncircle x", 0))
}

func TestEvaluateConditionalFirstMatch(t *testing.T) {
	leaves := evaluate(t, "if false square\nelse if true circle\nelse square 9\nend if", 0)
	require.Equal(t, []scene.Leaf{circle(1)}, leaves)

	leaves = evaluate(t, "if true circle\nelse if true square\nend if", 0)
	require.Equal(t, []scene.Leaf{circle(1)}, leaves)

	leaves = evaluate(t, "if false circle\nelse if false square\nend if", 0)
	require.Empty(t, leaves)
}

func TestEvaluateUnreachedBranchIsNotEvaluated(t *testing.T) {
	leaves := evaluate(t, "if true circle\nelse if nope > 1 square\nelse square nope\nend if", 0)
	require.Equal(t, []scene.Leaf{circle(1)}, leaves)
}

func TestEvaluateLoop(t *testing.T) {
	require.Equal(t, []scene.Leaf{circle(1), circle(1), circle(1)}, evaluate(t, "for 3 { circle }", 0))
	require.Empty(t, evaluate(t, "for 0 { circle }\nfor -2 { circle }", 0))
}

func TestEvaluateLoopCarriesBindings(t *testing.T) {
	leaves := evaluate(t, `
i: 0
for 3 {
  i: i + 1
  square i
}
circle i
`, 0)
	require.Equal(t, []scene.Leaf{square(1, 1), square(2, 2), square(3, 3), circle(3)}, leaves)
}

func TestEvaluateBindingsLeakFromBlocks(t *testing.T) {
	require.Equal(t, []scene.Leaf{circle(5)}, evaluate(t, "if true x: 5 end if\ncircle x", 0))
}

func TestEvaluateNestedBlocks(t *testing.T) {
	leaves := evaluate(t, "for 2 {\n if true\n for 2 { circle }\n end if\n}", 0)
	require.Len(t, leaves, 4)
}

func TestEvaluateCursorAndColour(t *testing.T) {
	leaves := evaluate(t, "move 1, 2\ncolor 1 0 0.5\nreset_m\nsquare 2 3", 0)
	require.Equal(t, []scene.Leaf{
		scene.MoveLeaf{DX: 1, DY: 2},
		scene.ColorLeaf{R: 1, G: 0, B: 0.5},
		scene.ResetLeaf{},
		square(2, 3),
	}, leaves)
}

func TestEvaluateTime(t *testing.T) {
	require.Equal(t, []scene.Leaf{circle(3)}, evaluate(t, "circle time * 2", 1.5))
	require.Equal(t, []scene.Leaf{circle(0)}, evaluate(t, "circle sin(time)", 0))
}

func TestEvaluateDivisionByZero(t *testing.T) {
	leaves := evaluate(t, "square 1/0 0/0", 0)
	require.Len(t, leaves, 1)
	leaf := leaves[0].(scene.ShapeLeaf)
	require.True(t, math.IsInf(float64(leaf.Width), 1))
	require.True(t, math.IsNaN(float64(leaf.Height)))
}

func TestEvaluateUnboundVariable(t *testing.T) {
	res, err := scene.Evaluate(mustParse(t, "circle\nsquare y\ncircle"), 0)
	require.Error(t, err)
	require.Nil(t, res)
	require.True(t, errors.Is(err, scene.ErrUnboundVariable))
	var unbound *scene.UnboundVariableError
	require.True(t, errors.As(err, &unbound))
	require.Equal(t, "y", unbound.Name)
	require.False(t, scene.IsSyntaxError(err))
}

func TestEvaluateUnboundInDeclarationNamesTarget(t *testing.T) {
	_, err := scene.Evaluate(mustParse(t, "x: y * 2"), 0)
	require.Error(t, err)
	require.Equal(t, `x: unbound variable "y"`, err.Error())
}

func TestEvaluateIsDeterministic(t *testing.T) {
	program := mustParse(t, "r: 1 + sin(time)\nfor 4 {\n circle r\n move r, 0\n}")
	first, err := scene.Evaluate(program, 2.5)
	require.NoError(t, err)
	second, err := scene.Evaluate(program, 2.5)
	require.NoError(t, err)
	require.Equal(t, first.Leaves, second.Leaves)
}

func TestEvaluateResultEnvironment(t *testing.T) {
	res, err := scene.Evaluate(mustParse(t, "b: 2\na: 1"), 0)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, res.Env.Names())
}

func TestMaxLeaves(t *testing.T) {
	program := mustParse(t, "for 10 { circle }")
	_, err := scene.Evaluate(program, 0, scene.MaxLeaves(5))
	require.True(t, errors.Is(err, scene.ErrTooManyLeaves))

	res, err := scene.Evaluate(program, 0, scene.MaxLeaves(10))
	require.NoError(t, err)
	require.Len(t, res.Leaves, 10)

	_, err = scene.Evaluate(program, 0, scene.MaxLeaves(-1))
	require.Error(t, err)
}

func TestMaxSteps(t *testing.T) {
	// One step for the loop, then one per iteration and one per statement in the body.
	program := mustParse(t, "for 10 { x: 1 }")
	_, err := scene.Evaluate(program, 0, scene.MaxSteps(20))
	require.True(t, errors.Is(err, scene.ErrTooManySteps))

	res, err := scene.Evaluate(program, 0, scene.MaxSteps(21))
	require.NoError(t, err)
	require.Empty(t, res.Leaves)

	_, err = scene.Evaluate(mustParse(t, "for 2000000000 { }"), 0, scene.MaxSteps(1000))
	require.True(t, errors.Is(err, scene.ErrTooManySteps))

	_, err = scene.Evaluate(program, 0, scene.MaxSteps(-1))
	require.Error(t, err)
}

func TestWithEnvironment(t *testing.T) {
	seed := scene.NewEnvironment()
	seed.Set("x", 3)
	leaves := evaluate(t, "circle x\nx: 4\ncircle x", 0, scene.WithEnvironment(seed))
	require.Equal(t, []scene.Leaf{circle(3), circle(4)}, leaves)

	value, ok := seed.Get("x")
	require.True(t, ok)
	require.Equal(t, float32(3), value)
}

func TestFlatten(t *testing.T) {
	env := scene.NewEnvironment()
	leaves, err := scene.Flatten(mustParse(t, "x: 2\ncircle x"), env, 0)
	require.NoError(t, err)
	require.Equal(t, []scene.Leaf{circle(2)}, leaves)
	value, ok := env.Get("x")
	require.True(t, ok)
	require.Equal(t, float32(2), value)
}

func TestNilEnvironment(t *testing.T) {
	program := mustParse(t, "x: 2\ncircle x")
	leaves, err := scene.Flatten(program, nil, 0)
	require.NoError(t, err)
	require.Equal(t, []scene.Leaf{circle(2)}, leaves)

	require.Equal(t, []scene.Leaf{circle(2)}, evaluate(t, "x: 2\ncircle x", 0, scene.WithEnvironment(nil)))
}

func TestLeafString(t *testing.T) {
	require.Equal(t, "circle 1", circle(1).String())
	require.Equal(t, "square 2 3", square(2, 3).String())
	require.Equal(t, "move 1, -1", scene.MoveLeaf{DX: 1, DY: -1}.String())
	require.Equal(t, "color 1 0.5 0", scene.ColorLeaf{R: 1, G: 0.5}.String())
	require.Equal(t, "reset_m", scene.ResetLeaf{}.String())
}
