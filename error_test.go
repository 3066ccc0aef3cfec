package scene_test

import (
	"errors"
	"fmt"
	"testing"

	require "github.com/alecthomas/assert/v2"

	"github.com/livescene/scene"
)

func TestUnboundVariableError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &scene.UnboundVariableError{Name: "y"})
	require.EqualError(t, err, `wrapped: unbound variable "y"`)
	require.True(t, errors.Is(err, scene.ErrUnboundVariable))
	require.False(t, errors.Is(err, scene.ErrTooManyLeaves))
	require.False(t, scene.IsSyntaxError(err))
}

func TestPartialParseErrorMessage(t *testing.T) {
	_, err := scene.ParseString("circle\n  ) junk\nmore")
	require.Error(t, err)
	require.True(t, scene.IsSyntaxError(err))
	require.EqualError(t, err, `2:3: unexpected operator ")" (expected a statement)`)

	var partial *scene.PartialParseError
	require.True(t, errors.As(err, &partial))
	require.Equal(t, ") junk\nmore", partial.Remaining)
	require.Equal(t, `unexpected operator ")" (expected a statement)`, partial.Message())
	require.Equal(t, 2, partial.Position().Line)
}

func TestPartialParseErrorReportsDeepestFailure(t *testing.T) {
	_, err := scene.ParseString("for 3 {\n  circle\n  move 1\n}")
	require.Error(t, err)
	var partial *scene.PartialParseError
	require.True(t, errors.As(err, &partial))
	require.Equal(t, "for 3 {\n  circle\n  move 1\n}", partial.Remaining)
	require.Equal(t, 1, partial.Pos.Line)
	// The underlying error points into the loop body, where parsing got furthest.
	var syntax scene.Error
	require.True(t, errors.As(partial.Err, &syntax))
	require.Equal(t, 3, syntax.Position().Line)
}

func TestPartialParseErrorWithoutCause(t *testing.T) {
	err := &scene.PartialParseError{Remaining: "bogus!!\nmore"}
	require.Equal(t, `unexpected "bogus!!"`, err.Message())
	require.NoError(t, err.Unwrap())
}
