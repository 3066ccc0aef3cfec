package host

import (
	"errors"
	"testing"

	require "github.com/alecthomas/assert/v2"

	"github.com/livescene/scene"
)

func TestSessionAcceptsCompleteParse(t *testing.T) {
	s := NewSession(scene.MustNewParser())
	require.Equal(t, 0, len(s.Program()))
	require.NoError(t, s.Update("x: 1\ncircle x"))
	require.Equal(t, 2, len(s.Program()))
	require.Equal(t, 1, s.Generation())
	require.NoError(t, s.Diagnostic())
}

func TestSessionKeepsProgramOnRemainder(t *testing.T) {
	s := NewSession(scene.MustNewParser())
	require.NoError(t, s.Update("x: 1\ncircle x"))

	err := s.Update("x: 1\n bogus!!")
	var partial *scene.PartialParseError
	require.True(t, errors.As(err, &partial))
	require.Equal(t, "bogus!!", partial.Remaining)
	require.Equal(t, err, s.Diagnostic())
	require.Equal(t, "x: 1\ncircle x", s.Source())
	require.Equal(t, 1, s.Generation())

	res, err := s.Frame(0)
	require.NoError(t, err)
	require.Equal(t, []scene.Leaf{scene.ShapeLeaf{Shape: scene.CircleShape, Width: 1, Height: 1}}, res.Leaves)

	require.NoError(t, s.Update("square 2"))
	require.NoError(t, s.Diagnostic())
	require.Equal(t, 2, s.Generation())
}

func TestSessionFrameErrors(t *testing.T) {
	s := NewSession(scene.MustNewParser(), scene.MaxLeaves(2))
	require.NoError(t, s.Update("square y"))
	_, err := s.Frame(0)
	require.IsError(t, err, scene.ErrUnboundVariable)

	require.NoError(t, s.Update("for 3 { circle }"))
	_, err = s.Frame(0)
	require.IsError(t, err, scene.ErrTooManyLeaves)
}

func TestSessionFrameUsesTime(t *testing.T) {
	s := NewSession(scene.MustNewParser())
	require.NoError(t, s.Update("circle time + 1"))
	res, err := s.Frame(2)
	require.NoError(t, err)
	require.Equal(t, "circle 3", res.Leaves[0].String())
}

func TestSessionFrameStepBudget(t *testing.T) {
	s := NewSession(scene.MustNewParser(), scene.MaxSteps(100))
	require.NoError(t, s.Update("for 1000 { x: 1 }"))
	_, err := s.Frame(0)
	require.IsError(t, err, scene.ErrTooManySteps)

	require.NoError(t, s.Update("for 10 { x: 1 }"))
	_, err = s.Frame(0)
	require.NoError(t, err)
}
