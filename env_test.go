package scene_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/livescene/scene"
)

func TestEnvironment(t *testing.T) {
	env := scene.NewEnvironment()
	_, ok := env.Get("x")
	require.False(t, ok)

	env.Set("y", 2)
	env.Set("x", 1)
	env.Set("x", 3)
	require.Equal(t, 2, env.Len())
	value, ok := env.Get("x")
	require.True(t, ok)
	require.Equal(t, float32(3), value)
	require.Equal(t, []string{"x", "y"}, env.Names())
	require.Equal(t, "x=3 y=2", env.String())
}

func TestEnvironmentEachStops(t *testing.T) {
	env := scene.NewEnvironment()
	for _, name := range []string{"c", "a", "b"} {
		env.Set(name, 0)
	}
	seen := []string{}
	env.Each(func(name string, _ float32) bool {
		seen = append(seen, name)
		return name != "b"
	})
	require.Equal(t, []string{"a", "b"}, seen)
}

func TestEnvironmentClone(t *testing.T) {
	env := scene.NewEnvironment()
	env.Set("x", 1)
	clone := env.Clone()
	clone.Set("x", 2)
	clone.Set("z", 9)

	value, _ := env.Get("x")
	require.Equal(t, float32(1), value)
	require.Equal(t, 1, env.Len())
	require.Equal(t, "x=2 z=9", clone.String())
}
