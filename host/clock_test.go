package host

import (
	"testing"
	"time"

	require "github.com/alecthomas/assert/v2"
)

func TestClock(t *testing.T) {
	now := time.Unix(1000, 0)
	c := NewClock(2)
	c.now = func() time.Time { return now }
	c.Reset()

	require.Equal(t, float32(0), c.Elapsed())
	now = now.Add(1500 * time.Millisecond)
	require.Equal(t, float32(3), c.Elapsed())
	c.Reset()
	now = now.Add(250 * time.Millisecond)
	require.Equal(t, float32(0.5), c.Elapsed())
}
