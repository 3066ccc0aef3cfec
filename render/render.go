// Package render replays resolved leaf commands against a drawing cursor.
//
// The cursor starts at the origin with a white pen. MoveLeaf offsets it, ResetLeaf returns it to the
// origin, ColorLeaf changes the pen, and every ShapeLeaf becomes a Primitive centred on the cursor.
// Coordinates are in scene units with y pointing up.
package render

import (
	"math"

	"github.com/livescene/scene"
)

// Point in scene units.
type Point struct {
	X float32
	Y float32
}

// RGB colour with channels nominally in [0, 1].
type RGB struct {
	R, G, B float32
}

var (
	// White is the initial pen colour.
	White = RGB{1, 1, 1}
	// Background behind every frame.
	Background = RGB{0.09, 0.09, 0.09}
)

// Clamp each channel to [0, 1]. NaN becomes 0.
func (c RGB) Clamp() RGB {
	return RGB{clamp(c.R), clamp(c.G), clamp(c.B)}
}

func clamp(v float32) float32 {
	switch {
	case v != v || v < 0: // NaN
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Primitive is a shape ready to draw.
type Primitive struct {
	Shape  scene.ShapeKind
	Center Point
	Width  float32
	Height float32
	Color  RGB
}

// Cursor is the mutable drawing state threaded through a replay.
type Cursor struct {
	Pos    Point
	Color  RGB
	origin Point
}

// An Option configures a replay.
type Option func(c *Cursor)

// Origin sets the starting position, which is also where ResetLeaf returns.
func Origin(p Point) Option {
	return func(c *Cursor) {
		c.origin = p
		c.Pos = p
	}
}

// Ink sets the starting pen colour.
func Ink(color RGB) Option {
	return func(c *Cursor) { c.Color = color.Clamp() }
}

// NewCursor creates a Cursor at the origin with a white pen.
func NewCursor(options ...Option) *Cursor {
	c := &Cursor{Color: White}
	for _, option := range options {
		option(c)
	}
	return c
}

// Apply a leaf to the cursor. It returns a Primitive and true only for a drawable ShapeLeaf.
//
// Shapes and moves with a non-finite operand are ignored.
func (c *Cursor) Apply(leaf scene.Leaf) (Primitive, bool) {
	switch leaf := leaf.(type) {
	case scene.ShapeLeaf:
		if !finite(leaf.Width, leaf.Height) {
			return Primitive{}, false
		}
		return Primitive{
			Shape:  leaf.Shape,
			Center: c.Pos,
			Width:  leaf.Width,
			Height: leaf.Height,
			Color:  c.Color,
		}, true

	case scene.MoveLeaf:
		if finite(leaf.DX, leaf.DY) {
			c.Pos.X += leaf.DX
			c.Pos.Y += leaf.DY
		}

	case scene.ColorLeaf:
		c.Color = RGB{leaf.R, leaf.G, leaf.B}.Clamp()

	case scene.ResetLeaf:
		c.Pos = c.origin
	}
	return Primitive{}, false
}

// Replay leaves in order from a fresh cursor and collect the shapes they draw.
func Replay(leaves []scene.Leaf, options ...Option) []Primitive {
	cursor := NewCursor(options...)
	out := []Primitive{}
	for _, leaf := range leaves {
		if prim, ok := cursor.Apply(leaf); ok {
			out = append(out, prim)
		}
	}
	return out
}

func finite(values ...float32) bool {
	for _, v := range values {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
