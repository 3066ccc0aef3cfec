package scene

import "fmt"

// ShapeKind identifies the primitive a ShapeLeaf draws.
type ShapeKind int

// Shape kinds.
const (
	CircleShape ShapeKind = iota
	SquareShape
)

func (s ShapeKind) String() string {
	switch s {
	case CircleShape:
		return "circle"
	case SquareShape:
		return "square"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(s))
}

// Leaf is a fully resolved command handed to a renderer.
//
// Implementations are ShapeLeaf, MoveLeaf, ColorLeaf and ResetLeaf.
type Leaf interface {
	leaf()
	String() string
}

// ShapeLeaf draws a shape at the cursor. A circle has Width == Height.
type ShapeLeaf struct {
	Shape  ShapeKind
	Width  float32
	Height float32
}

// MoveLeaf offsets the cursor.
type MoveLeaf struct {
	DX float32
	DY float32
}

// ColorLeaf sets the current color. Channels are not clamped.
type ColorLeaf struct {
	R, G, B float32
}

// ResetLeaf moves the cursor back to the origin.
type ResetLeaf struct{}

func (ShapeLeaf) leaf() {}
func (MoveLeaf) leaf()  {}
func (ColorLeaf) leaf() {}
func (ResetLeaf) leaf() {}

func (s ShapeLeaf) String() string {
	if s.Shape == CircleShape {
		return fmt.Sprintf("circle %g", s.Width)
	}
	return fmt.Sprintf("square %g %g", s.Width, s.Height)
}

func (m MoveLeaf) String() string  { return fmt.Sprintf("move %g, %g", m.DX, m.DY) }
func (c ColorLeaf) String() string { return fmt.Sprintf("color %g %g %g", c.R, c.G, c.B) }
func (ResetLeaf) String() string   { return "reset_m" }
