package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/livescene/scene"
)

// Canvas describes the SVG viewport. The scene origin is at its centre.
type Canvas struct {
	Width      int
	Height     int
	Scale      float32 // Pixels per scene unit.
	Background RGB
}

// DefaultCanvas is a 400x400 viewport at 20 pixels per unit.
func DefaultCanvas() Canvas {
	return Canvas{Width: 400, Height: 400, Scale: 20, Background: Background}
}

// Hex formats the clamped colour as "#rrggbb".
func (c RGB) Hex() string {
	c = c.Clamp()
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float32) int {
	return int(math.Round(float64(v) * 255))
}

// WriteSVG writes primitives as a standalone SVG document.
//
// Negative sizes draw mirrored, which for circles and squares is the same as their absolute value.
func WriteSVG(w io.Writer, primitives []Primitive, canvas Canvas) error {
	if canvas.Width <= 0 || canvas.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", canvas.Width, canvas.Height)
	}
	if canvas.Scale <= 0 {
		return fmt.Errorf("invalid canvas scale %g", canvas.Scale)
	}
	s := &strings.Builder{}
	fmt.Fprintf(s, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		canvas.Width, canvas.Height, canvas.Width, canvas.Height)
	fmt.Fprintf(s, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", canvas.Background.Hex())
	for _, prim := range primitives {
		cx := float32(canvas.Width)/2 + prim.Center.X*canvas.Scale
		cy := float32(canvas.Height)/2 - prim.Center.Y*canvas.Scale
		w := abs(prim.Width) * canvas.Scale
		h := abs(prim.Height) * canvas.Scale
		switch prim.Shape {
		case scene.CircleShape:
			fmt.Fprintf(s, `  <ellipse cx="%s" cy="%s" rx="%s" ry="%s" fill="%s"/>`+"\n",
				num(cx), num(cy), num(w/2), num(h/2), prim.Color.Hex())
		case scene.SquareShape:
			fmt.Fprintf(s, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
				num(cx-w/2), num(cy-h/2), num(w), num(h), prim.Color.Hex())
		default:
			return fmt.Errorf("unsupported shape %s", prim.Shape)
		}
	}
	s.WriteString("</svg>\n")
	_, err := io.WriteString(w, s.String())
	return err
}

func num(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
