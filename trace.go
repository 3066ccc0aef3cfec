package scene

import "io"

// Trace the parse to "w".
//
// Each production is written on entry, indented by nesting depth, along with the token it starts at.
func Trace(w io.Writer) Option {
	return func(p *Parser) error {
		p.trace = w
		return nil
	}
}
