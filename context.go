package scene

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/livescene/scene/lexer"
)

// Context for a single parse.
type parseContext struct {
	*lexer.PeekingLexer

	src   string
	trace io.Writer
	depth int

	// Furthest syntax error seen so far. Ties go to the most recent.
	deepest       error
	deepestCursor int
}

func newParseContext(p *Parser, src string) (*parseContext, error) {
	plex, err := lexer.Upgrade(p.filename, src)
	if err != nil {
		return nil, err
	}
	return &parseContext{
		PeekingLexer:  plex,
		src:           src,
		trace:         p.trace,
		deepestCursor: -1,
	}, nil
}

// Keyword consumes the next token if it is the given reserved word.
func (c *parseContext) Keyword(kw string) bool {
	tok := c.Peek()
	if tok.Type == lexer.Ident && tok.Value == kw {
		c.Next()
		return true
	}
	return false
}

// Operator consumes the next token if it is one of ops, returning the matched operator.
func (c *parseContext) Operator(ops ...string) (string, bool) {
	tok := c.Peek()
	if tok.Type != lexer.Operator {
		return "", false
	}
	for _, op := range ops {
		if tok.Value == op {
			c.Next()
			return op, true
		}
	}
	return "", false
}

// SkipNewlines consumes any newline tokens.
func (c *parseContext) SkipNewlines() {
	for c.Peek().Type == lexer.Newline {
		c.Next()
	}
}

// Remaining source text, starting at the next unconsumed token. It is empty at EOF.
func (c *parseContext) Remaining() string {
	tok := c.Peek()
	if tok.EOF() {
		return ""
	}
	return c.src[tok.Pos.Offset:]
}

// Unexpected records and returns a syntax error at the next token.
func (c *parseContext) Unexpected(expected string) error {
	tok := c.Peek()
	err := participle.Errorf(tok.Pos, "unexpected %s (expected %s)", lexer.Describe(*tok), expected)
	if cursor := c.MakeCheckpoint().Cursor(); cursor >= c.deepestCursor {
		c.deepest = err
		c.deepestCursor = cursor
	}
	return err
}

// Deepest returns the furthest syntax error recorded during the parse, or fallback if none was.
func (c *parseContext) Deepest(fallback error) error {
	if c.deepest != nil {
		return c.deepest
	}
	return fallback
}

// Enter traces entry into a production. The returned function must be called on exit.
func (c *parseContext) Enter(production string) func() {
	if c.trace == nil {
		return func() {}
	}
	fmt.Fprintf(c.trace, "%s%s %q\n", strings.Repeat(" ", c.depth*2), production, c.Peek().Value)
	c.depth++
	return func() { c.depth-- }
}
