package scene

import (
	"fmt"
	"io"
	"strings"
)

// A Parser for scene source text.
//
// A Parser holds only configuration and is safe for concurrent use.
type Parser struct {
	filename string
	trace    io.Writer
}

// NewParser creates a Parser configured with the given options.
func NewParser(options ...Option) (*Parser, error) {
	p := &Parser{}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustNewParser calls NewParser and panics on error.
func MustNewParser(options ...Option) *Parser {
	p, err := NewParser(options...)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseExpr parses a single arithmetic expression from the start of src.
func (p *Parser) ParseExpr(src string) (remaining string, expr Operation, err error) {
	ctx, err := newParseContext(p, src)
	if err != nil {
		return src, nil, err
	}
	expr, err = ctx.parseExpr()
	if err != nil {
		return src, nil, err
	}
	return ctx.Remaining(), expr, nil
}

// ParseBoolExpr parses a single boolean expression from the start of src.
func (p *Parser) ParseBoolExpr(src string) (remaining string, expr Operation, err error) {
	ctx, err := newParseContext(p, src)
	if err != nil {
		return src, nil, err
	}
	expr, err = ctx.parseBoolExpr()
	if err != nil {
		return src, nil, err
	}
	return ctx.Remaining(), expr, nil
}

// ParseStatement parses a single statement from the start of src, after any leading whitespace.
func (p *Parser) ParseStatement(src string) (remaining string, cmd Command, err error) {
	ctx, err := newParseContext(p, src)
	if err != nil {
		return src, nil, err
	}
	ctx.SkipNewlines()
	cmd, err = ctx.parseStatement()
	if err != nil {
		return src, nil, err
	}
	return ctx.Remaining(), cmd, nil
}

// ParseProgram parses as many statements as possible from src.
//
// It never fails. If remaining is not empty, parsing stopped at the start of remaining because no
// statement matched there.
func (p *Parser) ParseProgram(src string) (remaining string, program []Command) {
	remaining, program, _ = p.parseProgram(src)
	return remaining, program
}

// ParseString parses src as a complete program.
//
// If any input is left unconsumed a *PartialParseError is returned along with the commands that did
// parse.
func (p *Parser) ParseString(src string) ([]Command, error) {
	remaining, program, err := p.parseProgram(src)
	if remaining == "" {
		return program, nil
	}
	return program, err
}

func (p *Parser) parseProgram(src string) (string, []Command, error) {
	ctx, err := newParseContext(p, src)
	if err != nil {
		return src, []Command{}, &PartialParseError{Remaining: src, Err: err}
	}
	program := ctx.parseCommands()
	remaining := ctx.Remaining()
	if remaining == "" {
		return "", program, nil
	}
	stop := ctx.Peek()
	perr := &PartialParseError{Remaining: remaining, Pos: stop.Pos}
	if ctx.deepest != nil {
		perr.Err = ctx.deepest
	} else {
		perr.Err = ctx.Unexpected("a statement")
	}
	return remaining, program, perr
}

// String returns a short description of the parser configuration.
func (p *Parser) String() string {
	opts := []string{}
	if p.filename != "" {
		opts = append(opts, fmt.Sprintf("filename=%q", p.filename))
	}
	if p.trace != nil {
		opts = append(opts, "trace")
	}
	return "Parser(" + strings.Join(opts, ", ") + ")"
}
