package scene

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/livescene/scene/lexer"
)

// Error represents a positioned error while parsing.
//
// Syntax errors and *PartialParseError both satisfy it.
type Error = participle.Error

var (
	// ErrUnboundVariable is matched by errors.Is for every *UnboundVariableError.
	ErrUnboundVariable = errors.New("unbound variable")
	// ErrBooleanOperand is returned when a boolean literal is used as a number.
	ErrBooleanOperand = errors.New("boolean used as a number")
	// ErrConditionOperand is returned when a condition is used as a number.
	ErrConditionOperand = errors.New("condition used as a number")
	// ErrArithmeticPredicate is returned when an arithmetic expression is used as a condition.
	ErrArithmeticPredicate = errors.New("arithmetic expression used as a condition")
	// ErrTooManyLeaves is returned when a pass exceeds the MaxLeaves limit.
	ErrTooManyLeaves = errors.New("too many leaf commands")
	// ErrTooManySteps is returned when a pass exceeds the MaxSteps budget.
	ErrTooManySteps = errors.New("too many evaluation steps")
)

// UnboundVariableError is returned when evaluation references a name that no earlier Declaration
// in the same pass has bound.
//
// It aborts the whole pass.
type UnboundVariableError struct {
	Name string
}

func (u *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %q", u.Name)
}

// Is lets errors.Is(err, ErrUnboundVariable) match.
func (u *UnboundVariableError) Is(target error) bool { return target == ErrUnboundVariable }

// PartialParseError is returned by ParseString when a prefix of the input parsed but the rest did
// not.
type PartialParseError struct {
	// Remaining is the unconsumed input, starting at the first token that could not be parsed.
	Remaining string
	// Pos of the first unconsumed token.
	Pos lexer.Position
	// Err is the furthest syntax error encountered, if any.
	Err error
}

func (p *PartialParseError) Error() string {
	if p.Err != nil {
		return p.Err.Error()
	}
	return participle.Errorf(p.Pos, "%s", p.Message()).Error()
}

// Message without position information.
func (p *PartialParseError) Message() string {
	var perr Error
	if errors.As(p.Err, &perr) {
		return perr.Message()
	}
	return fmt.Sprintf("unexpected %q", firstLine(p.Remaining))
}

// Position where parsing stopped.
func (p *PartialParseError) Position() lexer.Position { return p.Pos }

func (p *PartialParseError) Unwrap() error { return p.Err }

// IsSyntaxError returns true if err is a parse failure, as opposed to an evaluation failure.
func IsSyntaxError(err error) bool {
	var perr Error
	return errors.As(err, &perr)
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' || r == '\r' {
			return s[:i]
		}
	}
	return s
}
