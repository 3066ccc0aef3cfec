package scene

import "fmt"

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// Filename is an Option that sets the filename reported in syntax error positions.
func Filename(name string) Option {
	return func(p *Parser) error {
		p.filename = name
		return nil
	}
}

// An EvalOption modifies the behaviour of Evaluate.
type EvalOption func(e *evaluator) error

// MaxLeaves is an EvalOption that aborts a pass with ErrTooManyLeaves once flattening produces more
// than n leaf commands. Zero, the default, means no limit.
func MaxLeaves(n int) EvalOption {
	return func(e *evaluator) error {
		if n < 0 {
			return fmt.Errorf("MaxLeaves(%d): limit must not be negative", n)
		}
		e.maxLeaves = n
		return nil
	}
}

// MaxSteps is an EvalOption that aborts a pass with ErrTooManySteps once it has executed more than
// n steps. Every statement and every loop iteration is one step, so loops that emit nothing are
// still bounded. Zero, the default, means no limit.
func MaxSteps(n int) EvalOption {
	return func(e *evaluator) error {
		if n < 0 {
			return fmt.Errorf("MaxSteps(%d): limit must not be negative", n)
		}
		e.maxSteps = n
		return nil
	}
}

// WithEnvironment is an EvalOption that seeds the pass with pre-bound variables.
//
// The environment is copied, so the caller's value is never mutated by the pass. A nil environment
// is the same as an empty one.
func WithEnvironment(env *Environment) EvalOption {
	return func(e *evaluator) error {
		if env == nil {
			e.env = NewEnvironment()
			return nil
		}
		e.env = env.Clone()
		return nil
	}
}
