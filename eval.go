package scene

import (
	"fmt"
	"math"

	"github.com/alecthomas/repr"
)

// Result of an evaluation pass.
type Result struct {
	// Leaves in program order.
	Leaves []Leaf
	// Env holds the bindings as they stood when the pass finished.
	Env *Environment
}

type evaluator struct {
	env       *Environment
	time      float32
	maxLeaves int
	emitted   int
	maxSteps  int
	steps     int
}

func (e *evaluator) step() error {
	e.steps++
	if e.maxSteps > 0 && e.steps > e.maxSteps {
		return fmt.Errorf("more than %d: %w", e.maxSteps, ErrTooManySteps)
	}
	return nil
}

// Evaluate a program at the given time.
//
// Each call starts from a fresh Environment, so the result depends only on the program, the time
// and the options. Any error aborts the whole pass and no leaves are returned.
func Evaluate(program []Command, time float32, options ...EvalOption) (*Result, error) {
	e := &evaluator{time: time}
	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}
	if e.env == nil {
		e.env = NewEnvironment()
	}
	leaves, err := e.flatten(program)
	if err != nil {
		return nil, err
	}
	return &Result{Leaves: leaves, Env: e.env}, nil
}

// Resolve a Factor to a number.
func Resolve(f Factor, env *Environment, time float32) (float32, error) {
	switch f := f.(type) {
	case Number:
		return f.Value, nil
	case Variable:
		value, ok := env.Get(f.Name)
		if !ok {
			return 0, &UnboundVariableError{Name: f.Name}
		}
		return value, nil
	case Boolean:
		return 0, fmt.Errorf("%v: %w", f.Value, ErrBooleanOperand)
	case Sin:
		arg, err := Fold(f.Arg, env, time)
		if err != nil {
			return 0, err
		}
		return float32(math.Sin(float64(arg))), nil
	case Cos:
		arg, err := Fold(f.Arg, env, time)
		if err != nil {
			return 0, err
		}
		return float32(math.Cos(float64(arg))), nil
	case Time:
		return time, nil
	}
	panic("unsupported factor " + repr.String(f))
}

// Fold an arithmetic Operation to a number.
//
// Arithmetic follows IEEE-754: division by zero yields ±Inf or NaN rather than an error.
func Fold(op Operation, env *Environment, time float32) (float32, error) {
	switch op := op.(type) {
	case Identity:
		return Resolve(op.Factor, env, time)
	case Calculation:
		left, err := Fold(op.Left, env, time)
		if err != nil {
			return 0, err
		}
		right, err := Fold(op.Right, env, time)
		if err != nil {
			return 0, err
		}
		switch op.Op {
		case Plus:
			return left + right, nil
		case Minus:
			return left - right, nil
		case Mult:
			return left * right, nil
		case Div:
			return left / right, nil
		}
		panic("unsupported arithmetic operator " + op.Op.String())
	case Condition:
		return 0, fmt.Errorf("%s: %w", Dump(op), ErrConditionOperand)
	}
	panic("unsupported operation " + repr.String(op))
}

// FoldBool folds a boolean Operation.
//
// Both operands of And and Or are always evaluated.
func FoldBool(op Operation, env *Environment, time float32) (bool, error) {
	switch op := op.(type) {
	case Identity:
		if b, ok := op.Factor.(Boolean); ok {
			return b.Value, nil
		}
		return false, fmt.Errorf("%s: %w", Dump(op), ErrArithmeticPredicate)
	case Calculation:
		return false, fmt.Errorf("%s: %w", Dump(op), ErrArithmeticPredicate)
	case Condition:
		if op.Op.Logical() {
			left, err := FoldBool(op.Left, env, time)
			if err != nil {
				return false, err
			}
			right, err := FoldBool(op.Right, env, time)
			if err != nil {
				return false, err
			}
			if op.Op == And {
				return left && right, nil
			}
			return left || right, nil
		}
		left, err := Fold(op.Left, env, time)
		if err != nil {
			return false, err
		}
		right, err := Fold(op.Right, env, time)
		if err != nil {
			return false, err
		}
		switch op.Op {
		case Greater:
			return left > right, nil
		case Lesser:
			return left < right, nil
		case GreaterOrEqual:
			return left >= right, nil
		case LesserOrEqual:
			return left <= right, nil
		case Equal:
			return left == right, nil
		}
		panic("unsupported comparison operator " + op.Op.String())
	}
	panic("unsupported operation " + repr.String(op))
}

// Flatten a program into leaf commands, binding declarations into env as it goes.
//
// Declarations are not block scoped: a binding made inside a loop or branch is visible to every
// statement that runs after it. Loop iterations see the bindings of the previous iteration. A nil
// env is replaced with an empty one.
func Flatten(program []Command, env *Environment, time float32) ([]Leaf, error) {
	if env == nil {
		env = NewEnvironment()
	}
	e := &evaluator{env: env, time: time}
	return e.flatten(program)
}

func (e *evaluator) flatten(program []Command) ([]Leaf, error) {
	leaves := []Leaf{}
	for _, cmd := range program {
		out, err := e.command(cmd)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, out...)
	}
	return leaves, nil
}

func (e *evaluator) command(cmd Command) ([]Leaf, error) {
	if err := e.step(); err != nil {
		return nil, err
	}
	switch cmd := cmd.(type) {
	case Declaration:
		value, err := e.fold(cmd.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cmd.Name, err)
		}
		e.env.Set(cmd.Name, value)
		return nil, nil

	case Instantiation:
		leaf, err := e.shape(cmd.Node)
		if err != nil {
			return nil, err
		}
		return e.emit(leaf)

	case Move:
		dx, err := e.fold(cmd.X)
		if err != nil {
			return nil, err
		}
		dy, err := e.fold(cmd.Y)
		if err != nil {
			return nil, err
		}
		return e.emit(MoveLeaf{DX: dx, DY: dy})

	case Color:
		r, err := e.fold(cmd.R)
		if err != nil {
			return nil, err
		}
		g, err := e.fold(cmd.G)
		if err != nil {
			return nil, err
		}
		b, err := e.fold(cmd.B)
		if err != nil {
			return nil, err
		}
		return e.emit(ColorLeaf{R: r, G: g, B: b})

	case ResetMove:
		return e.emit(ResetLeaf{})

	case ConditionalBlock:
		for _, branch := range cmd.Branches {
			matched := true
			if branch.Kind != ElseB {
				var err error
				matched, err = FoldBool(branch.Predicate, e.env, e.time)
				if err != nil {
					return nil, err
				}
			}
			if matched {
				return e.flatten(branch.Body)
			}
		}
		return nil, nil

	case For:
		leaves := []Leaf{}
		for i := int32(0); i < cmd.Count; i++ {
			if err := e.step(); err != nil {
				return nil, err
			}
			out, err := e.flatten(cmd.Body)
			if err != nil {
				return nil, err
			}
			leaves = append(leaves, out...)
		}
		return leaves, nil
	}
	panic("unsupported command " + repr.String(cmd))
}

func (e *evaluator) shape(node Node) (Leaf, error) {
	switch node := node.(type) {
	case Circle:
		size, err := e.fold(node.Size)
		if err != nil {
			return nil, err
		}
		return ShapeLeaf{Shape: CircleShape, Width: size, Height: size}, nil
	case Square:
		width, err := e.fold(node.Width)
		if err != nil {
			return nil, err
		}
		height, err := e.fold(node.Height)
		if err != nil {
			return nil, err
		}
		return ShapeLeaf{Shape: SquareShape, Width: width, Height: height}, nil
	}
	panic("unsupported node " + repr.String(node))
}

func (e *evaluator) fold(op Operation) (float32, error) {
	return Fold(op, e.env, e.time)
}

func (e *evaluator) emit(leaf Leaf) ([]Leaf, error) {
	e.emitted++
	if e.maxLeaves > 0 && e.emitted > e.maxLeaves {
		return nil, fmt.Errorf("more than %d: %w", e.maxLeaves, ErrTooManyLeaves)
	}
	return []Leaf{leaf}, nil
}
