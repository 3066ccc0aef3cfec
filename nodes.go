package scene

// Factor is a leaf value in an expression tree.
//
// Implementations are Number, Variable, Boolean, Sin, Cos and Time.
type Factor interface{ factor() }

// Number literal.
type Number struct {
	Value float32
}

// Variable reference, resolved against the Environment.
type Variable struct {
	Name string
}

// Boolean literal. Only valid in a condition.
type Boolean struct {
	Value bool
}

// Sin of an expression, in radians.
type Sin struct {
	Arg Operation
}

// Cos of an expression, in radians.
type Cos struct {
	Arg Operation
}

// Time is the animation clock supplied to an evaluation pass.
type Time struct{}

func (Number) factor()   {}
func (Variable) factor() {}
func (Boolean) factor()  {}
func (Sin) factor()      {}
func (Cos) factor()      {}
func (Time) factor()     {}

// ArithOp is an arithmetic operator.
type ArithOp int

// Arithmetic operators.
const (
	Plus ArithOp = iota
	Minus
	Mult
	Div
)

// CompareOp is a comparison or logical operator.
type CompareOp int

// Comparison and logical operators.
const (
	Greater CompareOp = iota
	Lesser
	GreaterOrEqual
	LesserOrEqual
	Equal
	And
	Or
)

// Logical returns true for And and Or, whose operands are themselves conditions.
func (c CompareOp) Logical() bool {
	return c == And || c == Or
}

// Operation is a binary expression tree.
//
// The same tree type carries arithmetic (Identity, Calculation) and boolean (Condition) expressions.
type Operation interface{ operation() }

// Identity wraps a single Factor.
type Identity struct {
	Factor Factor
}

// Calculation applies an arithmetic operator to two operands.
type Calculation struct {
	Left  Operation
	Op    ArithOp
	Right Operation
}

// Condition applies a comparison to two arithmetic operands, or And/Or to two conditions.
type Condition struct {
	Left  Operation
	Op    CompareOp
	Right Operation
}

func (Identity) operation()    {}
func (Calculation) operation() {}
func (Condition) operation()   {}

// Node is a shape request.
type Node interface{ node() }

// Circle with the given size.
type Circle struct {
	Size Operation
}

// Square with independent width and height.
type Square struct {
	Width  Operation
	Height Operation
}

func (Circle) node() {}
func (Square) node() {}

// BranchKind tags a branch of a ConditionalBlock.
type BranchKind int

// Branch kinds.
const (
	IfB BranchKind = iota
	ElseIfB
	ElseB
)

// Command is a single parsed statement.
type Command interface{ command() }

// Declaration binds Name to the value of an expression.
type Declaration struct {
	Name  string
	Value Operation
}

// Instantiation requests a shape.
type Instantiation struct {
	Node Node
}

// Branch of a ConditionalBlock.
//
// The Predicate of an ElseB branch is the literal true.
type Branch struct {
	Kind      BranchKind
	Predicate Operation
	Body      []Command
}

// ConditionalBlock is an if / else if / else chain, branches in source order.
type ConditionalBlock struct {
	Branches []Branch
}

// For repeats Body Count times.
type For struct {
	Count int32
	Body  []Command
}

// Move the cursor by (X, Y).
type Move struct {
	X Operation
	Y Operation
}

// ResetMove returns the cursor to the origin.
type ResetMove struct{}

// Color sets the current drawing color.
type Color struct {
	R Operation
	G Operation
	B Operation
}

func (Declaration) command()      {}
func (Instantiation) command()    {}
func (ConditionalBlock) command() {}
func (For) command()              {}
func (Move) command()             {}
func (ResetMove) command()        {}
func (Color) command()            {}

// DefaultSize of a shape with no size arguments.
const DefaultSize float32 = 1.0

func num(v float32) Operation { return Identity{Number{v}} }
