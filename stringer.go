package scene

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

func (a ArithOp) String() string {
	switch a {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Mult:
		return "*"
	case Div:
		return "/"
	}
	return fmt.Sprintf("ArithOp(%d)", int(a))
}

func (c CompareOp) String() string {
	switch c {
	case Greater:
		return ">"
	case Lesser:
		return "<"
	case GreaterOrEqual:
		return ">="
	case LesserOrEqual:
		return "<="
	case Equal:
		return "="
	case And:
		return "and"
	case Or:
		return "or"
	}
	return fmt.Sprintf("CompareOp(%d)", int(c))
}

func (b BranchKind) String() string {
	switch b {
	case IfB:
		return "if"
	case ElseIfB:
		return "else if"
	case ElseB:
		return "else"
	}
	return fmt.Sprintf("BranchKind(%d)", int(b))
}

// Binding strength of operators, used to decide where parentheses are needed.
func arithPrecedence(op ArithOp) int {
	if op == Plus || op == Minus {
		return 1
	}
	return 2
}

func comparePrecedence(op CompareOp) int {
	switch op {
	case Or:
		return 1
	case And:
		return 2
	}
	return 3
}

type stringerVisitor struct {
	bytes.Buffer
	indent int
}

// Format renders a program as canonical source text.
//
// Parsing the output yields a program equal to the input. Comments and original layout are not
// preserved.
func Format(program []Command) string {
	s := &stringerVisitor{}
	s.commands(program)
	return s.String()
}

// FormatOperation renders a single arithmetic or boolean expression as source text.
func FormatOperation(op Operation) string {
	s := &stringerVisitor{}
	s.operation(op)
	return s.String()
}

func (s *stringerVisitor) line(format string, args ...interface{}) {
	s.WriteString(strings.Repeat("  ", s.indent))
	fmt.Fprintf(s, format, args...)
	s.WriteByte('\n')
}

func (s *stringerVisitor) commands(program []Command) {
	for _, cmd := range program {
		s.command(cmd)
	}
}

func (s *stringerVisitor) command(cmd Command) {
	switch cmd := cmd.(type) {
	case Declaration:
		s.line("%s: %s", cmd.Name, FormatOperation(cmd.Value))

	case Instantiation:
		switch node := cmd.Node.(type) {
		case Circle:
			s.line("circle %s", arguments(node.Size))
		case Square:
			s.line("square %s", arguments(node.Width, node.Height))
		}

	case Move:
		s.line("move %s, %s", FormatOperation(cmd.X), FormatOperation(cmd.Y))

	case ResetMove:
		s.line("reset_m")

	case Color:
		s.line("color %s", arguments(cmd.R, cmd.G, cmd.B))

	case For:
		s.line("for %d {", cmd.Count)
		s.indent++
		s.commands(cmd.Body)
		s.indent--
		s.line("}")

	case ConditionalBlock:
		for _, branch := range cmd.Branches {
			if branch.Kind == ElseB {
				s.line("else")
			} else {
				s.line("%s %s", branch.Kind, FormatOperation(branch.Predicate))
			}
			s.indent++
			s.commands(branch.Body)
			s.indent--
		}
		s.line("end if")
	}
}

// arguments renders whitespace separated expressions. An argument that begins with a sign is
// parenthesised so it is not read as a subtraction from the previous argument.
func arguments(ops ...Operation) string {
	out := make([]string, len(ops))
	for i, op := range ops {
		text := FormatOperation(op)
		if i > 0 && (strings.HasPrefix(text, "-") || strings.HasPrefix(text, "+")) {
			text = "(" + text + ")"
		}
		out[i] = text
	}
	return strings.Join(out, " ")
}

func (s *stringerVisitor) operation(op Operation) {
	switch op := op.(type) {
	case Identity:
		s.factor(op.Factor)

	case Calculation:
		prec := arithPrecedence(op.Op)
		s.operand(op.Left, func(l Operation) bool {
			c, ok := l.(Calculation)
			return ok && arithPrecedence(c.Op) < prec
		})
		fmt.Fprintf(s, " %s ", op.Op)
		s.operand(op.Right, func(r Operation) bool {
			c, ok := r.(Calculation)
			return ok && arithPrecedence(c.Op) <= prec
		})

	case Condition:
		prec := comparePrecedence(op.Op)
		s.operand(op.Left, func(l Operation) bool {
			c, ok := l.(Condition)
			return ok && comparePrecedence(c.Op) < prec
		})
		fmt.Fprintf(s, " %s ", op.Op)
		s.operand(op.Right, func(r Operation) bool {
			c, ok := r.(Condition)
			return ok && comparePrecedence(c.Op) <= prec
		})
	}
}

func (s *stringerVisitor) operand(op Operation, parens func(Operation) bool) {
	if parens(op) {
		s.WriteByte('(')
		s.operation(op)
		s.WriteByte(')')
		return
	}
	s.operation(op)
}

// Literals too large for float32 parse to ±Inf, so infinities print as one of those.
func formatNumber(v float32) string {
	switch {
	case math.IsInf(float64(v), 1):
		return "1e39"
	case math.IsInf(float64(v), -1):
		return "-1e39"
	}
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func (s *stringerVisitor) factor(f Factor) {
	switch f := f.(type) {
	case Number:
		s.WriteString(formatNumber(f.Value))
	case Variable:
		s.WriteString(f.Name)
	case Boolean:
		s.WriteString(strconv.FormatBool(f.Value))
	case Sin:
		s.WriteString("sin(")
		s.operation(f.Arg)
		s.WriteByte(')')
	case Cos:
		s.WriteString("cos(")
		s.operation(f.Arg)
		s.WriteByte(')')
	case Time:
		s.WriteString("time")
	}
}
