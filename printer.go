package scene

import (
	"fmt"
	"strings"
)

// Dump returns a compact, fully parenthesised rendering of an AST value, eg.
// "((1 + 2) + 3)" or "square(x, (x + 3))". It makes tree shape visible where Format would hide it.
func Dump(v interface{}) string {
	switch n := v.(type) {
	case []Command:
		out := []string{}
		for _, cmd := range n {
			out = append(out, Dump(cmd))
		}
		return strings.Join(out, "; ")

	case Identity:
		return Dump(n.Factor)

	case Calculation:
		return fmt.Sprintf("(%s %s %s)", Dump(n.Left), n.Op, Dump(n.Right))

	case Condition:
		return fmt.Sprintf("(%s %s %s)", Dump(n.Left), n.Op, Dump(n.Right))

	case Number:
		return fmt.Sprintf("%g", n.Value)

	case Variable:
		return n.Name

	case Boolean:
		return fmt.Sprintf("%v", n.Value)

	case Sin:
		return fmt.Sprintf("sin(%s)", Dump(n.Arg))

	case Cos:
		return fmt.Sprintf("cos(%s)", Dump(n.Arg))

	case Time:
		return "time"

	case Circle:
		return fmt.Sprintf("circle(%s)", Dump(n.Size))

	case Square:
		return fmt.Sprintf("square(%s, %s)", Dump(n.Width), Dump(n.Height))

	case Declaration:
		return fmt.Sprintf("%s := %s", n.Name, Dump(n.Value))

	case Instantiation:
		return Dump(n.Node)

	case Move:
		return fmt.Sprintf("move(%s, %s)", Dump(n.X), Dump(n.Y))

	case ResetMove:
		return "reset_m"

	case Color:
		return fmt.Sprintf("color(%s, %s, %s)", Dump(n.R), Dump(n.G), Dump(n.B))

	case For:
		return fmt.Sprintf("for %d {%s}", n.Count, Dump(n.Body))

	case ConditionalBlock:
		out := []string{}
		for _, branch := range n.Branches {
			if branch.Kind == ElseB {
				out = append(out, fmt.Sprintf("else {%s}", Dump(branch.Body)))
				continue
			}
			out = append(out, fmt.Sprintf("%s %s {%s}", branch.Kind, Dump(branch.Predicate), Dump(branch.Body)))
		}
		return strings.Join(out, " ")

	case Leaf:
		return n.String()

	case nil:
		return "<nil>"
	}
	return fmt.Sprintf("<%T>", v)
}
