package scene

import "golang.org/x/exp/slices"

// Visitor is called for each node during Visit. Calling next visits the node's children; not calling
// it prunes them.
type Visitor func(node interface{}, next func() error) error

// Visit walks an AST depth first, in source order.
//
// node may be a []Command, Command, Branch, Node, Operation or Factor.
func Visit(node interface{}, visitor Visitor) error {
	return visitor(node, func() error {
		switch n := node.(type) {
		case []Command:
			for _, cmd := range n {
				if err := Visit(cmd, visitor); err != nil {
					return err
				}
			}

		case Declaration:
			return Visit(n.Value, visitor)

		case Instantiation:
			return Visit(n.Node, visitor)

		case ConditionalBlock:
			for _, branch := range n.Branches {
				if err := Visit(branch, visitor); err != nil {
					return err
				}
			}

		case Branch:
			if err := Visit(n.Predicate, visitor); err != nil {
				return err
			}
			return Visit(n.Body, visitor)

		case For:
			return Visit(n.Body, visitor)

		case Move:
			return visitAll(visitor, n.X, n.Y)

		case Color:
			return visitAll(visitor, n.R, n.G, n.B)

		case Circle:
			return Visit(n.Size, visitor)

		case Square:
			return visitAll(visitor, n.Width, n.Height)

		case Identity:
			return Visit(n.Factor, visitor)

		case Calculation:
			return visitAll(visitor, n.Left, n.Right)

		case Condition:
			return visitAll(visitor, n.Left, n.Right)

		case Sin:
			return Visit(n.Arg, visitor)

		case Cos:
			return Visit(n.Arg, visitor)

		case ResetMove, Number, Variable, Boolean, Time:

		default:
			panic("unsupported")
		}
		return nil
	})
}

func visitAll(visitor Visitor, ops ...Operation) error {
	for _, op := range ops {
		if err := Visit(op, visitor); err != nil {
			return err
		}
	}
	return nil
}

// Identifiers returns the sorted, de-duplicated names referenced or declared by a program.
func Identifiers(program []Command) []string {
	names := []string{}
	_ = Visit(program, func(node interface{}, next func() error) error {
		switch n := node.(type) {
		case Variable:
			names = append(names, n.Name)
		case Declaration:
			names = append(names, n.Name)
		}
		return next()
	})
	slices.Sort(names)
	return slices.Compact(names)
}
