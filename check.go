package scene

// Check reports every variable reference that has no Declaration of the same name earlier in source
// order.
//
// Unless the name is seeded with WithEnvironment, such a reference fails every pass that reaches it.
// References that are only conditionally bound, eg. declared inside an if branch, are not reported.
func Check(program []Command) []error {
	declared := map[string]bool{}
	reported := map[string]bool{}
	errs := []error{}
	_ = Visit(program, func(node interface{}, next func() error) error {
		switch n := node.(type) {
		case Declaration:
			// The value is evaluated before the name is bound.
			err := next()
			declared[n.Name] = true
			return err
		case Variable:
			if !declared[n.Name] && !reported[n.Name] {
				reported[n.Name] = true
				errs = append(errs, &UnboundVariableError{Name: n.Name})
			}
		}
		return next()
	})
	return errs
}
