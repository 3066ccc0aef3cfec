package scene

import (
	"fmt"
	"strings"

	"github.com/google/btree"
)

type binding struct {
	name  string
	value float32
}

func (b binding) Less(than btree.Item) bool {
	return b.name < than.(binding).name
}

// Environment maps variable names to values for a single evaluation pass.
//
// Redeclaring a name overwrites it. Iteration is in name order.
type Environment struct {
	vars *btree.BTree
}

// NewEnvironment creates an empty Environment.
func NewEnvironment() *Environment {
	return &Environment{vars: btree.New(8)}
}

// Set binds name to value, shadowing any previous binding.
func (e *Environment) Set(name string, value float32) {
	e.vars.ReplaceOrInsert(binding{name: name, value: value})
}

// Get the value bound to name.
func (e *Environment) Get(name string) (float32, bool) {
	item := e.vars.Get(binding{name: name})
	if item == nil {
		return 0, false
	}
	return item.(binding).value, true
}

// Len returns the number of bound names.
func (e *Environment) Len() int {
	return e.vars.Len()
}

// Each calls fn for every binding in name order until fn returns false.
func (e *Environment) Each(fn func(name string, value float32) bool) {
	e.vars.Ascend(func(item btree.Item) bool {
		b := item.(binding)
		return fn(b.name, b.value)
	})
}

// Names returns the bound names in order.
func (e *Environment) Names() []string {
	out := make([]string, 0, e.Len())
	e.Each(func(name string, _ float32) bool {
		out = append(out, name)
		return true
	})
	return out
}

// Clone returns an independent copy of the Environment.
func (e *Environment) Clone() *Environment {
	return &Environment{vars: e.vars.Clone()}
}

func (e *Environment) String() string {
	parts := make([]string, 0, e.Len())
	e.Each(func(name string, value float32) bool {
		parts = append(parts, fmt.Sprintf("%s=%g", name, value))
		return true
	})
	return strings.Join(parts, " ")
}
