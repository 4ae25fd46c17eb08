package registry

import (
	"sort"

	"github.com/specialistvlad/gridcalc/internal/arith"
)

// Operation is a binary arithmetic operation.
type Operation func(a, b arith.Number) (arith.Number, error)

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered operations for a single application instance.
type Registry struct {
	operations map[string]Operation
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		operations: make(map[string]Operation),
	}
}

// Lookup returns the operation registered under name.
func (r *Registry) Lookup(name string) (Operation, bool) {
	op, ok := r.operations[name]
	return op, ok
}

// Names returns the registered operation names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.operations))
	for name := range r.operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
