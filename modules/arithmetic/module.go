// Package arithmetic registers the four basic arithmetic operations.
package arithmetic

import (
	"github.com/specialistvlad/gridcalc/internal/arith"
	"github.com/specialistvlad/gridcalc/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers add, subtract, multiply and divide with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterOperation("add", arith.Add)
	r.RegisterOperation("subtract", arith.Subtract)
	r.RegisterOperation("multiply", arith.Multiply)
	r.RegisterOperation("divide", arith.Divide)
}
