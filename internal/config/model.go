package config

import "github.com/specialistvlad/gridcalc/internal/arith"

// Model is the unified representation of a batch of calculations, in the
// order they were declared.
type Model struct {
	Calculations []*Calculation
}

// Calculation is the format-agnostic representation of a `calculation` block.
type Calculation struct {
	Name      string
	Operation string
	A         arith.Number
	B         arith.Number

	// Source is a human-readable "file:line,col" location for diagnostics.
	Source string
}
