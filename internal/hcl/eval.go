package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/gridcalc/internal/arith"
)

// evalOperand evaluates expr with no variables or functions in scope.
func evalOperand(expr hcl.Expression) (arith.Number, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return arith.Number{}, diags
	}
	return toNumber(val)
}
