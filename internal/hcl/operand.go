package hcl

import (
	"github.com/specialistvlad/gridcalc/internal/arith"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// toNumber converts an evaluated operand into a Number. HCL has a single
// number type, so a value that is whole and fits in an int64 becomes the
// integer variant and everything else the float variant.
func toNumber(v cty.Value) (arith.Number, error) {
	if v.IsNull() || !v.IsKnown() || !v.Type().Equals(cty.Number) {
		return arith.Number{}, arith.ErrType
	}

	var i int64
	if err := gocty.FromCtyValue(v, &i); err == nil {
		return arith.Int(i), nil
	}

	f, _ := v.AsBigFloat().Float64()
	return arith.Float(f), nil
}
