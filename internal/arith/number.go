package arith

import (
	"math"
	"strconv"
	"strings"
)

type numberKind uint8

const (
	invalidNumber numberKind = iota
	intNumber
	floatNumber
)

// Number is a numeric operand: either an int64 or a float64. The zero value
// is neither and is rejected by every operation with a TypeKind error.
type Number struct {
	kind numberKind
	i    int64
	f    float64
}

// Int returns the integer variant of Number.
func Int(v int64) Number {
	return Number{kind: intNumber, i: v}
}

// Float returns the floating-point variant of Number.
func Float(v float64) Number {
	return Number{kind: floatNumber, f: v}
}

// FromAny converts a native Go value into a Number. Signed and unsigned
// integers become the integer variant (unsigned values above math.MaxInt64
// become floats), float32 and float64 become the float variant. Any other
// type, including nil, bool and string, fails with a TypeKind error.
func FromAny(v any) (Number, error) {
	switch n := v.(type) {
	case Number:
		if !n.Valid() {
			return Number{}, typeError()
		}
		return n, nil
	case int:
		return Int(int64(n)), nil
	case int8:
		return Int(int64(n)), nil
	case int16:
		return Int(int64(n)), nil
	case int32:
		return Int(int64(n)), nil
	case int64:
		return Int(n), nil
	case uint:
		return fromUint64(uint64(n)), nil
	case uint8:
		return Int(int64(n)), nil
	case uint16:
		return Int(int64(n)), nil
	case uint32:
		return Int(int64(n)), nil
	case uint64:
		return fromUint64(n), nil
	case float32:
		return Float(float64(n)), nil
	case float64:
		return Float(n), nil
	default:
		return Number{}, typeError()
	}
}

func fromUint64(u uint64) Number {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}

// Valid reports whether n holds an integer or a float.
func (n Number) Valid() bool {
	return n.kind == intNumber || n.kind == floatNumber
}

// IsInt reports whether n is the integer variant.
func (n Number) IsInt() bool {
	return n.kind == intNumber
}

// IsFloat reports whether n is the floating-point variant.
func (n Number) IsFloat() bool {
	return n.kind == floatNumber
}

// Int64 returns the integer value and true if n is the integer variant.
func (n Number) Int64() (int64, bool) {
	return n.i, n.kind == intNumber
}

// Float64 returns n as a float64, converting integers.
func (n Number) Float64() float64 {
	if n.kind == intNumber {
		return float64(n.i)
	}
	return n.f
}

// IsZero reports whether n is integer 0 or float +0/-0.
func (n Number) IsZero() bool {
	switch n.kind {
	case intNumber:
		return n.i == 0
	case floatNumber:
		return n.f == 0
	default:
		return false
	}
}

// String formats integers in base 10. Floats always carry a fractional part
// or an exponent, so 8 prints as "8.0" and 1e16 as "1e+16".
func (n Number) String() string {
	switch n.kind {
	case intNumber:
		return strconv.FormatInt(n.i, 10)
	case floatNumber:
		return formatFloat(n.f)
	default:
		return "<invalid>"
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// MarshalText implements encoding.TextMarshaler so numbers render through
// String in structured logs.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}
