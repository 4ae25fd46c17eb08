package arith

import "math"

// Add returns a + b. The result is an integer when both operands are
// integers and a float otherwise.
func Add(a, b Number) (Number, error) {
	if err := checkOperands(a, b); err != nil {
		return Number{}, err
	}
	if a.IsInt() && b.IsInt() {
		s := a.i + b.i
		if (a.i > 0 && b.i > 0 && s < 0) || (a.i < 0 && b.i < 0 && s >= 0) {
			return Number{}, valueError(msgIntOverflow)
		}
		return Int(s), nil
	}
	return Float(a.Float64() + b.Float64()), nil
}

// Subtract returns a - b, with the same result kind rules as Add.
func Subtract(a, b Number) (Number, error) {
	if err := checkOperands(a, b); err != nil {
		return Number{}, err
	}
	if a.IsInt() && b.IsInt() {
		d := a.i - b.i
		if (a.i >= 0 && b.i < 0 && d < 0) || (a.i < 0 && b.i > 0 && d >= 0) {
			return Number{}, valueError(msgIntOverflow)
		}
		return Int(d), nil
	}
	return Float(a.Float64() - b.Float64()), nil
}

// Multiply returns a * b, with the same result kind rules as Add.
func Multiply(a, b Number) (Number, error) {
	if err := checkOperands(a, b); err != nil {
		return Number{}, err
	}
	if a.IsInt() && b.IsInt() {
		if a.i == 0 || b.i == 0 {
			return Int(0), nil
		}
		if (a.i == -1 && b.i == math.MinInt64) || (b.i == -1 && a.i == math.MinInt64) {
			return Number{}, valueError(msgIntOverflow)
		}
		p := a.i * b.i
		if p/b.i != a.i {
			return Number{}, valueError(msgIntOverflow)
		}
		return Int(p), nil
	}
	return Float(a.Float64() * b.Float64()), nil
}

// Divide returns a / b. The result is always a float. A zero divisor fails
// with a ValueKind error, reported only after both operands passed the type
// check.
func Divide(a, b Number) (Number, error) {
	if err := checkOperands(a, b); err != nil {
		return Number{}, err
	}
	if b.IsZero() {
		return Number{}, valueError(msgDivideByZero)
	}
	return Float(a.Float64() / b.Float64()), nil
}

func checkOperands(a, b Number) error {
	if !a.Valid() || !b.Valid() {
		return typeError()
	}
	return nil
}
