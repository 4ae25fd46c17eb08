package arith

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type binaryOp func(a, b Number) (Number, error)

var allOps = map[string]binaryOp{
	"add":      Add,
	"subtract": Subtract,
	"multiply": Multiply,
	"divide":   Divide,
}

func TestOperations_Success(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		op      binaryOp
		a, b    Number
		want    Number
		wantInt bool
	}{
		{name: "add integers", op: Add, a: Int(5), b: Int(10), want: Int(15), wantInt: true},
		{name: "add floats", op: Add, a: Float(2.5), b: Float(3.5), want: Float(6.0)},
		{name: "add mixed", op: Add, a: Int(2), b: Float(3.5), want: Float(5.5)},
		{name: "add negative", op: Add, a: Int(5), b: Int(-2), want: Int(3), wantInt: true},
		{name: "add zero", op: Add, a: Int(5), b: Int(0), want: Int(5), wantInt: true},
		{name: "subtract integers", op: Subtract, a: Int(5), b: Int(10), want: Int(-5), wantInt: true},
		{name: "subtract mixed", op: Subtract, a: Int(5), b: Float(3.5), want: Float(1.5)},
		{name: "subtract negative", op: Subtract, a: Int(5), b: Int(-2), want: Int(7), wantInt: true},
		{name: "multiply by zero", op: Multiply, a: Int(100), b: Int(0), want: Int(0), wantInt: true},
		{name: "multiply two negatives", op: Multiply, a: Int(-5), b: Int(-5), want: Int(25), wantInt: true},
		{name: "multiply floats", op: Multiply, a: Float(2.5), b: Float(3.0), want: Float(7.5)},
		{name: "multiply mixed", op: Multiply, a: Int(2), b: Float(3.5), want: Float(7.0)},
		{name: "divide integers", op: Divide, a: Int(20), b: Int(5), want: Float(4.0)},
		{name: "divide floats", op: Divide, a: Float(7.5), b: Float(2.5), want: Float(3.0)},
		{name: "divide mixed", op: Divide, a: Int(7), b: Float(3.5), want: Float(2.0)},
		{name: "divide two negatives", op: Divide, a: Int(-10), b: Int(-2), want: Float(5.0)},
		{name: "divide zero numerator", op: Divide, a: Int(0), b: Int(5), want: Float(0.0)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.op(tc.a, tc.b)

			require.NoError(t, err)
			require.Equal(t, tc.wantInt, got.IsInt(), "result kind mismatch")
			require.InDelta(t, tc.want.Float64(), got.Float64(), 1e-9)
		})
	}
}

func TestSubtract_FloatTolerance(t *testing.T) {
	t.Parallel()

	got, err := Subtract(Float(5.5), Float(3.2))

	require.NoError(t, err)
	require.True(t, got.IsFloat())
	require.InDelta(t, 2.3, got.Float64(), 1e-9)
}

func TestAdd_IntegerSumIsExact(t *testing.T) {
	t.Parallel()

	pairs := [][2]int64{
		{0, 0},
		{1 << 52, 1},
		{math.MaxInt64 - 1, 1},
		{math.MinInt64 + 1, -1},
		{-123456789012, 987654321098},
	}
	for _, p := range pairs {
		got, err := Add(Int(p[0]), Int(p[1]))
		require.NoError(t, err)
		v, ok := got.Int64()
		require.True(t, ok, "integer operands must give an integer result")
		require.Equal(t, p[0]+p[1], v)
	}
}

func TestDivide_AlwaysFloat(t *testing.T) {
	t.Parallel()

	for _, a := range []int64{-9, -1, 0, 1, 6, 1 << 40} {
		for _, b := range []int64{-3, -1, 1, 2, 7} {
			got, err := Divide(Int(a), Int(b))
			require.NoError(t, err)
			require.True(t, got.IsFloat())
			require.Equal(t, float64(a)/float64(b), got.Float64())
		}
	}
}

func TestDivide_ByZero(t *testing.T) {
	t.Parallel()

	numerators := []Number{Int(10), Int(0), Int(-3), Float(2.5), Float(math.Inf(1))}
	divisors := []Number{Int(0), Float(0), Float(math.Copysign(0, -1))}

	for _, a := range numerators {
		for _, b := range divisors {
			_, err := Divide(a, b)
			require.Error(t, err)
			require.EqualError(t, err, "Cannot divide by zero")
			require.ErrorIs(t, err, ErrValue)

			kind, ok := KindOf(err)
			require.True(t, ok)
			require.Equal(t, ValueKind, kind)
		}
	}
}

func TestOperations_InvalidOperand(t *testing.T) {
	t.Parallel()

	for name, op := range allOps {
		op := op
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := op(Number{}, Int(2))
			require.ErrorIs(t, err, ErrType)
			require.EqualError(t, err, "Inputs must be integers or floats.")

			_, err = op(Int(2), Number{})
			require.ErrorIs(t, err, ErrType)
		})
	}
}

func TestDivide_TypeCheckedBeforeZero(t *testing.T) {
	t.Parallel()

	_, err := Divide(Number{}, Int(0))

	require.ErrorIs(t, err, ErrType)
	require.False(t, errors.Is(err, ErrValue))
}

func TestIntegerOverflow(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		op   binaryOp
		a, b int64
	}{
		{"add past max", Add, math.MaxInt64, 1},
		{"add past min", Add, math.MinInt64, -1},
		{"subtract past min", Subtract, math.MinInt64, 1},
		{"subtract past max", Subtract, 0, math.MinInt64},
		{"multiply past max", Multiply, math.MaxInt64, 2},
		{"multiply min by minus one", Multiply, math.MinInt64, -1},
		{"multiply minus one by min", Multiply, -1, math.MinInt64},
		{"multiply large", Multiply, 1 << 32, 1 << 32},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := tc.op(Int(tc.a), Int(tc.b))
			require.ErrorIs(t, err, ErrValue)
			require.EqualError(t, err, "Integer overflow")
		})
	}
}

func TestMultiply_NoFalseOverflow(t *testing.T) {
	t.Parallel()

	got, err := Multiply(Int(math.MinInt64), Int(1))
	require.NoError(t, err)
	v, _ := got.Int64()
	require.Equal(t, int64(math.MinInt64), v)

	got, err = Multiply(Int(-(1 << 31)), Int(1<<32))
	require.NoError(t, err)
	v, _ = got.Int64()
	require.Equal(t, int64(math.MinInt64), v)
}

func TestKindOf_NonArithmeticError(t *testing.T) {
	t.Parallel()

	_, ok := KindOf(errors.New("boom"))
	require.False(t, ok)
	require.Equal(t, "TypeKind", TypeKind.String())
	require.Equal(t, "ValueKind", ValueKind.String())
}
