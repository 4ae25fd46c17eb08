package arith

import "errors"

// Kind classifies an arithmetic failure.
type Kind int

const (
	// TypeKind means an operand was not an integer or a float.
	TypeKind Kind = iota + 1
	// ValueKind means the operands were numbers but the operation cannot be
	// performed on them (zero divisor, int64 overflow).
	ValueKind
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case TypeKind:
		return "TypeKind"
	case ValueKind:
		return "ValueKind"
	default:
		return "UnknownKind"
	}
}

const (
	msgInvalidOperand = "Inputs must be integers or floats."
	msgDivideByZero   = "Cannot divide by zero"
	msgIntOverflow    = "Integer overflow"
)

// Error is returned by every operation in this package.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface. Only the message is printed, which is
// what the command line shows after "Error: ".
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is an *Error of the same kind. It lets callers
// match with errors.Is(err, arith.ErrType) regardless of the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is. ErrType is also returned as is by decoders that
// reject a non-numeric operand before any operation runs.
var (
	ErrType  = &Error{Kind: TypeKind, Message: msgInvalidOperand}
	ErrValue = &Error{Kind: ValueKind}
)

// KindOf returns the kind of the first *Error in err's chain and false if
// there is none.
func KindOf(err error) (Kind, bool) {
	var arithErr *Error
	if errors.As(err, &arithErr) {
		return arithErr.Kind, true
	}
	return 0, false
}

func typeError() error {
	return &Error{Kind: TypeKind, Message: msgInvalidOperand}
}

func valueError(msg string) error {
	return &Error{Kind: ValueKind, Message: msg}
}
