// Package arith implements the four basic arithmetic operations over a
// numeric sum type. Every operation validates its operands before computing
// and reports failures as *Error values carrying a TypeKind or ValueKind, so
// callers can tell a malformed operand from a numerically invalid one.
//
// The package has no state and performs no I/O.
package arith
