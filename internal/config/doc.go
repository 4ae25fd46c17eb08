// Package config defines the format-agnostic model of a calculation batch and
// the Loader interface that concrete formats implement.
//
// Operands in the model are already arith.Number values: a loader must reject
// non-numeric input while translating, so nothing downstream re-checks types
// coming from files. The HCL implementation lives in the hcl package.
package config
