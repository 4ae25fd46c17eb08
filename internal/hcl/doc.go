// Package hcl provides the HCL implementation of config.Loader. It parses
// `calculation` blocks, evaluates their operands without any variables or
// functions in scope and converts the resulting cty values into
// arith.Number, rejecting anything that is not a number.
package hcl
