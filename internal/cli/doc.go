// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates the operation name, the two numbers and the option flags into
// the application's configuration. Numbers are parsed here, so non-numeric
// input never reaches the arithmetic library.
package cli
