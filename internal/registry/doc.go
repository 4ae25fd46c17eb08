// Package registry maps operation names, as typed on the command line or in
// a batch file, to the compiled Go functions that implement them.
//
// Modules register their operations at startup. The registry is then
// validated against the list of operations the command line advertises:
// an advertised name without an implementation is logged at debug level and
// reported at dispatch time, while an implementation nobody can reach is a
// programmer error.
package registry
