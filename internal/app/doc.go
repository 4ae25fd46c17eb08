// Package app contains the core application logic. It defines the App
// struct, its configuration and the evaluation lifecycle, decoupled from the
// command line: the cli package builds a Config, and App.Run dispatches each
// requested calculation through the operation registry and writes the
// result lines.
package app
