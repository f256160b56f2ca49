// Package debug exposes the build-time debug flag.
//
// Build with `-tags debug` to enable verbose solver logging and extra
// runtime checks.
package debug
