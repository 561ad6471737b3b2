// Package log provides the package-level debug/trace logging used
// throughout voxstruct: DEBUG and TRACE are no-ops unless enabled, and
// every engine error path still writes through fmt/MultiError, never
// through this package, so diagnostic logging never contaminates
// inject/validate error text.
package log

import (
	"fmt"
	"os"
)

var (
	debugOn bool
	traceOn bool
)

// DEBUG writes a formatted line to stderr iff debug logging is enabled.
func DEBUG(format string, args ...interface{}) {
	if !debugOn {
		return
	}
	PrintfStdErr("DEBUG> "+format+"\n", args...)
}

// TRACE writes a formatted line to stderr iff trace logging is enabled.
// Trace is the finer of the two levels: enabling trace implies debug.
func TRACE(format string, args ...interface{}) {
	if !traceOn {
		return
	}
	PrintfStdErr("TRACE> "+format+"\n", args...)
}

// PrintfStdErr writes a formatted line directly to stderr, regardless
// of the debug/trace toggles — used for warnings that should always
// surface.
func PrintfStdErr(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// ToggleDebug turns DEBUG output on or off.
func ToggleDebug(on bool) {
	debugOn = on
}

// ToggleTraceMode turns TRACE output on or off. Turning it on also turns
// DEBUG output on; turning it off leaves DEBUG as it was.
func ToggleTraceMode(on bool) {
	traceOn = on
	if on {
		debugOn = true
	}
}

// DebugOn reports whether DEBUG output is currently enabled.
func DebugOn() bool {
	return debugOn
}

// TraceOn reports whether TRACE output is currently enabled.
func TraceOn() bool {
	return traceOn
}
