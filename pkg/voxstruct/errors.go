package voxstruct

import "strings"

// MultiError collects plain-string engine errors. Messages stay literal
// (no ANSI markup, no wrapping) because test corpora match against them
// by exact substring or regex; coloring is a CLI-layer concern only, see
// cmd/voxstruct.
type MultiError struct {
	Errs []string
}

// Error joins the accumulated messages with " | ", matching the
// top-level validate fatal-error format.
func (e *MultiError) Error() string {
	return "Invalid data: " + strings.Join(e.Errs, " | ")
}

// Add appends msg to the error list if non-empty.
func (e *MultiError) Add(msg string) {
	if msg == "" {
		return
	}
	e.Errs = append(e.Errs, msg)
}

// Empty reports whether no errors have been recorded.
func (e *MultiError) Empty() bool {
	return len(e.Errs) == 0
}

// AsError returns e as an error if it holds any messages, else nil.
func (e *MultiError) AsError() error {
	if e.Empty() {
		return nil
	}
	return e
}
