package exit

import (
	"fmt"
	"io"
)

const (
	CodeOK    = 0
	CodeStale = 1
	CodeError = 2
)

// Result holds the output destination and exit code for program termination.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the result message to the configured output destination.
func (r *Result) Print() {
	if r.Message == "" {
		return
	}
	fmt.Fprintln(r.Output, r.Message)
}

// Stale reports generated files that no longer match the table.
func Stale(w io.Writer, count int) *Result {
	return &Result{
		Output:   w,
		ExitCode: CodeStale,
		Message:  fmt.Sprintf("%d generated file(s) are stale", count),
	}
}

// Errorf creates an error exit result with formatted message.
func Errorf(w io.Writer, format string, a ...any) *Result {
	return &Result{
		Output:   w,
		ExitCode: CodeError,
		Message:  fmt.Sprintf(format, a...),
	}
}
