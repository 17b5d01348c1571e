// SPDX-License-Identifier: MPL-2.0

package runtime

import "time"

// Result is the captured outcome of one Invocation. It is reported and then
// discarded; nothing retains it.
type Result struct {
	// Invocation is what was run.
	Invocation Invocation
	// Output is the full captured standard output.
	Output string
	// ErrOutput is the full captured standard error.
	ErrOutput string
	// ExitCode is the signed exit status (see ExitCode).
	ExitCode ExitCode
	// Elapsed is the wall time from start to exit.
	Elapsed time.Duration
	// Error is set when the process could not be started at all. A process
	// that ran and failed is not an error; see ExitCode.
	Error error
}

// NewStartErrorResult creates a Result for an invocation that never started.
func NewStartErrorResult(inv Invocation, code ExitCode, err error) *Result {
	return &Result{Invocation: inv, ExitCode: code, Error: err}
}

// NewExitCodeResult creates a Result for a process that ran and exited.
func NewExitCodeResult(inv Invocation, code ExitCode) *Result {
	return &Result{Invocation: inv, ExitCode: code}
}

// Started reports whether the process was launched.
func (r *Result) Started() bool { return r.Error == nil }

// HasOutput reports whether anything was written to standard output.
func (r *Result) HasOutput() bool { return r.Output != "" }

// HasErrOutput reports whether anything was written to standard error.
func (r *Result) HasErrOutput() bool { return r.ErrOutput != "" }
