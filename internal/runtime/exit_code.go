// SPDX-License-Identifier: MPL-2.0

package runtime

import "strconv"

const (
	// ExitCodeNotFound is reported when the tool binary cannot be found,
	// matching the POSIX shell convention.
	ExitCodeNotFound ExitCode = 127
	// ExitCodeCannotExecute is reported when the tool exists but could not be
	// started (e.g. permission denied).
	ExitCodeCannotExecute ExitCode = 126
)

// ExitCode is the signed outcome of a finished process.
// Non-negative values are the exit status. A negative value -N means the
// process was terminated by signal N (e.g. -11 for SIGSEGV).
type ExitCode int

// ExitCodeFromSignal returns the ExitCode for termination by signal n.
func ExitCodeFromSignal(n int) ExitCode { return ExitCode(-n) }

// IsSuccess returns true if the process exited with status 0.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// IsSignal returns true if the process was terminated by a signal.
func (c ExitCode) IsSignal() bool { return c < 0 }

// Signal returns the signal number for a signal exit, or 0 otherwise.
func (c ExitCode) Signal() int {
	if c < 0 {
		return int(-c)
	}
	return 0
}

// SignalName returns the conventional name of the terminating signal (e.g.
// "SIGSEGV"), or "" when the code is not a signal exit or the name is not
// known on this platform.
func (c ExitCode) SignalName() string {
	if !c.IsSignal() {
		return ""
	}
	return signalName(c.Signal())
}

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
