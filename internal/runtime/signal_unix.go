// SPDX-License-Identifier: MPL-2.0

//go:build unix

package runtime

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// exitCodeOf maps a finished process state to an ExitCode, reporting
// termination by signal N as -N.
func exitCodeOf(state *os.ProcessState) ExitCode {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return ExitCodeFromSignal(int(ws.Signal()))
	}
	return ExitCode(state.ExitCode())
}

func signalName(n int) string {
	return unix.SignalName(syscall.Signal(n))
}
