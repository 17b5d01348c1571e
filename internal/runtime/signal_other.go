// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package runtime

import "os"

// exitCodeOf returns the exit status. Platforms without POSIX signals never
// report a signal exit.
func exitCodeOf(state *os.ProcessState) ExitCode {
	return ExitCode(state.ExitCode())
}

func signalName(int) string { return "" }
