// SPDX-License-Identifier: MPL-2.0

package cmd

// exitCodeFailure is returned for configuration and file list errors.
const exitCodeFailure = 1

// exitCodeOf maps an error returned by the root command to a process exit
// status. Tool outcomes never surface as errors, so any error is a failure.
func exitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	return exitCodeFailure
}
