// SPDX-License-Identifier: MPL-2.0

// Package bench drives a benchmark run: for every target in the file list,
// starting at the configured position, it invokes the analysis tool the
// configured number of times, one process at a time, and reports each
// outcome as soon as the process exits.
//
// Nothing is aggregated or retried. Tool output, non-zero exits and signal
// terminations are reported and the run moves on.
package bench
