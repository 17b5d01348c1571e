// SPDX-License-Identifier: MPL-2.0

// Package runtime launches the external analysis tool and captures what it
// did.
//
// An Invocation is an explicit argument vector; no shell is involved in
// launching it. ProcessInvoker runs one Invocation to completion, capturing
// standard output and standard error in full, and returns a Result with a
// signed ExitCode: non-negative values are the process exit status, -N means
// the process was killed by signal N.
//
// QuoteArgs renders an argument vector as a shell-quoted command line for
// display only.
package runtime
