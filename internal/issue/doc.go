// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors for operator-facing failures.
//
// An ActionableError names the operation that failed, the resource involved,
// and a short list of hints for fixing it. The CLI renders these with Format
// before exiting non-zero.
package issue
