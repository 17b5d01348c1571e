// SPDX-License-Identifier: MPL-2.0

// Package targets loads the ordered list of binaries to benchmark.
package targets
