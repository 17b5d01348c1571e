// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// FakeTool writes an executable POSIX shell script that stands in for the
// analysis tool, so runner and CLI tests never need the real binary.
package testutil
