// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

// MustWriteFile writes content to dir/name and returns the full path.
// The test fails immediately if the write fails.
func MustWriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// SkipWithoutPOSIXShell skips the test on platforms without /bin/sh.
func SkipWithoutPOSIXShell(t testing.TB) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("skipping: requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("skipping: sh not found in PATH")
	}
}

// FakeTool writes an executable shell script named name into dir and returns
// its path. body runs under /bin/sh with the invocation's arguments as $@.
// The test is skipped where no POSIX shell is available.
//
// Callers must not run in parallel with other tests that start processes:
// exec of a freshly written file can fail with ETXTBSY while another
// goroutine is forking.
func FakeTool(t testing.TB, dir, name, body string) string {
	t.Helper()
	SkipWithoutPOSIXShell(t)

	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write fake tool %s: %v", path, err)
	}
	return path
}
