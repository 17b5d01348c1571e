// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"time"
)

type (
	// Invoker runs one Invocation to completion. Implementations never
	// return a nil Result.
	Invoker interface {
		Invoke(ctx context.Context, inv Invocation) *Result
	}

	// ProcessInvoker runs invocations as child processes, capturing their
	// standard output and standard error in memory. It blocks until the
	// process exits; there is no timeout.
	ProcessInvoker struct {
		// Dir is the working directory of the child; "" means the current
		// directory. The tool's output file is relative to it.
		Dir string
	}

	// capturedOutput holds the child's output streams.
	capturedOutput struct {
		stdout bytes.Buffer
		stderr bytes.Buffer
	}
)

// NewProcessInvoker creates an invoker that runs in the current directory.
func NewProcessInvoker() *ProcessInvoker {
	return &ProcessInvoker{}
}

// Invoke starts the child, waits for it and reports what it did.
func (p *ProcessInvoker) Invoke(ctx context.Context, inv Invocation) *Result {
	cmd := exec.CommandContext(ctx, inv.Binary, inv.Args...)
	cmd.Dir = p.Dir

	captured := &capturedOutput{}
	cmd.Stdout = &captured.stdout
	cmd.Stderr = &captured.stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	result := extractExitCode(inv, err)
	result.Output = captured.stdout.String()
	result.ErrOutput = captured.stderr.String()
	result.Elapsed = elapsed
	return result
}

// extractExitCode classifies the error returned by exec.Cmd.Run.
func extractExitCode(inv Invocation, err error) *Result {
	if err == nil {
		return NewExitCodeResult(inv, 0)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The process ran; non-zero and signal exits are outcomes, not errors.
		return NewExitCodeResult(inv, exitCodeOf(exitErr.ProcessState))
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return NewStartErrorResult(inv, ExitCodeNotFound, err)
	}
	return NewStartErrorResult(inv, ExitCodeCannotExecute, err)
}
