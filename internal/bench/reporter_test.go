// SPDX-License-Identifier: MPL-2.0

package bench

import (
	"bytes"
	"errors"
	goruntime "runtime"
	"strings"
	"testing"

	"github.com/invowk/structbench/internal/runtime"
	"github.com/invowk/structbench/internal/targets"
)

var testInvocation = runtime.Invocation{Binary: "hpcstruct", Args: []string{"-j", "4", "-o", "tmp.txt", "a.bin"}}

func TestTextReporter_Experiment(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	NewTextReporter(&out).Experiment(targets.Target{Path: "a.bin", Line: 1}, 1, 2)

	if got := out.String(); got != "Experiment for a.bin [1/2]\n" {
		t.Errorf("Experiment() wrote %q", got)
	}
}

func TestTextReporter_Result(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *runtime.Result
		want   string
	}{
		{
			name:   "clean run prints nothing",
			result: &runtime.Result{Invocation: testInvocation},
			want:   "",
		},
		{
			name:   "stdout reported verbatim",
			result: &runtime.Result{Invocation: testInvocation, Output: "line 1\nline 2\n"},
			want:   "hpcstruct -j 4 -o tmp.txt a.bin has stdout output\nline 1\nline 2\n",
		},
		{
			name:   "stderr reported without trailing newline",
			result: &runtime.Result{Invocation: testInvocation, ErrOutput: "WARNING: no debug info"},
			want:   "hpcstruct -j 4 -o tmp.txt a.bin has stderr output\nWARNING: no debug info\n",
		},
		{
			name:   "stdout before stderr before exit status",
			result: &runtime.Result{Invocation: testInvocation, Output: "o\n", ErrOutput: "e\n", ExitCode: 2},
			want: "hpcstruct -j 4 -o tmp.txt a.bin has stdout output\no\n" +
				"hpcstruct -j 4 -o tmp.txt a.bin has stderr output\ne\n" +
				"hpcstruct -j 4 -o tmp.txt a.bin exited with status 2\n",
		},
		{
			name:   "start failure",
			result: runtime.NewStartErrorResult(testInvocation, runtime.ExitCodeNotFound, errors.New("executable file not found in $PATH")),
			want:   "hpcstruct -j 4 -o tmp.txt a.bin failed to start: executable file not found in $PATH\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			NewTextReporter(&out).Result(tt.result)
			if got := out.String(); got != tt.want {
				t.Errorf("Result() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextReporter_Signal(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	NewTextReporter(&out).Result(runtime.NewExitCodeResult(testInvocation, runtime.ExitCodeFromSignal(11)))

	got := out.String()
	if !strings.HasPrefix(got, "hpcstruct -j 4 -o tmp.txt a.bin failed with signal 11") {
		t.Errorf("Result() wrote %q", got)
	}
	if goruntime.GOOS != "windows" && !strings.Contains(got, "(SIGSEGV)") {
		t.Errorf("Result() wrote %q, want signal name", got)
	}
}
