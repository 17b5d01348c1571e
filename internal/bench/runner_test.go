// SPDX-License-Identifier: MPL-2.0

package bench

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/invowk/structbench/internal/config"
	"github.com/invowk/structbench/internal/runtime"
	"github.com/invowk/structbench/internal/targets"
)

type (
	// recordingInvoker records every invocation and answers from a script.
	recordingInvoker struct {
		calls   []runtime.Invocation
		respond func(call int, inv runtime.Invocation) *runtime.Result
	}

	// recordingReporter keeps the event order seen by the runner.
	recordingReporter struct {
		events []string
	}
)

func (f *recordingInvoker) Invoke(_ context.Context, inv runtime.Invocation) *runtime.Result {
	f.calls = append(f.calls, inv)
	if f.respond != nil {
		if result := f.respond(len(f.calls), inv); result != nil {
			return result
		}
	}
	return runtime.NewExitCodeResult(inv, 0)
}

func (r *recordingReporter) Experiment(target targets.Target, position, total int) {
	r.events = append(r.events, "experiment "+target.Path)
}

func (r *recordingReporter) Result(result *runtime.Result) {
	r.events = append(r.events, "result "+result.Invocation.Args[len(result.Invocation.Args)-1])
}

func testConfig(rep, thread, start int) *config.RunConfig {
	return &config.RunConfig{
		FileListPath: "bins.txt",
		Repetitions:  config.Repetitions(rep),
		ThreadCount:  config.ThreadCount(thread),
		StartLine:    config.StartLine(start),
		Tool:         config.ToolConfig{Binary: "hpcstruct", OutputFile: "tmp.txt"},
	}
}

func testList(t *testing.T, content string) targets.List {
	t.Helper()
	list, err := targets.Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	return list
}

func lastArgs(calls []runtime.Invocation) []string {
	var out []string
	for _, c := range calls {
		out = append(out, c.Args[len(c.Args)-1])
	}
	return out
}

func TestRunAll_InvokesEachTargetRepTimesInOrder(t *testing.T) {
	t.Parallel()

	invoker := &recordingInvoker{}
	reporter := &recordingReporter{}
	NewRunner(invoker, reporter, nil).RunAll(context.Background(), testConfig(2, 4, 1), testList(t, "a.bin\nb.bin\n"))

	if got, want := lastArgs(invoker.calls), []string{"a.bin", "a.bin", "b.bin", "b.bin"}; !slices.Equal(got, want) {
		t.Errorf("invocation targets = %q, want %q", got, want)
	}
	for i, call := range invoker.calls {
		want := []string{"hpcstruct", "-j", "4", "-o", "tmp.txt", call.Args[len(call.Args)-1]}
		if !slices.Equal(call.Argv(), want) {
			t.Errorf("call %d argv = %q, want %q", i, call.Argv(), want)
		}
	}

	wantEvents := []string{
		"experiment a.bin", "result a.bin", "result a.bin",
		"experiment b.bin", "result b.bin", "result b.bin",
	}
	if !slices.Equal(reporter.events, wantEvents) {
		t.Errorf("events = %q, want %q", reporter.events, wantEvents)
	}
}

func TestRunAll_StartSkipsEarlierTargets(t *testing.T) {
	t.Parallel()

	invoker := &recordingInvoker{}
	NewRunner(invoker, &recordingReporter{}, nil).RunAll(context.Background(), testConfig(2, 4, 2), testList(t, "a.bin\nb.bin\n"))

	if got, want := lastArgs(invoker.calls), []string{"b.bin", "b.bin"}; !slices.Equal(got, want) {
		t.Errorf("invocation targets = %q, want %q", got, want)
	}
}

func TestRunAll_StartPastEnd(t *testing.T) {
	t.Parallel()

	invoker := &recordingInvoker{}
	reporter := &recordingReporter{}
	NewRunner(invoker, reporter, nil).RunAll(context.Background(), testConfig(5, 16, 3), testList(t, "a.bin\nb.bin\n"))

	if len(invoker.calls) != 0 || len(reporter.events) != 0 {
		t.Errorf("expected no work, got %d calls and events %q", len(invoker.calls), reporter.events)
	}
}

func TestRunAll_InvocationCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		list  string
		rep   int
		start int
		want  int
	}{
		{"defaults over three targets", "a\nb\nc\n", 5, 1, 15},
		{"blank lines ignored", "a\n\nb\n\n", 3, 1, 6},
		{"single repetition", "a\nb\n", 1, 1, 2},
		{"offset", "a\nb\nc\nd\n", 2, 3, 4},
		{"empty list", "", 5, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			invoker := &recordingInvoker{}
			NewRunner(invoker, &recordingReporter{}, nil).RunAll(context.Background(), testConfig(tt.rep, 16, tt.start), testList(t, tt.list))
			if len(invoker.calls) != tt.want {
				t.Errorf("invocations = %d, want %d", len(invoker.calls), tt.want)
			}
		})
	}
}

func TestRunAll_ContinuesAfterFailures(t *testing.T) {
	t.Parallel()

	invoker := &recordingInvoker{
		respond: func(call int, inv runtime.Invocation) *runtime.Result {
			switch call {
			case 1:
				return runtime.NewExitCodeResult(inv, runtime.ExitCodeFromSignal(11))
			case 2:
				return runtime.NewExitCodeResult(inv, 1)
			case 3:
				return runtime.NewStartErrorResult(inv, runtime.ExitCodeNotFound, context.DeadlineExceeded)
			}
			return nil
		},
	}

	var out bytes.Buffer
	NewRunner(invoker, NewTextReporter(&out), nil).RunAll(context.Background(), testConfig(2, 4, 1), testList(t, "a.bin\nb.bin\n"))

	if len(invoker.calls) != 4 {
		t.Fatalf("invocations = %d, want 4", len(invoker.calls))
	}
	report := out.String()
	for _, want := range []string{
		"hpcstruct -j 4 -o tmp.txt a.bin failed with signal 11",
		"hpcstruct -j 4 -o tmp.txt a.bin exited with status 1",
		"hpcstruct -j 4 -o tmp.txt b.bin failed to start",
		"Experiment for b.bin [2/2]",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}
