// SPDX-License-Identifier: MPL-2.0

package bench

import (
	"fmt"
	"io"
	"strings"

	"github.com/invowk/structbench/internal/runtime"
	"github.com/invowk/structbench/internal/targets"
)

type (
	// Reporter receives progress and per-invocation outcomes as they happen.
	Reporter interface {
		// Experiment marks the start of the repetitions for one target.
		// position is the 1-based index in the full list of total targets.
		Experiment(target targets.Target, position, total int)
		// Result reports one finished invocation.
		Result(result *runtime.Result)
	}

	// TextReporter writes plain text lines, styled only when w is a terminal.
	TextReporter struct {
		w      io.Writer
		styles reportStyles
	}
)

// NewTextReporter creates a reporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w, styles: newReportStyles(w)}
}

// Experiment prints "Experiment for <target> [<position>/<total>]".
func (r *TextReporter) Experiment(target targets.Target, position, total int) {
	fmt.Fprintf(r.w, "%s %s\n",
		r.styles.heading.Render("Experiment for "+target.Path),
		r.styles.position.Render(fmt.Sprintf("[%d/%d]", position, total)))
}

// Result prints nothing for a clean run. Otherwise, in order: a start
// failure, captured stdout, captured stderr, and a signal or non-zero exit.
// Captured text is written verbatim.
func (r *TextReporter) Result(result *runtime.Result) {
	cmd := r.styles.command.Render(result.Invocation.String())

	if !result.Started() {
		fmt.Fprintf(r.w, "%s %s\n", cmd, r.styles.failure.Render("failed to start: "+result.Error.Error()))
		return
	}

	if result.HasOutput() {
		fmt.Fprintf(r.w, "%s %s\n", cmd, r.styles.info.Render("has stdout output"))
		r.writeCaptured(result.Output)
	}

	if result.HasErrOutput() {
		fmt.Fprintf(r.w, "%s %s\n", cmd, r.styles.info.Render("has stderr output"))
		r.writeCaptured(result.ErrOutput)
	}

	switch code := result.ExitCode; {
	case code.IsSignal():
		msg := fmt.Sprintf("failed with signal %d", code.Signal())
		if name := code.SignalName(); name != "" {
			msg += " (" + name + ")"
		}
		fmt.Fprintf(r.w, "%s %s\n", cmd, r.styles.failure.Render(msg))
	case !code.IsSuccess():
		fmt.Fprintf(r.w, "%s %s\n", cmd, r.styles.info.Render("exited with status "+code.String()))
	}
}

func (r *TextReporter) writeCaptured(text string) {
	_, _ = io.WriteString(r.w, text)
	if !strings.HasSuffix(text, "\n") {
		_, _ = io.WriteString(r.w, "\n")
	}
}
