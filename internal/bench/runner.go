// SPDX-License-Identifier: MPL-2.0

package bench

import (
	"context"
	"io"

	"github.com/invowk/structbench/internal/config"
	"github.com/invowk/structbench/internal/runtime"
	"github.com/invowk/structbench/internal/targets"

	"github.com/charmbracelet/log"
)

// Runner issues the invocations of a benchmark run strictly in sequence.
type Runner struct {
	invoker  runtime.Invoker
	reporter Reporter
	logger   *log.Logger
}

// NewRunner creates a Runner. A nil logger discards diagnostics.
func NewRunner(invoker runtime.Invoker, reporter Reporter, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{invoker: invoker, reporter: reporter, logger: logger}
}

// RunAll invokes the tool cfg.Repetitions times for every target from
// position cfg.StartLine onwards, in list order. Each invocation starts only
// after the previous one has exited, and every outcome is reported before the
// next starts. Individual outcomes never stop the run.
func (r *Runner) RunAll(ctx context.Context, cfg *config.RunConfig, list targets.List) {
	selected := list.From(int(cfg.StartLine))
	if len(selected) == 0 && len(list) > 0 {
		r.logger.Warn("start position is past the end of the file list",
			"start", int(cfg.StartLine), "targets", len(list))
	}

	for i, target := range selected {
		position := int(cfg.StartLine) + i
		r.reporter.Experiment(target, position, len(list))

		for rep := 1; rep <= int(cfg.Repetitions); rep++ {
			inv := runtime.NewToolInvocation(cfg.Tool, target.Path, cfg.ThreadCount)
			result := r.invoker.Invoke(ctx, inv)

			r.logger.Debug("invocation finished",
				"target", target.Path,
				"rep", rep,
				"exit", int(result.ExitCode),
				"elapsed", result.Elapsed)

			r.reporter.Result(result)
		}
	}

	r.logger.Debug("benchmark finished",
		"targets", len(selected),
		"invocations", len(selected)*int(cfg.Repetitions))
}
