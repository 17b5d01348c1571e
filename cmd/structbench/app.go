// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/invowk/structbench/internal/bench"
	"github.com/invowk/structbench/internal/config"
	"github.com/invowk/structbench/internal/runtime"
	"github.com/invowk/structbench/internal/targets"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: the root command handler delegates to it.
	App struct {
		Config  ConfigProvider
		Invoker runtime.Invoker
		stdout  io.Writer
		stderr  io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config  ConfigProvider
		Invoker runtime.Invoker
		Stdout  io.Writer
		Stderr  io.Writer
	}

	// ConfigProvider loads the run configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.RunConfig, error)
	}
)

// NewApp creates an App, filling nil dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Invoker == nil {
		deps.Invoker = runtime.NewProcessInvoker()
	}

	return &App{
		Config:  deps.Config,
		Invoker: deps.Invoker,
		stdout:  deps.Stdout,
		stderr:  deps.Stderr,
	}
}

// Run loads the configuration and the file list, then runs every
// invocation. Only configuration and file list errors are returned; tool
// outcomes are reported on stdout.
func (a *App) Run(ctx context.Context, opts config.LoadOptions) error {
	cfg, err := a.Config.Load(ctx, opts)
	if err != nil {
		return err
	}

	logger := a.newLogger(cfg.Verbose)
	logger.Debug("configuration loaded",
		"filelist", cfg.FileListPath,
		"rep", int(cfg.Repetitions),
		"thread", int(cfg.ThreadCount),
		"start", int(cfg.StartLine),
		"tool", cfg.Tool.Binary,
		"source", cfg.Source)

	list, err := targets.Load(cfg.FileListPath.String())
	if err != nil {
		return err
	}
	logger.Debug("file list loaded", "targets", len(list))

	bench.NewRunner(a.Invoker, bench.NewTextReporter(a.stdout), logger).RunAll(ctx, cfg, list)
	return nil
}

// newLogger creates the diagnostics logger on stderr.
func (a *App) newLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(a.stderr, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}
