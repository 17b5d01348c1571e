// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/invowk/structbench/internal/config"
	"github.com/invowk/structbench/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// newRootCommand builds the root command around app.
func newRootCommand(app *App) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "structbench --filelist FILE [flags]",
		Short: "Run hpcstruct on a list of binaries",
		Long: TitleStyle.Render("structbench") + SubtitleStyle.Render(" - Run hpcstruct on a list of binaries") + `

structbench invokes the structure analysis tool once per repetition for every
binary in a file list, one process at a time, and reports any output the tool
writes and any run that ends with a signal.

` + SubtitleStyle.Render("Examples:") + `
  structbench --filelist bins.txt                  5 runs per binary, 16 threads
  structbench --filelist bins.txt --rep 2 --thread 4
  structbench --filelist bins.txt --start 12       resume at the 12th binary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), config.LoadOptions{
				ConfigFilePath: cfgFile,
				Flags:          cmd.Flags(),
			})
		},
	}

	flags := rootCmd.Flags()
	flags.String(config.KeyFileList, "", "a list of binaries for benchmarking, one path per line (required)")
	flags.Int(config.KeyRepetitions, int(config.DefaultRepetitions), "the number of iterations to run on each binary")
	flags.Int(config.KeyThreadCount, int(config.DefaultThreadCount), "the number of threads passed to the tool")
	flags.Int(config.KeyStartLine, int(config.DefaultStartLine), "1-based position in the file list of the first binary to run")
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./structbench.cue when present)")
	flags.BoolP(config.KeyVerbose, "v", false, "enable verbose diagnostics on stderr")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return issue.NewErrorContext().
			WithOperation("parse command-line flags").
			WithSuggestion("Run 'structbench --help' for usage").
			Wrap(config.NewFlagError(err)).
			BuildError()
	})

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI with the process arguments and exits.
// This is called by main.main().
func Execute() {
	os.Exit(Main())
}

// Main runs the CLI with the process arguments and returns the exit status.
func Main() int {
	return run(context.Background(), NewApp(Dependencies{}), os.Args[1:])
}

// run executes the root command with args and maps the outcome to an exit
// status. Tool failures never reach here; only configuration and file list
// errors produce a non-zero status.
func run(ctx context.Context, app *App, args []string) int {
	rootCmd := newRootCommand(app)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			verbose, _ := rootCmd.Flags().GetBool(config.KeyVerbose)
			style := errorStyle(lipgloss.NewRenderer(w))
			fmt.Fprintln(w, style.Render("Error:")+" "+formatErrorForDisplay(err, verbose))
		}),
	)
	return exitCodeOf(err)
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
