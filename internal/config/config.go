// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invowk/structbench/internal/issue"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"mvdan.cc/sh/v3/shell"
)

const (
	// AppName is the application name.
	AppName = "structbench"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "structbench"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
)

// Viper keys. The first five double as command-line flag names.
const (
	KeyFileList       = "filelist"
	KeyRepetitions    = "rep"
	KeyThreadCount    = "thread"
	KeyStartLine      = "start"
	KeyVerbose        = "verbose"
	KeyToolBinary     = "tool.binary"
	KeyToolOutputFile = "tool.output_file"
	KeyToolExtraArgs  = "tool.extra_args"
)

//go:embed config_schema.cue
var configSchema string

// boundFlags are the flags whose explicit values override the config file.
var boundFlags = []string{KeyFileList, KeyRepetitions, KeyThreadCount, KeyStartLine, KeyVerbose}

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	// A missing file is an error.
	ConfigFilePath string
	// SearchDir is where structbench.cue is looked up when ConfigFilePath is
	// empty. The empty string means the current directory.
	SearchDir string
	// Flags is the parsed command-line flag set. May be nil.
	Flags *pflag.FlagSet
}

// Load builds the RunConfig from defaults, the optional config file and the
// parsed flags, and validates it. Validation failures are reported as an
// *issue.ActionableError wrapping one or more *ConfigError values.
func Load(ctx context.Context, opts LoadOptions) (*RunConfig, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	v.SetDefault(KeyRepetitions, int(DefaultRepetitions))
	v.SetDefault(KeyThreadCount, int(DefaultThreadCount))
	v.SetDefault(KeyStartLine, int(DefaultStartLine))
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyToolBinary, DefaultToolBinary)
	v.SetDefault(KeyToolOutputFile, DefaultOutputFile)

	source, err := mergeConfigFile(v, opts)
	if err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		for _, name := range boundFlags {
			f := opts.Flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(name, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
			}
		}
	}

	extraArgs, err := toolExtraArgs(v)
	if err != nil {
		return nil, invalidParameters(err)
	}

	cfg := &RunConfig{
		FileListPath: FileListPath(v.GetString(KeyFileList)),
		Repetitions:  Repetitions(v.GetInt(KeyRepetitions)),
		ThreadCount:  ThreadCount(v.GetInt(KeyThreadCount)),
		StartLine:    StartLine(v.GetInt(KeyStartLine)),
		Tool: ToolConfig{
			Binary:     v.GetString(KeyToolBinary),
			OutputFile: v.GetString(KeyToolOutputFile),
			ExtraArgs:  extraArgs,
		},
		Verbose: v.GetBool(KeyVerbose),
		Source:  source,
	}

	if err := cfg.Validate(); err != nil {
		return nil, invalidParameters(err)
	}

	return cfg, nil
}

func invalidParameters(err error) error {
	return issue.NewErrorContext().
		WithOperation("validate run parameters").
		WithSuggestion("Pass --filelist with the path to a newline-delimited list of binaries").
		WithSuggestion("--rep, --thread and --start take whole numbers of at least 1").
		Wrap(err).
		BuildError()
}

// mergeConfigFile merges the config file, if any, into v and returns its path.
func mergeConfigFile(v *viper.Viper, opts LoadOptions) (string, error) {
	path := opts.ConfigFilePath
	if path == "" {
		candidate := filepath.Join(opts.SearchDir, ConfigFileName+"."+ConfigFileExt)
		if !fileExists(candidate) {
			return "", nil
		}
		path = candidate
	} else if !fileExists(path) {
		return "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithSuggestion("Verify the --config path is correct").
			Wrap(&ConfigError{Option: "config", Value: path, Reason: "file not found"}).
			BuildError()
	}

	if err := loadCUEIntoViper(v, path); err != nil {
		return "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithSuggestion("Check that the file contains valid CUE syntax").
			WithSuggestion("Allowed keys: rep, thread, start, verbose, tool.binary, tool.output_file, tool.extra_args").
			Wrap(&ConfigError{Option: "config", Value: path, Reason: "does not match the #Config schema", Cause: err}).
			BuildError()
	}

	return path, nil
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema
// and merges its contents into v.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return userValue.Err()
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return err
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return err
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// toolExtraArgs accepts either a list of strings or a single string that is
// split into words with shell quoting rules. Parameter expansions in the
// string form expand to nothing; the environment is never consulted.
func toolExtraArgs(v *viper.Viper) ([]string, error) {
	switch raw := v.Get(KeyToolExtraArgs).(type) {
	case nil:
		return nil, nil
	case string:
		fields, err := shell.Fields(raw, func(string) string { return "" })
		if err != nil {
			return nil, &ConfigError{Option: KeyToolExtraArgs, Value: raw, Reason: "is not a valid word list", Cause: err}
		}
		return fields, nil
	default:
		return v.GetStringSlice(KeyToolExtraArgs), nil
	}
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
