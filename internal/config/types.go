// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultRepetitions is the number of invocations per target.
	DefaultRepetitions Repetitions = 5
	// DefaultThreadCount is the thread count forwarded to the tool.
	DefaultThreadCount ThreadCount = 16
	// DefaultStartLine starts the run at the first target.
	DefaultStartLine StartLine = 1

	// DefaultToolBinary is the analysis tool invoked for every repetition.
	DefaultToolBinary = "hpcstruct"
	// DefaultOutputFile is the fixed output name handed to the tool through -o.
	DefaultOutputFile = "tmp.txt"
)

// ErrConfig is the sentinel error wrapped by ConfigError.
var ErrConfig = errors.New("invalid configuration")

type (
	// FileListPath is the path to the newline-delimited list of targets.
	FileListPath string

	// Repetitions is the number of sequential invocations per target (>= 1).
	Repetitions int

	// ThreadCount is forwarded verbatim to the tool's -j flag (>= 1).
	// It does not control any concurrency inside the runner.
	ThreadCount int

	// StartLine is the 1-based index of the first target to process (>= 1).
	StartLine int

	// ConfigError reports a missing or unusable run parameter. It wraps
	// ErrConfig, and Cause when set, for errors.Is() compatibility.
	ConfigError struct {
		// Option is the flag name without leading dashes, or a dotted config key.
		Option string
		// Value is the rejected value, if any.
		Value string
		// Reason says what is wrong with it.
		Reason string
		// Cause is the underlying parse error, if any.
		Cause error
	}

	// ToolConfig describes how the external analysis tool is launched.
	ToolConfig struct {
		// Binary is the program name or path, resolved through PATH.
		Binary string
		// OutputFile is passed through -o. The tool owns this file; the runner
		// never reads, locks or removes it.
		OutputFile string
		// ExtraArgs are inserted after the fixed flags and before the target.
		ExtraArgs []string
	}

	// RunConfig holds the parameters of one benchmark run. It is built once
	// by Load and never mutated afterwards.
	RunConfig struct {
		FileListPath FileListPath
		Repetitions  Repetitions
		ThreadCount  ThreadCount
		StartLine    StartLine
		Tool         ToolConfig
		Verbose      bool

		// Source is the config file that contributed values, or "" for none.
		Source string
	}
)

// Error implements the error interface.
func (e *ConfigError) Error() string {
	name := e.Option
	if !strings.Contains(name, ".") {
		name = "--" + name
	}
	msg := fmt.Sprintf("%s: %s", name, e.Reason)
	if e.Value != "" {
		msg = fmt.Sprintf("%s %q: %s", name, e.Value, e.Reason)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns ErrConfig and the parse cause, if any.
func (e *ConfigError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrConfig, e.Cause}
	}
	return []error{ErrConfig}
}

// String returns the path as a string.
func (p FileListPath) String() string { return string(p) }

// IsValid reports whether the path is non-blank.
func (p FileListPath) IsValid() (bool, []error) {
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&ConfigError{Option: "filelist", Reason: "required option is missing"}}
	}
	return true, nil
}

// IsValid reports whether the repetition count is at least 1.
func (r Repetitions) IsValid() (bool, []error) {
	if r < 1 {
		return false, []error{atLeastOne("rep", int(r))}
	}
	return true, nil
}

// IsValid reports whether the thread count is at least 1.
func (t ThreadCount) IsValid() (bool, []error) {
	if t < 1 {
		return false, []error{atLeastOne("thread", int(t))}
	}
	return true, nil
}

// String returns the decimal form used on the tool's command line.
func (t ThreadCount) String() string { return strconv.Itoa(int(t)) }

// IsValid reports whether the start line is at least 1.
func (s StartLine) IsValid() (bool, []error) {
	if s < 1 {
		return false, []error{atLeastOne("start", int(s))}
	}
	return true, nil
}

// Index converts the 1-based start line into a 0-based slice index.
func (s StartLine) Index() int { return int(s) - 1 }

// IsValid reports whether the binary and output file are set.
func (t ToolConfig) IsValid() (bool, []error) {
	var errs []error
	if strings.TrimSpace(t.Binary) == "" {
		errs = append(errs, &ConfigError{Option: "tool.binary", Reason: "must not be empty"})
	}
	if strings.TrimSpace(t.OutputFile) == "" {
		errs = append(errs, &ConfigError{Option: "tool.output_file", Reason: "must not be empty"})
	}
	if len(errs) > 0 {
		return false, errs
	}
	return true, nil
}

// IsValid collects the field errors of every component.
func (c RunConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.FileListPath.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Repetitions.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.ThreadCount.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.StartLine.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Tool.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, errs
	}
	return true, nil
}

// Validate joins the field errors from IsValid into a single error.
func (c RunConfig) Validate() error {
	if valid, errs := c.IsValid(); !valid {
		return errors.Join(errs...)
	}
	return nil
}

// NewFlagError converts a flag parsing failure into a ConfigError.
func NewFlagError(err error) error {
	if err == nil {
		return nil
	}
	return &ConfigError{Option: flagNameFromError(err), Reason: "cannot be parsed", Cause: err}
}

func atLeastOne(option string, v int) *ConfigError {
	return &ConfigError{Option: option, Value: strconv.Itoa(v), Reason: "must be at least 1"}
}

// flagNameFromError extracts the flag name from pflag messages such as
// `invalid argument "x" for "--rep" flag: ...`.
func flagNameFromError(err error) string {
	msg := err.Error()
	if _, rest, ok := strings.Cut(msg, `for "`); ok {
		if name, _, ok := strings.Cut(rest, `"`); ok {
			name = strings.TrimLeft(name, "-")
			if _, long, ok := strings.Cut(name, ", --"); ok {
				name = long
			}
			return name
		}
	}
	if _, rest, ok := strings.Cut(msg, ": --"); ok {
		name, _, _ := strings.Cut(rest, " ")
		return name
	}
	return "flags"
}
