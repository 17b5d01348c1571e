// SPDX-License-Identifier: MPL-2.0

// Package config builds the immutable RunConfig for a benchmark run.
//
// Values are layered with Viper: built-in defaults, then an optional CUE
// config file (structbench.cue, validated against the embedded #Config
// schema), then command-line flags that were explicitly set. The --filelist
// option is only accepted on the command line.
package config
