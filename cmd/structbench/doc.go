// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the structbench command line.
//
// The root command parses the run parameters, loads the file list and hands
// both to the benchmark runner. App wires the services the command uses so
// tests can replace the process invoker.
package cmd
