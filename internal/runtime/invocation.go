// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"strconv"
	"strings"

	"github.com/invowk/structbench/internal/config"

	"mvdan.cc/sh/v3/syntax"
)

// Invocation is one launch of the analysis tool as an explicit argument
// vector.
type Invocation struct {
	// Binary is the program name or path. Names without a separator are
	// resolved through PATH.
	Binary string
	// Args are the arguments after the program name.
	Args []string
}

// NewToolInvocation builds the tool command line for one target:
//
//	<binary> -j <threads> -o <output file> [extra args...] <target>
func NewToolInvocation(tool config.ToolConfig, target string, threads config.ThreadCount) Invocation {
	args := make([]string, 0, 5+len(tool.ExtraArgs))
	args = append(args, "-j", threads.String(), "-o", tool.OutputFile)
	args = append(args, tool.ExtraArgs...)
	args = append(args, target)
	return Invocation{Binary: tool.Binary, Args: args}
}

// Argv returns the program name followed by its arguments.
func (i Invocation) Argv() []string {
	return append([]string{i.Binary}, i.Args...)
}

// String returns the shell-quoted command line.
func (i Invocation) String() string {
	return QuoteArgs(i.Argv())
}

// QuoteArgs joins args into a command line that a bash-compatible shell
// would split back into the same words. Words that need no quoting are left
// as they are.
func QuoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		q, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			// Only strings with NUL bytes cannot be quoted; they cannot be
			// passed to exec either, so a Go-quoted form is good enough.
			q = strconv.Quote(arg)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " ")
}
