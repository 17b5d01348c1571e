// SPDX-License-Identifier: MPL-2.0

package targets

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/invowk/structbench/internal/issue"
)

// ErrFileList is the sentinel error wrapped by IOError.
var ErrFileList = errors.New("file list unreadable")

type (
	// Target is one binary to analyze.
	Target struct {
		// Path is the file path exactly as written in the list, minus the
		// line terminator.
		Path string
		// Line is the 1-based line number in the file list.
		Line int
	}

	// List is the ordered set of targets. Order defines run order and the
	// meaning of --start.
	List []Target

	// IOError is returned when the file list cannot be opened or read.
	// It wraps ErrFileList and the underlying error.
	IOError struct {
		Path string
		Err  error
	}
)

// Error implements the error interface.
func (e *IOError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot read file list %s", e.Path)
	}
	return e.Err.Error()
}

// Unwrap returns ErrFileList and the underlying error.
func (e *IOError) Unwrap() []error { return []error{ErrFileList, e.Err} }

// Paths returns the target paths in order.
func (l List) Paths() []string {
	paths := make([]string, len(l))
	for i, t := range l {
		paths[i] = t.Path
	}
	return paths
}

// From returns the targets starting at the given 1-based position. A start
// past the end yields an empty list.
func (l List) From(start int) List {
	if start < 1 {
		start = 1
	}
	if start > len(l) {
		return nil
	}
	return l[start-1:]
}

// Load reads the file list at path. Failures are reported as an
// *issue.ActionableError wrapping an *IOError.
func Load(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fileListError(path, err)
	}
	defer func() { _ = f.Close() }() // Read-only file; close error non-critical

	list, err := Parse(f)
	if err != nil {
		return nil, fileListError(path, err)
	}
	return list, nil
}

// Parse reads one target per line from r. The line terminator (LF or CRLF)
// is trimmed; lines that are empty or whitespace-only are skipped but still
// counted for line numbering. A final line without a terminator is kept
// intact.
func Parse(r io.Reader) (List, error) {
	var list List

	reader := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

		path := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if strings.TrimSpace(path) != "" {
			list = append(list, Target{Path: path, Line: lineNo})
		}

		if err != nil {
			return list, nil
		}
	}
}

func fileListError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("read file list").
		WithResource(path).
		WithSuggestion("Check that --filelist points to an existing, readable file").
		WithSuggestion("The file should contain one binary path per line").
		Wrap(&IOError{Path: path, Err: err}).
		BuildError()
}
