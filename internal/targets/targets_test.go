// SPDX-License-Identifier: MPL-2.0

package targets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/invowk/structbench/internal/issue"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantPaths []string
		wantLines []int
	}{
		{
			name:      "trailing newline",
			input:     "a.bin\nb.bin\n",
			wantPaths: []string{"a.bin", "b.bin"},
			wantLines: []int{1, 2},
		},
		{
			name:      "no final newline keeps last path intact",
			input:     "a.bin\nb.bin",
			wantPaths: []string{"a.bin", "b.bin"},
			wantLines: []int{1, 2},
		},
		{
			name:      "crlf line endings",
			input:     "a.bin\r\nb.bin\r\n",
			wantPaths: []string{"a.bin", "b.bin"},
			wantLines: []int{1, 2},
		},
		{
			name:      "blank lines skipped but counted",
			input:     "\na.bin\n\n   \nb.bin\n\n",
			wantPaths: []string{"a.bin", "b.bin"},
			wantLines: []int{2, 5},
		},
		{
			name:      "inner spaces preserved",
			input:     "/data/my bins/x.so\n",
			wantPaths: []string{"/data/my bins/x.so"},
			wantLines: []int{1},
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			list, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse() = %v", err)
			}
			if got := list.Paths(); !slices.Equal(got, tt.wantPaths) {
				t.Errorf("Paths() = %q, want %q", got, tt.wantPaths)
			}
			for i, target := range list {
				if target.Line != tt.wantLines[i] {
					t.Errorf("target %d Line = %d, want %d", i, target.Line, tt.wantLines[i])
				}
			}
		})
	}
}

func TestList_From(t *testing.T) {
	t.Parallel()

	list := List{{Path: "a", Line: 1}, {Path: "b", Line: 2}, {Path: "c", Line: 3}}

	tests := []struct {
		start int
		want  []string
	}{
		{1, []string{"a", "b", "c"}},
		{2, []string{"b", "c"}},
		{3, []string{"c"}},
		{4, nil},
		{0, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		got := list.From(tt.start).Paths()
		if !slices.Equal(got, tt.want) {
			t.Errorf("From(%d) = %q, want %q", tt.start, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bins.txt")
	if err := os.WriteFile(path, []byte("a.bin\nb.bin\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if got := list.Paths(); !slices.Equal(got, []string{"a.bin", "b.bin"}) {
		t.Errorf("Load() = %q, want [a.bin b.bin]", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() = nil, want error")
	}

	if !errors.Is(err, ErrFileList) {
		t.Errorf("error should wrap ErrFileList, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist, got %v", err)
	}

	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Path != path {
		t.Errorf("error should be an IOError for %s, got %v", path, err)
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.Operation != "read file list" {
		t.Errorf("error should be an ActionableError, got %T", err)
	}
}

func TestLoad_Directory(t *testing.T) {
	t.Parallel()

	if _, err := Load(t.TempDir()); !errors.Is(err, ErrFileList) {
		t.Errorf("Load(dir) error = %v, want ErrFileList", err)
	}
}
