// SPDX-License-Identifier: MPL-2.0

package bench

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Report colors, shared with the CLI palette.
const (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
	colorCommand = lipgloss.Color("#3B82F6")
)

// reportStyles are bound to the renderer of the report writer, so output to
// a pipe or file stays plain text.
type reportStyles struct {
	heading  lipgloss.Style
	position lipgloss.Style
	command  lipgloss.Style
	info     lipgloss.Style
	failure  lipgloss.Style
}

func newReportStyles(w io.Writer) reportStyles {
	r := lipgloss.NewRenderer(w)
	return reportStyles{
		heading:  r.NewStyle().Bold(true).Foreground(colorPrimary),
		position: r.NewStyle().Foreground(colorMuted),
		command:  r.NewStyle().Foreground(colorCommand),
		info:     r.NewStyle().Foreground(colorWarning),
		failure:  r.NewStyle().Bold(true).Foreground(colorError),
	}
}
