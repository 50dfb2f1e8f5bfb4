// Package report renders contexts, concepts and lattices for people: styled
// terminal tables built with lipgloss and charts built with gonum/plot.
//
// Everything here consumes values computed by packages fca and lattice and
// never changes them.
package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	ColorAccent  = lipgloss.Color("#2CD7C7")
	ColorPrimary = lipgloss.Color("#20B9B4")
	ColorBorder  = lipgloss.Color("#16858E")
	ColorMuted   = lipgloss.Color("#2C4A54")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
)

// Styles holds the pre-configured lipgloss styles used by the renderers.
var Styles = struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Border   lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Subtitle: lipgloss.NewStyle().Foreground(ColorPrimary),
	Header:   lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Padding(0, 1),
	Cell:     lipgloss.NewStyle().Padding(0, 1),
	Border:   lipgloss.NewStyle().Foreground(ColorBorder),
	Muted:    lipgloss.NewStyle().Foreground(ColorMuted),
	Success:  lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Error:    lipgloss.NewStyle().Bold(true).Foreground(ColorError),
}

// Marks used in tables.
const (
	MarkIncident = "×"
	MarkYes      = "✓"
	MarkNo       = "✗"
)
