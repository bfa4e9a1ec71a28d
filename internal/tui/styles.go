// Package tui renders engine results for the terminal: lipgloss cards for a
// comparison and a bubbles table for supplier rankings.
package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Palette (ANSI 256).
const (
	ColorHeader  = lipgloss.Color("39")
	ColorLabel   = lipgloss.Color("245")
	ColorValue   = lipgloss.Color("255")
	ColorOK      = lipgloss.Color("42")
	ColorWarning = lipgloss.Color("214")
	ColorMuted   = lipgloss.Color("240")
	ColorBorder  = lipgloss.Color("63")
	ColorBest    = lipgloss.Color("35")
)

// Icons.
const (
	IconArrowUp    = "↑"
	IconArrowDown  = "↓"
	IconArrowRight = "→"
	IconWarning    = "!"
	IconBest       = "★"
)

//nolint:gochecknoglobals // Shared styles, configured once per process.
var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle   = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorValue)
	SubtleStyle  = lipgloss.NewStyle().Italic(true).Foreground(ColorMuted)
	InfoStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	OKStyle      = lipgloss.NewStyle().Foreground(ColorOK)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
	BestBoxStyle = BoxStyle.BorderForeground(ColorBest)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHeader).
				Padding(0, 1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorBorder)
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ConfigureColor enables colour output when w is a terminal and strips all
// colour otherwise, so piped output stays plain.
func ConfigureColor(w io.Writer) {
	if IsTerminal(w) {
		lipgloss.SetColorProfile(termenv.ANSI256)
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}
