// Package tui renders the timer's text: banner, progress bar and messages.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/pomodoro-cli/internal/gradient"
)

// CellRune is the glyph used for a filled progress cell.
const CellRune = "░"

// hintColor is the gray used for secondary text.
var hintColor = gradient.RGB{R: 127, G: 127, B: 127}

// Styles renders text for one terminal.
type Styles struct {
	renderer *lipgloss.Renderer
	title    lipgloss.Style
	hint     lipgloss.Style
	key      lipgloss.Style
}

// NewStyles creates styles bound to r.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		renderer: r,
		title:    r.NewStyle().Bold(true),
		hint:     r.NewStyle().Foreground(lipgloss.Color(hintColor.Hex())),
		key:      r.NewStyle().Bold(true),
	}
}

// Hint renders secondary text in gray.
func (s *Styles) Hint(text string) string {
	return s.hint.Render(text)
}

// Cell renders one progress cell in color c.
func (s *Styles) Cell(c gradient.RGB) string {
	return s.renderer.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(CellRune)
}

// Swatch renders the next n colors of g as a row of cells.
func (s *Styles) Swatch(g gradient.Gradient, n int) string {
	var b strings.Builder
	for _, c := range g.Take(n) {
		b.WriteString(s.Cell(c))
	}
	return b.String()
}

// Banner returns the lines printed at the top of a cleared screen, with the
// intro below the title when set. The two trailing blank lines leave room for
// the first progress bar.
func (s *Styles) Banner(intro string) []string {
	lines := []string{
		s.title.Render("Pomodoro is running!") + " " + s.Hint("(q to quit, p to pause, r to resume, R to refresh)"),
	}
	if intro != "" {
		lines = append(lines, s.Hint(intro))
	}
	return append(lines, "", "")
}

// HelpBanner is Banner with the full key legend.
func (s *Styles) HelpBanner() []string {
	legend := []struct{ key, desc string }{
		{"q", "quit (also Ctrl-C)"},
		{"p", "pause the current interval"},
		{"r", "resume after a pause"},
		{"R", "clear the screen and redraw the banner"},
		{"h", "show or hide this help"},
	}
	lines := []string{s.title.Render("Pomodoro is running!"), ""}
	for _, l := range legend {
		lines = append(lines, "  "+s.key.Render(l.key)+"  "+s.Hint(l.desc))
	}
	return append(lines, "", "")
}

// Farewell is printed when the user quits.
func (s *Styles) Farewell() string {
	return "We’re done for now, bye bye!"
}
