package tui

import (
	"strings"
	"time"

	"github.com/xvierd/pomodoro-cli/internal/domain"
	"github.com/xvierd/pomodoro-cli/internal/gradient"
)

// AnnotationColumn is where a completion message starts: just past "[bar] ",
// over the elapsed readout.
const AnnotationColumn = domain.CellCount + 3

// ProgressBar accumulates colored cells for one interval. Each cell takes the
// next gradient color exactly once, so colors depend on position only.
type ProgressBar struct {
	styles   *Styles
	gradient gradient.Gradient
	cells    int
	bar      strings.Builder
}

// NewProgressBar creates an empty bar colored by g.
func (s *Styles) NewProgressBar(g gradient.Gradient) *ProgressBar {
	return &ProgressBar{styles: s, gradient: g}
}

// Update fills cells up to the position for elapsed out of total and returns
// the rendered line. The bar never shrinks.
func (p *ProgressBar) Update(elapsed, total time.Duration) string {
	n := domain.FilledCells(elapsed, total)
	if n > p.cells {
		for _, c := range p.gradient.Take(n - p.cells) {
			p.bar.WriteString(p.styles.Cell(c))
		}
		p.cells = n
	}
	return p.Line(elapsed)
}

// Line renders the bar with the elapsed readout.
func (p *ProgressBar) Line(elapsed time.Duration) string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(p.bar.String())
	b.WriteString(strings.Repeat(" ", domain.CellCount-p.cells))
	b.WriteString("] ")
	b.WriteString(p.styles.Hint(domain.FormatElapsed(elapsed)))
	return b.String()
}

// Cells returns the number of filled cells.
func (p *ProgressBar) Cells() int { return p.cells }

// Done reports whether the bar is full.
func (p *ProgressBar) Done() bool { return p.cells >= domain.CellCount }
