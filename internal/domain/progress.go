package domain

import (
	"fmt"
	"time"
)

const (
	// CellCount is the width of the progress bar in cells.
	CellCount = 100
	// TickInterval is the poll/redraw period.
	TickInterval = 200 * time.Millisecond
)

// FilledCells returns how many of CellCount cells are filled after elapsed
// out of total. The result is clamped to [0, CellCount].
func FilledCells(elapsed, total time.Duration) int {
	if total <= 0 || elapsed >= total {
		return CellCount
	}
	if elapsed <= 0 {
		return 0
	}
	return int(int64(elapsed) * CellCount / int64(total))
}

// FormatElapsed renders d as (MM:SS). Minutes are not wrapped into hours.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("(%02d:%02d)", secs/60, secs%60)
}
