package gradient

import "fmt"

// Sample is a labelled gradient used to preview the palette.
type Sample struct {
	Label    string
	Gradient Gradient
}

// Samples returns the preview set for a pair of bounded angles: the bounded
// arc in both directions, a full cycle in both directions, and a double cycle.
func Samples(start, end float64, length int) []Sample {
	half := length / 2
	if half < 1 {
		half = 1
	}
	return []Sample{
		{
			Label:    fmt.Sprintf("%g° to %g°, clockwise", start, end),
			Gradient: New(Bounded(start, end), Clockwise, length),
		},
		{
			Label:    fmt.Sprintf("%g° to %g°, counter-clockwise", end, start),
			Gradient: New(Bounded(end, start), CounterClockwise, length),
		},
		{
			Label:    fmt.Sprintf("Cycle beginning at %g°, clockwise", end),
			Gradient: New(Cycle(end), Clockwise, length),
		},
		{
			Label:    fmt.Sprintf("Cycle beginning at %g°, counter-clockwise", end),
			Gradient: New(Cycle(end), CounterClockwise, length),
		},
		{
			Label:    fmt.Sprintf("Double-Cycle beginning at %g°, clockwise", end),
			Gradient: New(Cycle(end), Clockwise, half),
		},
		{
			Label:    fmt.Sprintf("Double-Cycle beginning at %g°, counter-clockwise", end),
			Gradient: New(Cycle(end), CounterClockwise, half),
		},
	}
}
