// Package gradient generates color sequences by walking an arc around a fixed
// center in the CIE L*u*v* chromaticity plane at constant lightness.
package gradient

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// Lightness is the fixed L* component, on the 0..100 scale.
	Lightness = 50.0
	// Radius of the arc in u*v* units.
	Radius = 150.0

	uMin, uMax = -84.0, 176.0
	vMin, vMax = -135.0, 108.0
)

// center is the midpoint of the u*v* rectangle.
var center = [2]float64{(uMin + uMax) / 2, (vMin + vMax) / 2}

// Direction is the rotational sense of a gradient.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// String returns the direction label.
func (d Direction) String() string {
	if d == CounterClockwise {
		return "counter-clockwise"
	}
	return "clockwise"
}

// SchemeKind selects how angles are generated.
type SchemeKind int

const (
	// SchemeCycle keeps rotating, one full turn per length steps.
	SchemeCycle SchemeKind = iota
	// SchemeBounded interpolates from a start angle to an end angle.
	SchemeBounded
)

// Scheme describes the arc a gradient walks. Angles are in degrees.
type Scheme struct {
	Kind  SchemeKind
	Start float64
	End   float64
}

// Cycle returns a scheme that rotates a full turn starting at start.
func Cycle(start float64) Scheme {
	return Scheme{Kind: SchemeCycle, Start: start}
}

// Bounded returns a scheme that goes from start to end.
func Bounded(start, end float64) Scheme {
	return Scheme{Kind: SchemeBounded, Start: start, End: end}
}

// RGB is a quantized display color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Gradient is a stateful color sequence. It is a value type: copies have
// independent cursors.
type Gradient struct {
	scheme    Scheme
	direction Direction
	length    int
	current   int
}

// New creates a gradient of length steps. Lengths below one are treated as one.
func New(scheme Scheme, direction Direction, length int) Gradient {
	if length < 1 {
		length = 1
	}
	return Gradient{
		scheme:    scheme,
		direction: direction,
		length:    length,
	}
}

// Fresh returns a copy of g with the cursor rewound to zero.
func (g Gradient) Fresh() Gradient {
	g.current = 0
	return g
}

// Current returns the cursor position.
func (g Gradient) Current() int { return g.current }

// Angle returns the angle in degrees at the current cursor. The value is not
// normalized to [0, 360).
func (g Gradient) Angle() float64 {
	return g.angleAt(g.current)
}

func (g Gradient) angleAt(step int) float64 {
	s := g.scheme.Start
	length := float64(g.length)

	switch g.scheme.Kind {
	case SchemeBounded:
		e := g.scheme.End
		var delta float64
		if g.direction == Clockwise {
			if s > e {
				delta = (e - s) / length
			} else {
				delta = (e - s - 360) / length
			}
		} else {
			if s < e {
				delta = (e - s) / length
			} else {
				delta = (e + 360 - s) / length
			}
		}
		return s + float64(step)*delta
	default:
		turn := float64(step) / length * 360
		if g.direction == Clockwise {
			return s - turn
		}
		return s + turn
	}
}

// Next returns the color at the cursor and advances it by one. Stepping past
// Length keeps following the same formula.
func (g *Gradient) Next() RGB {
	c := ColorAt(g.Angle())
	g.current++
	return c
}

// Take returns the next n colors.
func (g *Gradient) Take(n int) []RGB {
	if n <= 0 {
		return nil
	}
	out := make([]RGB, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}

// ColorAt maps an angle in degrees to a display color on the fixed arc.
func ColorAt(degrees float64) RGB {
	rad := degrees / 360 * 2 * math.Pi
	u := clamp(math.Cos(rad)*Radius+center[0], uMin, uMax)
	v := clamp(math.Sin(rad)*Radius+center[1], vMin, vMax)

	// go-colorful expects L* in [0,1] and u*, v* scaled by 1/100.
	c := colorful.Luv(Lightness/100, u/100, v/100).Clamped()
	return RGB{R: quantize(c.R), G: quantize(c.G), B: quantize(c.B)}
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(x, hi))
}

// quantize truncates a [0,1] channel to 0..255.
func quantize(x float64) uint8 {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(x * 255)
}
