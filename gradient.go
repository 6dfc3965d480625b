package colorscape

import (
	"context"
	"log/slog"
	"math"
	"sort"
)

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64  // Position in gradient, 0.0 to 1.0
	Color  RGBColor // Color at this position
}

// Gradient blends a sequence of color stops.
//
// Stops are interpolated pairwise in the configured Space. In SpaceHSB,
// each pair is converted with FromRGB and blended with LerpHSB, so a
// red-to-blue gradient passes through magenta rather than a muddy purple.
//
// A Gradient is immutable after creation and safe for concurrent use.
//
// Example:
//
//	g := colorscape.NewGradient([]colorscape.ColorStop{
//	    {Offset: 0, Color: colorscape.Red},
//	    {Offset: 1, Color: colorscape.Blue},
//	})
//	mid := g.ColorAt(0.5)
type Gradient struct {
	stops  []ColorStop
	extend ExtendMode
	space  Space
}

// NewGradient creates a gradient from the given stops.
// The stops are copied and sorted by offset; stops with a NaN offset are
// dropped.
func NewGradient(stops []ColorStop, opts ...GradientOption) *Gradient {
	o := defaultGradientOptions()
	for _, opt := range opts {
		opt(&o)
	}

	kept := make([]ColorStop, 0, len(stops))
	for i, s := range stops {
		if math.IsNaN(s.Offset) {
			Logger().Warn("colorscape: dropping gradient stop with NaN offset", slog.Int("index", i))
			continue
		}
		kept = append(kept, s)
	}

	sorted := sortStops(kept)
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("colorscape: gradient created",
			slog.Int("stops", len(sorted)),
			slog.Bool("resorted", !stopsSorted(kept)),
			slog.String("space", o.space.String()))
	}

	return &Gradient{
		stops:  sorted,
		extend: o.extend,
		space:  o.space,
	}
}

// Stops returns a copy of the gradient's sorted stops.
func (g *Gradient) Stops() []ColorStop {
	out := make([]ColorStop, len(g.stops))
	copy(out, g.stops)
	return out
}

// ExtendMode returns the gradient's extend mode.
func (g *Gradient) ExtendMode() ExtendMode { return g.extend }

// Space returns the gradient's interpolation space.
func (g *Gradient) Space() Space { return g.space }

// ColorAt returns the color at offset t.
// An empty gradient is Transparent; a single stop is returned as is.
// Infinite t always resolves to the first or last stop.
func (g *Gradient) ColorAt(t float64) RGBColor {
	stops := g.stops
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	t = applyExtendMode(t, g.extend)

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	stop1 := stops[idx-1]
	stop2 := stops[idx]

	// Avoid division by zero for coincident stops
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return g.interpolate(stop1.Color, stop2.Color, localT)
}

// Steps samples n evenly spaced colors from offset 0 to 1 inclusive.
func (g *Gradient) Steps(n int) []RGBColor {
	if n <= 0 {
		return nil
	}
	out := make([]RGBColor, n)
	if n == 1 {
		out[0] = g.ColorAt(0)
		return out
	}
	for i := range out {
		out[i] = g.ColorAt(float64(i) / float64(n-1))
	}
	return out
}

func (g *Gradient) interpolate(c1, c2 RGBColor, t float64) RGBColor {
	if g.space == SpaceRGB {
		return LerpRGB(c1, c2, t)
	}
	return LerpHSB(FromRGB(c1), FromRGB(c2), t).ToRGB()
}

// sortStops returns a copy of stops sorted by offset.
// Stops sharing an offset keep their relative order.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	return sorted
}

func stopsSorted(stops []ColorStop) bool {
	return sort.SliceIsSorted(stops, func(i, j int) bool {
		return stops[i].Offset < stops[j].Offset
	})
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
// Infinite t is padded for every mode; NaN is returned unchanged.
func applyExtendMode(t float64, mode ExtendMode) float64 {
	if math.IsInf(t, 0) {
		mode = ExtendPad
	}
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		// Period 2: forward on [0,1), backward on [1,2).
		t = math.Mod(math.Abs(t), 2)
		if t > 1 {
			t = 2 - t
		}
	default: // ExtendPad
		t = Clamp01(t)
	}
	return t
}
