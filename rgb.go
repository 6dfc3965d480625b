package colorscape

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// RGBColor is a color in the RGBA color space.
//
// Components are nominally in [0, 1] but are stored verbatim; only derived
// operations such as RGBA and HSB conversion clamp. The zero value is
// transparent black.
//
// An RGBColor has no internal locking. Setters must not race with other
// accesses to the same value.
type RGBColor struct {
	red, green, blue, alpha float64
}

// NewRGBColor creates a color from RGBA components.
func NewRGBColor(red, green, blue, alpha float64) RGBColor {
	return RGBColor{red: red, green: green, blue: blue, alpha: alpha}
}

// Red returns the red component.
func (c RGBColor) Red() float64 { return c.red }

// Green returns the green component.
func (c RGBColor) Green() float64 { return c.green }

// Blue returns the blue component.
func (c RGBColor) Blue() float64 { return c.blue }

// Alpha returns the alpha component.
func (c RGBColor) Alpha() float64 { return c.alpha }

// SetRed replaces the red component and returns the new value.
func (c *RGBColor) SetRed(v float64) float64 {
	c.red = v
	return c.red
}

// SetGreen replaces the green component and returns the new value.
func (c *RGBColor) SetGreen(v float64) float64 {
	c.green = v
	return c.green
}

// SetBlue replaces the blue component and returns the new value.
func (c *RGBColor) SetBlue(v float64) float64 {
	c.blue = v
	return c.blue
}

// SetAlpha replaces the alpha component and returns the new value.
func (c *RGBColor) SetAlpha(v float64) float64 {
	c.alpha = v
	return c.alpha
}

// ToHSB converts the color to the HSBA color space.
func (c RGBColor) ToHSB() HSBColor {
	return FromRGB(c)
}

// ToHTML formats the color as "#rrggbb", or "#rrggbbaa" when withAlpha is set.
//
// Each channel is floor(component*255) in lowercase hex, zero-padded to two
// digits. Components are not clamped: values outside [0, 1] produce
// malformed output and are the caller's responsibility. NaN and very large
// components convert to integers in a platform-dependent way.
func (c RGBColor) ToHTML(withAlpha bool) string {
	var sb strings.Builder
	sb.Grow(9)
	sb.WriteByte('#')
	writeHexChannel(&sb, c.red)
	writeHexChannel(&sb, c.green)
	writeHexChannel(&sb, c.blue)
	if withAlpha {
		writeHexChannel(&sb, c.alpha)
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (c RGBColor) String() string {
	return c.ToHTML(true)
}

// writeHexChannel writes one channel of ToHTML output.
func writeHexChannel(sb *strings.Builder, v float64) {
	s := strconv.FormatInt(int64(math.Floor(v*255)), 16)
	if len(s) < 2 {
		sb.WriteByte('0')
	}
	sb.WriteString(s)
}

// RGBA implements the color.Color interface.
// Returns premultiplied alpha values in the range [0, 65535].
// Components are clamped to [0, 1] first.
func (c RGBColor) RGBA() (r, g, b, a uint32) {
	alpha := Clamp01(c.alpha)
	r = uint32(Clamp01(c.red) * alpha * 65535)
	g = uint32(Clamp01(c.green) * alpha * 65535)
	b = uint32(Clamp01(c.blue) * alpha * 65535)
	a = uint32(alpha * 65535)
	return r, g, b, a
}

// FromColor converts a standard color.Color to RGBColor.
// The premultiplied values reported by c are un-premultiplied.
func FromColor(c color.Color) RGBColor {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBColor{
		red:   float64(n.R) / 65535,
		green: float64(n.G) / 65535,
		blue:  float64(n.B) / 65535,
		alpha: float64(n.A) / 65535,
	}
}

// LerpRGB interpolates component-wise between c1 and c2.
// t is clamped to [0, 1].
func LerpRGB(c1, c2 RGBColor, t float64) RGBColor {
	return RGBColor{
		red:   Lerp(c1.red, c2.red, t),
		green: Lerp(c1.green, c2.green, t),
		blue:  Lerp(c1.blue, c2.blue, t),
		alpha: Lerp(c1.alpha, c2.alpha, t),
	}
}

// Common colors
var (
	Black       = NewRGBColor(0, 0, 0, 1)
	White       = NewRGBColor(1, 1, 1, 1)
	Red         = NewRGBColor(1, 0, 0, 1)
	Green       = NewRGBColor(0, 1, 0, 1)
	Blue        = NewRGBColor(0, 0, 1, 1)
	Transparent = NewRGBColor(0, 0, 0, 0)
)
