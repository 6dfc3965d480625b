package colorscape

import "math"

// HSBColor is a color in the HSBA color space.
//
// Hue is a fraction of a full turn in [0, 1]; saturation, brightness and
// alpha are in [0, 1]. Brightness is what HSV calls "value". Components are
// stored verbatim.
//
// Hue is undefined for black (brightness 0) and for greys (saturation 0).
// Conversions fix it to 0 in those cases and LerpHSB takes it from the
// other operand.
type HSBColor struct {
	hue, saturation, brightness, alpha float64
}

// NewHSBColor creates a color from HSBA components.
// hue is a fraction of 360 degrees.
func NewHSBColor(hue, saturation, brightness, alpha float64) HSBColor {
	return HSBColor{hue: hue, saturation: saturation, brightness: brightness, alpha: alpha}
}

// Hue returns the hue as a fraction of 360 degrees.
func (c HSBColor) Hue() float64 { return c.hue }

// Saturation returns the saturation component.
func (c HSBColor) Saturation() float64 { return c.saturation }

// Brightness returns the brightness component.
func (c HSBColor) Brightness() float64 { return c.brightness }

// Alpha returns the alpha component.
func (c HSBColor) Alpha() float64 { return c.alpha }

// SetHue replaces the hue and returns the new value.
func (c *HSBColor) SetHue(v float64) float64 {
	c.hue = v
	return c.hue
}

// SetSaturation replaces the saturation and returns the new value.
func (c *HSBColor) SetSaturation(v float64) float64 {
	c.saturation = v
	return c.saturation
}

// SetBrightness replaces the brightness and returns the new value.
func (c *HSBColor) SetBrightness(v float64) float64 {
	c.brightness = v
	return c.brightness
}

// SetAlpha replaces the alpha component and returns the new value.
func (c *HSBColor) SetAlpha(v float64) float64 {
	c.alpha = v
	return c.alpha
}

// ToHTML converts the color to RGB and formats it with RGBColor.ToHTML.
func (c HSBColor) ToHTML(withAlpha bool) string {
	return c.ToRGB().ToHTML(withAlpha)
}

// String implements fmt.Stringer.
func (c HSBColor) String() string {
	return c.ToHTML(true)
}

// RGBA implements the color.Color interface via ToRGB.
func (c HSBColor) RGBA() (r, g, b, a uint32) {
	return c.ToRGB().RGBA()
}

// FromRGB converts an RGB color to HSB.
//
// Black (any non-positive maximum channel) yields hue, saturation and
// brightness of 0. Greys yield hue 0. Alpha is copied unchanged.
func FromRGB(c RGBColor) HSBColor {
	r, g, b := c.red, c.green, c.blue
	ret := HSBColor{alpha: c.alpha}

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	if maxC <= 0 {
		return ret
	}

	var hue float64
	if maxC > minC {
		switch {
		case g == maxC:
			hue = (b-r)/delta*60 + 120
		case b == maxC:
			hue = (r-g)/delta*60 + 240
		case b > g:
			hue = (g-b)/delta*60 + 360
		default:
			hue = (g - b) / delta * 60
		}
		if hue < 0 {
			hue += 360
		}
	}

	ret.hue = hue / 360
	ret.saturation = delta / maxC
	ret.brightness = maxC
	return ret
}

// ToRGB converts the color to RGB.
//
// Each channel is clamped to [0, 1]. A hue above one full turn falls
// outside every sector and produces black. Alpha is copied unchanged.
func (c HSBColor) ToRGB() RGBColor {
	var r, g, b float64

	if c.saturation == 0 {
		r, g, b = c.brightness, c.brightness, c.brightness
	} else {
		hue := c.hue * 360
		maxC := c.brightness
		delta := c.brightness * c.saturation
		minC := c.brightness - delta
		step := delta / 60

		switch {
		case hue < 60:
			r, g, b = maxC, hue*step+minC, minC
		case hue < 120:
			r, g, b = -(hue-120)*step+minC, maxC, minC
		case hue < 180:
			r, g, b = minC, maxC, (hue-120)*step+minC
		case hue < 240:
			r, g, b = minC, -(hue-240)*step+minC, maxC
		case hue < 300:
			r, g, b = (hue-240)*step+minC, minC, maxC
		case hue <= 360:
			r, g, b = maxC, minC, -(hue-360)*step+minC
		default:
			r, g, b = 0, 0, 0
		}
	}

	return RGBColor{
		red:   Clamp01(r),
		green: Clamp01(g),
		blue:  Clamp01(b),
		alpha: c.alpha,
	}
}

// LerpHSB interpolates between c1 and c2 in HSB space.
//
// Hue follows the shorter arc around the color wheel. When one operand is
// black, hue and saturation come from the other operand; when one is grey,
// only hue does. Brightness and alpha are always interpolated linearly.
// t is clamped to [0, 1].
func LerpHSB(c1, c2 HSBColor, t float64) HSBColor {
	var hue, saturation float64

	switch {
	case c1.brightness == 0:
		hue, saturation = c2.hue, c2.saturation
	case c2.brightness == 0:
		hue, saturation = c1.hue, c1.saturation
	default:
		switch {
		case c1.saturation == 0:
			hue = c2.hue
		case c2.saturation == 0:
			hue = c1.hue
		default:
			hue = LerpAngle(c1.hue*360, c2.hue*360, t) / 360
		}
		saturation = Lerp(c1.saturation, c2.saturation, t)
	}

	return HSBColor{
		hue:        hue,
		saturation: saturation,
		brightness: Lerp(c1.brightness, c2.brightness, t),
		alpha:      Lerp(c1.alpha, c2.alpha, t),
	}
}
