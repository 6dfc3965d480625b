// Package colorscape provides RGBA and HSBA color values, conversions
// between them, and interpolation that avoids the banding of naive
// component-wise blending.
//
// # Overview
//
// All components are normalized float64 scalars. Hue is stored as a
// fraction of a full turn, so 0.5 is 180 degrees. Values are stored as
// given; only derived operations clamp.
//
//	c := colorscape.NewRGBColor(1, 0.5, 0, 1)
//	hsb := c.ToHSB()
//	fmt.Println(hsb.ToHTML(false)) // #ff7f00
//
// # Interpolation
//
// LerpRGB blends each channel independently. LerpHSB moves hue along the
// shorter arc of the color wheel and treats black and grey specially: their
// hue carries no information, so it is taken from the other color.
//
//	from := colorscape.Red.ToHSB()
//	to := colorscape.Blue.ToHSB()
//	mid := colorscape.LerpHSB(from, to, 0.5) // magenta
//
// Gradient chains several stops and samples them in either space.
//
// # Numeric helpers
//
// Clamp01, Lerp and LerpAngle are exported for callers animating their own
// scalar values.
//
// # Concurrency
//
// Color values carry no locks. Copies are independent; a single value must
// not be mutated from several goroutines at once.
package colorscape
