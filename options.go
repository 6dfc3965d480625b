package colorscape

// Space selects the color space a Gradient interpolates in.
type Space int

const (
	// SpaceHSB interpolates with LerpHSB, taking the shorter arc of hue.
	SpaceHSB Space = iota
	// SpaceRGB interpolates component-wise with LerpRGB.
	SpaceRGB
)

// String returns the lowercase name of the space.
func (s Space) String() string {
	switch s {
	case SpaceHSB:
		return "hsb"
	case SpaceRGB:
		return "rgb"
	default:
		return "unknown"
	}
}

// GradientOption configures a Gradient during creation.
//
// Example:
//
//	g := colorscape.NewGradient(stops,
//	    colorscape.WithSpace(colorscape.SpaceRGB),
//	    colorscape.WithExtendMode(colorscape.ExtendReflect))
type GradientOption func(*gradientOptions)

// gradientOptions holds optional configuration for Gradient creation.
type gradientOptions struct {
	extend ExtendMode
	space  Space
}

// defaultGradientOptions returns the default gradient options.
func defaultGradientOptions() gradientOptions {
	return gradientOptions{
		extend: ExtendPad,
		space:  SpaceHSB,
	}
}

// WithExtendMode sets how the gradient behaves outside [0, 1].
func WithExtendMode(mode ExtendMode) GradientOption {
	return func(o *gradientOptions) {
		o.extend = mode
	}
}

// WithSpace sets the interpolation color space.
func WithSpace(space Space) GradientOption {
	return func(o *gradientOptions) {
		o.space = space
	}
}
