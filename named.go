package colorscape

import (
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Named returns the SVG 1.1 keyword color with the given name,
// for example "cornflowerblue". Lookup ignores case and surrounding
// whitespace. Named colors are opaque.
func Named(name string) (RGBColor, error) {
	key := cases.Fold().String(strings.TrimSpace(name))
	c, ok := colornames.Map[key]
	if !ok {
		return RGBColor{}, &UnknownColorError{Name: name}
	}
	return RGBColor{
		red:   float64(c.R) / 255,
		green: float64(c.G) / 255,
		blue:  float64(c.B) / 255,
		alpha: float64(c.A) / 255,
	}, nil
}

// MustNamed is like Named but panics if the name is unknown.
// It simplifies initialization of package-level variables.
func MustNamed(name string) RGBColor {
	c, err := Named(name)
	if err != nil {
		panic(err)
	}
	return c
}
