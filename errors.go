package colorscape

import (
	"errors"
	"strconv"
)

// ErrUnknownColor is returned when a color name is not in the keyword table.
var ErrUnknownColor = errors.New("colorscape: unknown color name")

// UnknownColorError reports a color name that Named could not resolve.
type UnknownColorError struct {
	Name string
}

func (e *UnknownColorError) Error() string {
	return "colorscape: unknown color name " + strconv.Quote(e.Name)
}

// Unwrap returns ErrUnknownColor.
func (e *UnknownColorError) Unwrap() error {
	return ErrUnknownColor
}
