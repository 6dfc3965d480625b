// Command colorscape prints the colors between two endpoints as hex strings.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/colorscape"
)

func main() {
	var (
		from      = flag.String("from", "red", "start color: name or r,g,b[,a]")
		to        = flag.String("to", "blue", "end color: name or r,g,b[,a]")
		steps     = flag.Int("steps", 8, "number of colors to print")
		space     = flag.String("space", "hsb", "interpolation space: hsb or rgb")
		withAlpha = flag.Bool("alpha", false, "include alpha in hex output")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		colorscape.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	c1, err := parseColor(*from)
	if err != nil {
		log.Fatalf("Invalid -from: %v", err)
	}
	c2, err := parseColor(*to)
	if err != nil {
		log.Fatalf("Invalid -to: %v", err)
	}
	sp, err := parseSpace(*space)
	if err != nil {
		log.Fatalf("Invalid -space: %v", err)
	}

	g := colorscape.NewGradient([]colorscape.ColorStop{
		{Offset: 0, Color: c1},
		{Offset: 1, Color: c2},
	}, colorscape.WithSpace(sp))

	for _, c := range g.Steps(*steps) {
		fmt.Println(c.ToHTML(*withAlpha))
	}
}

// parseColor accepts a color keyword or 3-4 comma-separated components.
func parseColor(s string) (colorscape.RGBColor, error) {
	if !strings.Contains(s, ",") {
		return colorscape.Named(s)
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return colorscape.RGBColor{}, fmt.Errorf("want 3 or 4 components, got %d", len(parts))
	}
	v := [4]float64{0, 0, 0, 1}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return colorscape.RGBColor{}, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = f
	}
	return colorscape.NewRGBColor(v[0], v[1], v[2], v[3]), nil
}

func parseSpace(s string) (colorscape.Space, error) {
	switch strings.ToLower(s) {
	case "hsb":
		return colorscape.SpaceHSB, nil
	case "rgb":
		return colorscape.SpaceRGB, nil
	default:
		return 0, fmt.Errorf("unknown space %q", s)
	}
}
