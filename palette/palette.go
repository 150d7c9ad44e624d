package palette

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"mandelzoom/mandelbrot"
	"mandelzoom/misc"
)

// Palette maps escape-time results to colors. Escaped points index the
// stop cycle by Count+Fraction modulo the stop count, interpolating between
// adjacent stops so neighboring iteration bands blend without visible
// banding. Interior points always get the fixed interior color.
type Palette struct {
	name     string
	stops    []color.RGBA
	interior color.RGBA
}

var black = color.RGBA{A: 255}

// FromStops builds a custom palette with a black interior. A palette needs
// at least one stop; an empty slice degrades to all white like the
// single-color fallback in Settings.
func FromStops(name string, stops []color.RGBA) Palette {
	if len(stops) == 0 {
		stops = []color.RGBA{{R: 255, G: 255, B: 255, A: 255}}
	}
	return Palette{name: name, stops: stops, interior: black}
}

// ByName resolves one of the built-in variants. Unknown names are a
// configuration error so a typo does not silently render grayscale.
func ByName(name string) (Palette, error) {
	switch strings.ToLower(name) {
	case "grayscale":
		return FromStops("grayscale", Gradient(black, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 32)), nil
	case "rainbow":
		return FromStops("rainbow", rainbowStops(64)), nil
	case "fire":
		return FromStops("fire", fireStops()), nil
	case "classic":
		return FromStops("classic", classicStops()), nil
	}
	return Palette{}, fmt.Errorf("unknown palette %q", name)
}

// Names lists the built-in variants for help text.
func Names() []string {
	names := []string{"classic", "fire", "grayscale", "rainbow"}
	sort.Strings(names)
	return names
}

func (p Palette) Name() string {
	return p.name
}

// Colorize converts an escape-time result to a pixel color.
func (p Palette) Colorize(result mandelbrot.Result) color.RGBA {
	if !result.Escaped {
		return p.interior
	}

	position := float64(result.Count) + result.Fraction
	index := int(math.Floor(position))
	color1 := p.stops[index%len(p.stops)]
	color2 := p.stops[(index+1)%len(p.stops)]
	return misc.LinearInterpolationRGB(color1, color2, result.Fraction)
}

// Gradient generates numberColors evenly spaced steps from startColor
// toward endColor. The end color itself is exclusive so gradients can be
// chained without repeating a stop.
func Gradient(startColor color.RGBA, endColor color.RGBA, numberColors int) []color.RGBA {
	stops := make([]color.RGBA, 0, numberColors)
	for j := 0; j < numberColors; j++ {
		fraction := float64(j) / float64(numberColors)
		stops = append(stops, misc.LinearInterpolationRGB(startColor, endColor, fraction))
	}
	return stops
}

func rainbowStops(numberColors int) []color.RGBA {
	stops := make([]color.RGBA, 0, numberColors)
	for j := 0; j < numberColors; j++ {
		hue := float64(j) / float64(numberColors) * 360
		stops = append(stops, misc.HSVToRGB(hue, 1, 1))
	}
	return stops
}

func fireStops() []color.RGBA {
	red := color.RGBA{R: 224, G: 32, B: 0, A: 255}
	yellow := color.RGBA{R: 255, G: 224, B: 32, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	stops := Gradient(black, red, 12)
	stops = append(stops, Gradient(red, yellow, 12)...)
	stops = append(stops, Gradient(yellow, white, 4)...)
	stops = append(stops, Gradient(white, black, 4)...)
	return stops
}

// The gradient used by the Wikipedia page on the Mandelbrot set.
func classicStops() []color.RGBA {
	return []color.RGBA{
		{R: 66, G: 30, B: 15, A: 255},
		{R: 25, G: 7, B: 26, A: 255},
		{R: 9, G: 1, B: 47, A: 255},
		{R: 4, G: 4, B: 73, A: 255},
		{R: 0, G: 7, B: 100, A: 255},
		{R: 12, G: 44, B: 138, A: 255},
		{R: 24, G: 82, B: 177, A: 255},
		{R: 57, G: 125, B: 209, A: 255},
		{R: 134, G: 181, B: 229, A: 255},
		{R: 211, G: 236, B: 248, A: 255},
		{R: 241, G: 233, B: 191, A: 255},
		{R: 248, G: 201, B: 95, A: 255},
		{R: 255, G: 170, B: 0, A: 255},
		{R: 204, G: 128, B: 0, A: 255},
		{R: 153, G: 87, B: 0, A: 255},
		{R: 106, G: 52, B: 3, A: 255},
	}
}
