// Package styling maps categories to the colors by which their events
// should be rendered.
package styling

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// A Style is a pair of colors by which categorized output should be
// rendered: the category color as background plus a foreground that reads
// on it.
type Style struct {
	Fg colorful.Color
	Bg colorful.Color
}

// StyleFromHexSingle returns the style for a single category color given as
// a hex string ("#rrggbb"). The foreground is picked black or white by the
// background's luminance; deprecated categories get a washed-out variant of
// their color.
func StyleFromHexSingle(hex string, deprecated bool) (Style, error) {
	bg, err := colorful.Hex(hex)
	if err != nil {
		return Style{}, fmt.Errorf("invalid category color '%s' (%w)", hex, err)
	}
	if deprecated {
		bg = lightenColorfulColor(bg, 50)
	}
	return Style{Fg: foregroundFor(bg), Bg: bg}, nil
}

// LightenedBG returns the style with its background lightened by the given
// percentage.
func (s Style) LightenedBG(percentage int) Style {
	s.Bg = lightenColorfulColor(s.Bg, percentage)
	return s
}

// DarkenedBG returns the style with its background darkened by the given
// percentage.
func (s Style) DarkenedBG(percentage int) Style {
	s.Bg = darkenColorfulColor(s.Bg, percentage)
	return s
}

// foregroundFor picks black or white, whichever reads better on the given
// background.
func foregroundFor(bg colorful.Color) colorful.Color {
	if getLuminance(bg) > 0.5 {
		return colorful.Color{R: 0.0, G: 0.0, B: 0.0}
	}
	return colorful.Color{R: 1.0, G: 1.0, B: 1.0}
}

// getLuminance gives the perceived luminance of a color, in [0,1].
func getLuminance(color colorful.Color) float64 {
	return 0.299*color.R + 0.587*color.G + 0.114*color.B
}

func lightenColorfulColor(color colorful.Color, percentage int) colorful.Color {
	hue, sat, ltn := color.Hsl()
	if ltn > 1.0 {
		panic("lightness is huge?!")
	}

	scalar := float64(percentage) / 100.0

	lightnessDelta := 1.0 - ltn
	newLightness := ltn + (lightnessDelta * scalar)

	return colorful.Hsl(hue, sat, newLightness)
}

func darkenColorfulColor(color colorful.Color, percentage int) colorful.Color {
	hue, sat, ltn := color.Hsl()
	if ltn > 1.0 {
		panic("lightness is huge?!")
	}

	scalar := float64(percentage) / 100.0

	darknessDelta := ltn
	newLightness := ltn - (darknessDelta * scalar)

	return colorful.Hsl(hue, sat, newLightness)
}
