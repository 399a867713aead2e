package colour

import (
	"math"
)

// DarkVariant derives the dark-mode counterpart of a palette. Each
// colour keeps its hue, gains a little saturation, and has its
// lightness remapped piecewise: light colours land around 0.2-0.3,
// mid colours just above 0.15, and already-dark colours are lifted
// slightly so they stay visible on a dark surface. The map is
// deterministic and index-preserving; no filtering follows.
func DarkVariant(p Palette) Palette {
	out := make([]Colour, len(p.Colours))
	for i, c := range p.Colours {
		h, s, l := c.HSL()

		var nl float64
		switch {
		case l > 0.7:
			nl = 0.2 + (l-0.7)*0.3
		case l > 0.4:
			nl = 0.15 + (l-0.4)*0.2
		default:
			nl = math.Min(0.6, l+0.3)
		}

		out[i] = FromHSL(h, math.Min(s*1.1, 1), nl)
	}
	return NewPalette(out)
}

// LightVariant derives the light-mode counterpart of a palette. The
// inverse companion to DarkVariant: dark colours are lifted well above
// mid, mid colours land around 0.7-0.8, light colours are pulled down
// slightly, and saturation is eased off with a floor so colours do not
// wash out entirely.
func LightVariant(p Palette) Palette {
	out := make([]Colour, len(p.Colours))
	for i, c := range p.Colours {
		h, s, l := c.HSL()

		var nl float64
		switch {
		case l < 0.3:
			nl = 0.6 + (0.3-l)*0.5
		case l < 0.6:
			nl = 0.7 + (l-0.3)*0.4
		default:
			nl = math.Max(0.3, l-0.2)
		}

		out[i] = FromHSL(h, math.Max(s*0.9, 0.2), nl)
	}
	return NewPalette(out)
}
