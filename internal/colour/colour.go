// Package colour implements the palette evaluation and repair engine:
// the colour model and its conversions, WCAG contrast scoring, harmony
// scoring, colour-vision-deficiency simulation, palette generation,
// automatic repair, tone mapping and free-text colour extraction.
package colour

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Colour is an sRGB colour with 8-bit channels. The canonical text form
// is a normalized lowercase 6-digit hex string ("#rrggbb"). Colours are
// value objects; every operation returns a new Colour.
type Colour struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ColourFormatError reports input that could not be parsed as a colour.
type ColourFormatError struct {
	Input string
}

func (e *ColourFormatError) Error() string {
	return fmt.Sprintf("invalid colour format: %q", e.Input)
}

// defaultDerivationSaturation is substituted for the undefined
// saturation of achromatic colours when deriving related hues.
// Achromatic colours (saturation 0) have no meaningful hue, and the
// generation formulas need one; substituting a mid saturation keeps
// derived variants visible instead of propagating grey everywhere.
const defaultDerivationSaturation = 0.55

// ParseHex parses a hex colour string. Accepted forms, with or without
// a leading "#": 3-digit (each nibble doubled), 6-digit, and 4/8-digit
// forms whose alpha component is validated and then discarded.
func ParseHex(s string) (Colour, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3, 4:
		expanded := make([]byte, 0, 8)
		for i := 0; i < len(hex); i++ {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
	case 6, 8:
		// Already expanded.
	default:
		return Colour{}, &ColourFormatError{Input: s}
	}

	var channels [4]uint8
	for i := 0; i < len(hex)/2; i++ {
		hi, ok1 := hexNibble(hex[i*2])
		lo, ok2 := hexNibble(hex[i*2+1])
		if !ok1 || !ok2 {
			return Colour{}, &ColourFormatError{Input: s}
		}
		channels[i] = hi<<4 | lo
	}

	return Colour{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// hexNibble decodes a single hex digit.
func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// IsValidHex reports whether s parses as a hex colour.
func IsValidHex(s string) bool {
	_, err := ParseHex(s)
	return err == nil
}

// NormalizeHex parses s and returns the canonical lowercase 6-digit
// form ("#rrggbb").
func NormalizeHex(s string) (string, error) {
	c, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// Hex returns the canonical lowercase 6-digit hex form.
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Colour) String() string {
	return c.Hex()
}

// RGBString returns the colour in "rgb(r, g, b)" notation.
func (c Colour) RGBString() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Luminance calculates the relative luminance of the colour according
// to WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
//
// This is the single canonical luminance implementation; contrast and
// all derived scores go through it.
func (c Colour) Luminance() float64 {
	r := gammaCorrect(float64(c.R) / 255.0)
	g := gammaCorrect(float64(c.G) / 255.0)
	b := gammaCorrect(float64(c.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies the WCAG piecewise sRGB linearization to a
// colour component. The 0.03928 breakpoint is part of the WCAG
// definition and must not be replaced with a plain power curve.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// HSL converts the colour to hue (0-360), saturation (0-1) and
// lightness (0-1). Achromatic colours report hue 0 and saturation 0.
func (c Colour) HSL() (h, s, l float64) {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l = (maxVal + minVal) / 2.0

	if delta == 0 {
		return 0, 0, l
	}

	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h *= 60
	return h, s, l
}

// hslForDerivation returns HSL components suitable for deriving
// related colours. For achromatic input the undefined hue becomes 0
// and the saturation becomes defaultDerivationSaturation, so that
// harmony and repair formulas produce visible variants.
func (c Colour) hslForDerivation() (h, s, l float64) {
	h, s, l = c.HSL()
	if s == 0 {
		return 0, defaultDerivationSaturation, l
	}
	return h, s, l
}

// FromHSL converts hue (degrees, any value, wrapped to [0,360)),
// saturation and lightness (both clamped to [0,1]) to a Colour.
// Channels are rounded to the nearest integer so that HSL round-trips
// stay within one unit per channel.
func FromHSL(h, s, l float64) Colour {
	h = normalizeHue(h)
	s = clamp01(s)
	l = clamp01(l)

	if s == 0 {
		v := uint8(math.Round(l * 255))
		return Colour{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return Colour{
		R: uint8(math.Round(hueToRGB(p, q, h+120) * 255)),
		G: uint8(math.Round(hueToRGB(p, q, h) * 255)),
		B: uint8(math.Round(hueToRGB(p, q, h-120) * 255)),
	}
}

// hueToRGB is a helper for HSL to RGB conversion. t is in degrees.
func hueToRGB(p, q, t float64) float64 {
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// RandomColour returns a uniformly sampled 24-bit colour from the
// given source. Randomness is always injected; the engine never reads
// an ambient generator.
func RandomColour(rng *rand.Rand) Colour {
	v := rng.Intn(1 << 24)
	return Colour{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Distance returns the Euclidean distance between two colours in raw
// RGB space. The maximum possible distance is ~441.67 (black to white).
func Distance(a, b Colour) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// normalizeHue wraps a hue in degrees into [0,360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// clampRange clamps v into [lo,hi].
func clampRange(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
