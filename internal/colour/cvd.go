package colour

import (
	"fmt"
	"math"
	"slices"
)

// CVDType identifies a colour-vision deficiency to simulate.
type CVDType string

const (
	Protanopia    CVDType = "protanopia"
	Protanomaly   CVDType = "protanomaly"
	Deuteranopia  CVDType = "deuteranopia"
	Deuteranomaly CVDType = "deuteranomaly"
	Tritanopia    CVDType = "tritanopia"
	Tritanomaly   CVDType = "tritanomaly"
	Achromatopsia CVDType = "achromatopsia"
	Achromatomaly CVDType = "achromatomaly"
)

// CVDTypes returns all supported deficiency types.
func CVDTypes() []CVDType {
	return []CVDType{
		Protanopia, Protanomaly,
		Deuteranopia, Deuteranomaly,
		Tritanopia, Tritanomaly,
		Achromatopsia, Achromatomaly,
	}
}

// ParseCVDType converts a string to a CVDType.
func ParseCVDType(s string) (CVDType, error) {
	t := CVDType(s)
	if slices.Contains(CVDTypes(), t) {
		return t, nil
	}
	return "", fmt.Errorf("unknown colour-vision deficiency type: %q", s)
}

// cvdMatrices holds the fixed linear RGB transforms for the six
// dichromatic/anomalous trichromatic types. Rows are output channels,
// applied as out[c] = sum(m[c][k] * in[k]) over normalized channels.
var cvdMatrices = map[CVDType][3][3]float64{
	Protanopia: {
		{0.567, 0.433, 0},
		{0.558, 0.442, 0},
		{0, 0.242, 0.758},
	},
	Protanomaly: {
		{0.817, 0.183, 0},
		{0.333, 0.667, 0},
		{0, 0.125, 0.875},
	},
	Deuteranopia: {
		{0.625, 0.375, 0},
		{0.7, 0.3, 0},
		{0, 0.3, 0.7},
	},
	Deuteranomaly: {
		{0.8, 0.2, 0},
		{0.258, 0.742, 0},
		{0, 0.142, 0.858},
	},
	Tritanopia: {
		{0.95, 0.05, 0},
		{0, 0.433, 0.567},
		{0, 0.475, 0.525},
	},
	Tritanomaly: {
		{0.967, 0.033, 0},
		{0, 0.733, 0.267},
		{0, 0.183, 0.817},
	},
}

// Simulate returns the colour as seen with the given deficiency.
// Channels are transformed in normalized space, clamped back to
// [0,255] and rounded. Simulation never fails: an unknown type
// returns the input unchanged.
func Simulate(c Colour, t CVDType) Colour {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	var nr, ng, nb float64
	switch t {
	case Achromatopsia:
		grey := 0.299*r + 0.587*g + 0.114*b
		nr, ng, nb = grey, grey, grey
	case Achromatomaly:
		// Partial loss: blend each channel with the luma of the
		// original colour.
		grey := 0.299*r + 0.587*g + 0.114*b
		nr = 0.618*r + 0.320*grey + 0.062*b
		ng = 0.163*r + 0.775*g + 0.062*b
		nb = 0.163*r + 0.320*grey + 0.516*b
	default:
		m, ok := cvdMatrices[t]
		if !ok {
			return c
		}
		nr = m[0][0]*r + m[0][1]*g + m[0][2]*b
		ng = m[1][0]*r + m[1][1]*g + m[1][2]*b
		nb = m[2][0]*r + m[2][1]*g + m[2][2]*b
	}

	return Colour{
		R: clampChannel(nr),
		G: clampChannel(ng),
		B: clampChannel(nb),
	}
}

// SimulatePalette maps Simulate over every colour, preserving order.
func SimulatePalette(p Palette, t CVDType) Palette {
	out := make([]Colour, len(p.Colours))
	for i, c := range p.Colours {
		out[i] = Simulate(c, t)
	}
	return NewPalette(out)
}

// clampChannel converts a normalized channel back to 8 bits, clamping
// transform overshoot.
func clampChannel(v float64) uint8 {
	scaled := math.Round(v * 255)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
