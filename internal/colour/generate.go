package colour

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
)

// HarmonyTemplate names a colour-theory rule for deriving related hues
// from a base colour.
type HarmonyTemplate string

const (
	Monochromatic      HarmonyTemplate = "monochromatic"
	Analogous          HarmonyTemplate = "analogous"
	Complementary      HarmonyTemplate = "complementary"
	Triadic            HarmonyTemplate = "triadic"
	Tetradic           HarmonyTemplate = "tetradic"
	SplitComplementary HarmonyTemplate = "splitComplementary"
)

// HarmonyTemplates returns all supported harmony templates.
func HarmonyTemplates() []HarmonyTemplate {
	return []HarmonyTemplate{
		Monochromatic, Analogous, Complementary,
		Triadic, Tetradic, SplitComplementary,
	}
}

// ParseHarmonyTemplate converts a string to a HarmonyTemplate.
func ParseHarmonyTemplate(s string) (HarmonyTemplate, error) {
	t := HarmonyTemplate(s)
	if slices.Contains(HarmonyTemplates(), t) {
		return t, nil
	}
	return "", fmt.Errorf("unknown harmony template: %q", s)
}

// Lightness bounds for generated jitter variants. Extremes are
// avoided so generated colours stay usable against both tones.
const (
	jitterLightnessMin = 0.1
	jitterLightnessMax = 0.9
	jitterRange        = 0.15
)

// GenerateHarmony derives a palette from a base colour using the given
// template. The base is always first; derived colours follow in
// template order, and the result is filtered for near-duplicates at
// the default threshold. Achromatic bases derive through the standard
// substitute saturation. An unknown template yields just the base.
func GenerateHarmony(base Colour, template HarmonyTemplate) []Colour {
	h, s, l := base.hslForDerivation()
	colours := []Colour{base}

	switch template {
	case Monochromatic:
		// Four variants stepped across lightness with progressively
		// reduced saturation.
		for i := 1; i <= 4; i++ {
			shift := float64(i)*0.15 - 0.3
			colours = append(colours, FromHSL(h, s*(1-float64(i)*0.1), clamp01(l+shift)))
		}
	case Analogous:
		for i := 1; i <= 4; i++ {
			colours = append(colours, FromHSL(h+30*float64(i), s, l))
		}
	case Complementary:
		colours = append(colours,
			FromHSL(h+180, s, l),
			FromHSL(h, s*0.7, math.Min(l+0.2, 0.9)),
			FromHSL(h+180, s*0.7, math.Min(l+0.2, 0.9)),
		)
	case Triadic:
		colours = append(colours,
			FromHSL(h+120, s, l),
			FromHSL(h+240, s, l),
		)
	case Tetradic:
		colours = append(colours,
			FromHSL(h+90, s, l),
			FromHSL(h+180, s, l),
			FromHSL(h+270, s, l),
		)
	case SplitComplementary:
		colours = append(colours,
			FromHSL(h+150, s, l),
			FromHSL(h+210, s, l),
		)
	}

	return Dedupe(colours, DefaultDedupeThreshold)
}

// GenerateQualityRandomPalette produces a palette of the requested
// size from a random base colour and a random harmony template. When
// the template yields fewer colours than needed, existing colours are
// re-used with their lightness jittered; if a jittered candidate
// collides with an existing colour, a plain random colour fills the
// slot instead, so generation always terminates with a full palette.
func GenerateQualityRandomPalette(rng *rand.Rand, size int) Palette {
	if size <= 0 {
		return Palette{}
	}

	base := RandomColour(rng)
	templates := HarmonyTemplates()
	template := templates[rng.Intn(len(templates))]

	colours := GenerateHarmony(base, template)

	for len(colours) < size {
		pick := colours[rng.Intn(len(colours))]
		h, s, l := pick.hslForDerivation()
		jitter := (rng.Float64()*2 - 1) * jitterRange
		candidate := FromHSL(h, s, clampRange(l+jitter, jitterLightnessMin, jitterLightnessMax))

		if slices.Contains(colours, candidate) {
			// Jitter landed on an existing colour; fall back to a
			// plain random sample.
			candidate = RandomColour(rng)
		}
		colours = append(colours, candidate)
	}

	return NewPalette(colours[:size])
}
