package colour

import (
	"math"
)

// Score thresholds that trigger the two repair branches of Improve.
const (
	improveAccessibilityThreshold = 60.0
	improveHarmonyThreshold       = 70.0
	// improveMinContrast is the WCAG AA ratio every surviving colour
	// should reach against at least one other survivor.
	improveMinContrast = 4.5
)

// Fixed neutrals appended by the accessibility-focused repair path.
var accessibilityNeutrals = []Colour{
	{R: 0xff, G: 0xff, B: 0xff},
	{R: 0x00, G: 0x00, B: 0x00},
	{R: 0x6b, G: 0x72, B: 0x80},
}

// Improve repairs a palette toward better accessibility and harmony.
// The first colour anchors the result; companions are derived from it
// according to which score is deficient, a neutral is added when every
// survivor is saturated, near-duplicates are filtered, and a final
// best-effort pass nudges isolated colours toward a readable contrast
// partner. The function always returns a palette; nothing here fails.
func Improve(p Palette, accessibilityScore, harmonyScore float64) Palette {
	if len(p.Colours) == 0 {
		return p
	}

	base := p.Colours[0]
	h, s, l := base.hslForDerivation()
	result := []Colour{base}

	if accessibilityScore < improveAccessibilityThreshold {
		// High-contrast companion on the base hue: dark against a
		// light base, light against a dark one.
		lightness := 0.9
		if base.Luminance() > 0.5 {
			lightness = 0.1
		}
		result = append(result, FromHSL(h, 0.3, lightness))
	}

	if harmonyScore < improveHarmonyThreshold {
		result = append(result,
			FromHSL(h+180, math.Min(s, 0.7), l),
			FromHSL(h+150, s*0.8, l),
			FromHSL(h+210, s*0.8, l),
		)
	} else {
		result = append(result,
			FromHSL(h, s*0.7, math.Min(l+0.3, 0.9)),
			FromHSL(h, s, math.Max(l-0.3, 0.1)),
			FromHSL(h+30, s, l),
		)
	}

	if !hasMutedColour(result) {
		result = append(result, FromHSL(h, 0.1, 0.7))
	}

	result = Dedupe(result, DefaultDedupeThreshold)
	repairContrast(result)

	return NewPalette(result)
}

// hasMutedColour reports whether any colour has saturation below 0.2.
func hasMutedColour(colours []Colour) bool {
	for _, c := range colours {
		if _, s, _ := c.HSL(); s < 0.2 {
			return true
		}
	}
	return false
}

// repairContrast adjusts, in place, every colour that has no readable
// partner. The colour's lightness is moved 0.4 toward whichever
// extreme separates it best, clamped to [0.1,0.9]. One pass only: a
// pathological palette (single hue, no room to move) keeps its
// adjusted colours even when they still fall short.
func repairContrast(colours []Colour) {
	for i, c := range colours {
		if hasContrastPartner(c, colours, i) {
			continue
		}

		h, s, l := c.HSL()
		darker := FromHSL(h, s, clampRange(l-0.4, jitterLightnessMin, jitterLightnessMax))
		lighter := FromHSL(h, s, clampRange(l+0.4, jitterLightnessMin, jitterLightnessMax))

		if bestContrast(darker, colours, i) >= bestContrast(lighter, colours, i) {
			colours[i] = darker
		} else {
			colours[i] = lighter
		}
	}
}

// hasContrastPartner reports whether colours[self] reaches the minimum
// contrast ratio against any other entry.
func hasContrastPartner(c Colour, colours []Colour, self int) bool {
	for j, other := range colours {
		if j != self && ContrastRatio(c, other) >= improveMinContrast {
			return true
		}
	}
	return false
}

// bestContrast returns the highest contrast ratio c reaches against
// any entry other than colours[self].
func bestContrast(c Colour, colours []Colour, self int) float64 {
	best := 0.0
	for j, other := range colours {
		if j == self {
			continue
		}
		if ratio := ContrastRatio(c, other); ratio > best {
			best = ratio
		}
	}
	return best
}

// AccessibilityImprovedColours is the repair path for palettes whose
// dominant problem is accessibility. Every original colour is kept and
// immediately followed by a high-contrast companion chosen by its
// luminance; fixed white/black/grey neutrals are appended, and the
// result is filtered at the strict threshold so usable candidates are
// not collapsed away.
func AccessibilityImprovedColours(p Palette) Palette {
	result := make([]Colour, 0, len(p.Colours)*2+len(accessibilityNeutrals))

	for _, c := range p.Colours {
		result = append(result, c)

		h, s, _ := c.hslForDerivation()
		if c.Luminance() > 0.5 {
			// Light colour: deep, slightly more saturated companion.
			result = append(result, FromHSL(h, math.Min(s+0.2, 1), 0.15))
		} else {
			// Dark colour: pale, desaturated companion.
			result = append(result, FromHSL(h, math.Max(s-0.3, 0.3), 0.85))
		}
	}

	result = append(result, accessibilityNeutrals...)

	return NewPalette(Dedupe(result, StrictDedupeThreshold))
}
