package colour

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Perceptual-distance thresholds for deduplication. Values are on the
// conventional CIE delta-E scale where ~2.3 is a just-noticeable
// difference.
const (
	// DefaultDedupeThreshold suits general palette cleanup.
	DefaultDedupeThreshold = 25.0
	// StrictDedupeThreshold is used on the accessibility-repair path,
	// where keeping more distinct candidates matters.
	StrictDedupeThreshold = 15.0
)

// DeltaE returns the CIE76 colour difference between two colours on
// the standard 0-100 lightness scale.
func DeltaE(a, b Colour) float64 {
	ca := colorful.Color{R: float64(a.R) / 255.0, G: float64(a.G) / 255.0, B: float64(a.B) / 255.0}
	cb := colorful.Color{R: float64(b.R) / 255.0, G: float64(b.G) / 255.0, B: float64(b.B) / 255.0}
	// go-colorful keeps L* in [0,1]; scale back to the conventional
	// delta-E range so thresholds read like the literature.
	return ca.DistanceLab(cb) * 100
}

// Dedupe removes perceptually near-identical colours. It walks the
// input in order and keeps a colour only when its delta-E to every
// already-kept colour exceeds threshold; the first occurrence always
// wins and the first element is always kept. The result never exceeds
// the input in size.
func Dedupe(colours []Colour, threshold float64) []Colour {
	kept := make([]Colour, 0, len(colours))
	for _, candidate := range colours {
		distinct := true
		for _, existing := range kept {
			if DeltaE(candidate, existing) <= threshold {
				distinct = false
				break
			}
		}
		if distinct {
			kept = append(kept, candidate)
		}
	}
	return kept
}
