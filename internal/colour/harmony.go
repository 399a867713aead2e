package colour

// Pairwise RGB-distance thresholds for the harmony heuristic.
const (
	// harmonySimilarDistance: pairs closer than this read as
	// near-duplicates and weaken the palette.
	harmonySimilarDistance = 30.0
	// harmonyClashDistance: pairs further apart than this (the
	// black-to-white extreme is ~441.67) read as clashing.
	harmonyClashDistance = 440.0
	// harmonyPenalty is subtracted per offending pair.
	harmonyPenalty = 5.0
)

// HarmonyScore rates how well a palette hangs together, 0-100.
// Palettes with fewer than two colours score 100. Every unordered pair
// is measured by Euclidean distance in raw RGB space; pairs that are
// too similar or too far apart each cost harmonyPenalty, and the score
// is floored at zero.
//
// This is a coarse proxy for harmony, not a calibrated colour
// appearance model: it penalizes over-similarity and over-difference
// and nothing else. A perceptual distance metric could be substituted,
// but the dual-penalty shape is what downstream thresholds rely on.
func HarmonyScore(p Palette) float64 {
	if len(p.Colours) < 2 {
		return 100
	}

	score := 100.0
	for i := 0; i < len(p.Colours); i++ {
		for j := i + 1; j < len(p.Colours); j++ {
			d := Distance(p.Colours[i], p.Colours[j])
			if d < harmonySimilarDistance || d > harmonyClashDistance {
				score -= harmonyPenalty
			}
		}
	}

	if score < 0 {
		return 0
	}
	return score
}
