package colour

// WCAGLevel classifies a contrast ratio against the WCAG 2.0 text
// legibility thresholds, ordered by decreasing strictness.
type WCAGLevel string

const (
	// LevelAAA: enhanced contrast, ratio of at least 7:1.
	LevelAAA WCAGLevel = "AAA"
	// LevelAA: minimum contrast for normal text, at least 4.5:1.
	LevelAA WCAGLevel = "AA"
	// LevelAALarge: minimum contrast for large text, at least 3:1.
	LevelAALarge WCAGLevel = "AA Large"
	// LevelFail: below every WCAG threshold.
	LevelFail WCAGLevel = "Fail"
)

// ContrastResult holds the evaluation of a foreground/background pair.
// The ratio itself is symmetric; the pair is kept directed only so
// reports can name which colour was drawn on which.
type ContrastResult struct {
	Foreground Colour    `json:"foreground"`
	Background Colour    `json:"background"`
	Ratio      float64   `json:"ratio"`
	Level      WCAGLevel `json:"level"`
	Score      float64   `json:"score"`
}

// ContrastRatio calculates the contrast ratio between two colours
// according to WCAG 2.0. Returns a value between 1 and 21, where 21 is
// maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b Colour) float64 {
	l1 := a.Luminance()
	l2 := b.Luminance()

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// Classify maps a contrast ratio to its WCAG level and a 0-100 score.
// Failing ratios score continuously ((ratio/3)*50) rather than flat
// zero, so near-misses rank above hopeless pairs.
func Classify(ratio float64) (WCAGLevel, float64) {
	switch {
	case ratio >= 7:
		return LevelAAA, 100
	case ratio >= 4.5:
		return LevelAA, 80
	case ratio >= 3:
		return LevelAALarge, 50
	default:
		return LevelFail, (ratio / 3) * 50
	}
}

// Contrast evaluates a directed foreground/background pair.
func Contrast(fg, bg Colour) ContrastResult {
	ratio := ContrastRatio(fg, bg)
	level, score := Classify(ratio)
	return ContrastResult{
		Foreground: fg,
		Background: bg,
		Ratio:      ratio,
		Level:      level,
		Score:      score,
	}
}

// EvaluateContrast evaluates every unordered pair in the palette,
// with the earlier colour as foreground.
func EvaluateContrast(p Palette) []ContrastResult {
	var results []ContrastResult
	for i := 0; i < len(p.Colours); i++ {
		for j := i + 1; j < len(p.Colours); j++ {
			results = append(results, Contrast(p.Colours[i], p.Colours[j]))
		}
	}
	return results
}

// AccessibilityScore aggregates the pairwise contrast scores of a
// palette into a single 0-100 value (the mean over all unordered
// pairs). Palettes with fewer than two colours score 100: there is
// nothing to clash with.
func AccessibilityScore(p Palette) float64 {
	results := EvaluateContrast(p)
	if len(results) == 0 {
		return 100
	}

	total := 0.0
	for _, r := range results {
		total += r.Score
	}
	return total / float64(len(results))
}
