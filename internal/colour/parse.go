package colour

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Extraction patterns, one per supported notation. The functional
// notations deliberately over-match on digits; range checks happen
// after the regexp so out-of-range matches are skipped rather than
// half-parsed.
var (
	prefixedHexPattern = regexp.MustCompile(`#([0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`)
	bareHexPattern     = regexp.MustCompile(`\b([0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`)
	rgbPattern         = regexp.MustCompile(`rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)`)
	rgbaPattern        = regexp.MustCompile(`rgba\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*([0-9]*\.?[0-9]+)\s*\)`)
	hslPattern         = regexp.MustCompile(`hsl\(\s*(\d{1,3}(?:\.\d+)?)\s*,\s*(\d{1,3}(?:\.\d+)?)%\s*,\s*(\d{1,3}(?:\.\d+)?)%\s*\)`)
	hslaPattern        = regexp.MustCompile(`hsla\(\s*(\d{1,3}(?:\.\d+)?)\s*,\s*(\d{1,3}(?:\.\d+)?)%\s*,\s*(\d{1,3}(?:\.\d+)?)%\s*,\s*([0-9]*\.?[0-9]+)\s*\)`)
	wordPattern        = regexp.MustCompile(`[A-Za-z]+`)
	allDigitsPattern   = regexp.MustCompile(`^[0-9]+$`)
)

// ExtractColours scans free-form text for colour values and returns
// them deduplicated by normalized hex, in first-seen order per pass.
// Passes run in a fixed order: #-prefixed hex, bare hex tokens (plain
// integers rejected), rgb(), rgba(), hsl(), hsla(), and finally CSS
// named colours. Matches that fail validation are skipped silently;
// the parser never errors.
func ExtractColours(text string) []Colour {
	acc := newColourAccumulator()

	for _, m := range prefixedHexPattern.FindAllStringSubmatch(text, -1) {
		if c, err := ParseHex(m[1]); err == nil {
			acc.add(c)
		}
	}

	for _, m := range bareHexPattern.FindAllStringSubmatch(text, -1) {
		// A bare token of digits only is far more likely a plain
		// integer than a colour.
		if allDigitsPattern.MatchString(m[1]) {
			continue
		}
		if c, err := ParseHex(m[1]); err == nil {
			acc.add(c)
		}
	}

	for _, m := range rgbPattern.FindAllStringSubmatch(text, -1) {
		if c, ok := parseRGBChannels(m[1], m[2], m[3]); ok {
			acc.add(c)
		}
	}

	for _, m := range rgbaPattern.FindAllStringSubmatch(text, -1) {
		if !validAlpha(m[4]) {
			continue
		}
		if c, ok := parseRGBChannels(m[1], m[2], m[3]); ok {
			acc.add(c)
		}
	}

	for _, m := range hslPattern.FindAllStringSubmatch(text, -1) {
		if c, ok := parseHSLComponents(m[1], m[2], m[3]); ok {
			acc.add(c)
		}
	}

	for _, m := range hslaPattern.FindAllStringSubmatch(text, -1) {
		if !validAlpha(m[4]) {
			continue
		}
		if c, ok := parseHSLComponents(m[1], m[2], m[3]); ok {
			acc.add(c)
		}
	}

	for _, word := range wordPattern.FindAllString(text, -1) {
		if named, ok := colornames.Map[strings.ToLower(word)]; ok {
			acc.add(Colour{R: named.R, G: named.G, B: named.B})
		}
	}

	return acc.colours
}

// colourAccumulator collects colours deduplicated by exact normalized
// hex, preserving first-seen order.
type colourAccumulator struct {
	colours []Colour
	seen    map[Colour]bool
}

func newColourAccumulator() *colourAccumulator {
	return &colourAccumulator{seen: make(map[Colour]bool)}
}

func (a *colourAccumulator) add(c Colour) {
	if a.seen[c] {
		return
	}
	a.seen[c] = true
	a.colours = append(a.colours, c)
}

// parseRGBChannels validates three decimal channel strings (0-255).
func parseRGBChannels(rs, gs, bs string) (Colour, bool) {
	r, err1 := strconv.Atoi(rs)
	g, err2 := strconv.Atoi(gs)
	b, err3 := strconv.Atoi(bs)
	if err1 != nil || err2 != nil || err3 != nil {
		return Colour{}, false
	}
	if r > 255 || g > 255 || b > 255 {
		return Colour{}, false
	}
	return Colour{R: uint8(r), G: uint8(g), B: uint8(b)}, true
}

// parseHSLComponents validates hue (0-360) and percent components.
func parseHSLComponents(hs, ss, ls string) (Colour, bool) {
	h, err1 := strconv.ParseFloat(hs, 64)
	s, err2 := strconv.ParseFloat(ss, 64)
	l, err3 := strconv.ParseFloat(ls, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return Colour{}, false
	}
	if h > 360 || s > 100 || l > 100 {
		return Colour{}, false
	}
	return FromHSL(h, s/100, l/100), true
}

// validAlpha accepts an alpha component in [0,1].
func validAlpha(s string) bool {
	a, err := strconv.ParseFloat(s, 64)
	return err == nil && a >= 0 && a <= 1
}
