package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for truecolor terminal output.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns an ANSI-coloured swatch for a colour: a solid block
// of spaces on the colour's background, width characters wide.
func Preview(c Colour, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithText returns a swatch with a centred text overlay. The
// text colour is black or white, whichever contrasts better with the
// swatch.
func PreviewWithText(c Colour, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	var fgR, fgG, fgB uint8
	if c.Luminance() > 0.5 {
		fgR, fgG, fgB = 0, 0, 0
	} else {
		fgR, fgG, fgB = 255, 255, 255
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	fg := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fgR, fgG, fgB, ansiSuffix)

	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		pad := (width - len(text)) / 2
		display = strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-len(text)-pad)
	}

	return bg + fg + display + ansiReset
}

// FormatWithPreview formats a colour as a swatch followed by its hex
// code.
func FormatWithPreview(c Colour, width int) string {
	return fmt.Sprintf("%s %s", Preview(c, width), c.Hex())
}
