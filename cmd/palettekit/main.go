// PaletteKit - colour palette evaluation and repair
//
// PaletteKit scores colour palettes for WCAG contrast and visual
// harmony, simulates colour-vision deficiencies, repairs palettes that
// fall short, and exports the results for use in stylesheets.
package main

import (
	"github.com/palettekit/palettekit/internal/cli"
)

func main() {
	cli.Execute()
}
