package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/palettekit/palettekit/internal/colour"
)

// newGenerateCmd builds the generate command.
func newGenerateCmd() *cobra.Command {
	var (
		size         int
		seed         int64
		base         string
		templateName string
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new colour palette",
		Long: `Generate a palette from a random base colour and a random harmony
template, or derive one from a chosen base colour.

Generation is deterministic for a given --seed, which makes palettes
reproducible and shareable.

Harmony templates: monochromatic, analogous, complementary, triadic,
tetradic, splitComplementary.

Examples:
  # Five colours from a random base
  palettekit generate

  # Reproducible palette
  palettekit generate --seed 42 --size 8

  # Triadic palette derived from a base colour
  palettekit generate --base '#f38ba8' --template triadic`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))
			logger.Debug("generating palette", "seed", seed, "size", size)

			var palette colour.Palette
			if base != "" {
				baseColour, err := colour.ParseHex(base)
				if err != nil {
					return fmt.Errorf("invalid base colour: %w", err)
				}

				template, err := pickTemplate(templateName, rng)
				if err != nil {
					return err
				}

				logger.Debug("deriving harmony", "base", baseColour.Hex(), "template", template)
				palette = colour.NewPalette(colour.GenerateHarmony(baseColour, template))
			} else {
				if templateName != "" {
					return fmt.Errorf("--template requires --base")
				}
				palette = colour.GenerateQualityRandomPalette(rng, size)
			}

			return printPalette(cmd, palette, asJSON)
		},
	}

	cmd.Flags().IntVar(&size, "size", 5, "number of colours to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = derive from current time)")
	cmd.Flags().StringVar(&base, "base", "", "base colour to derive the palette from")
	cmd.Flags().StringVar(&templateName, "template", "", "harmony template to apply to the base colour")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

// pickTemplate resolves the template flag, drawing a random template
// when none was requested.
func pickTemplate(name string, rng *rand.Rand) (colour.HarmonyTemplate, error) {
	if name != "" {
		return colour.ParseHarmonyTemplate(name)
	}
	templates := colour.HarmonyTemplates()
	return templates[rng.Intn(len(templates))], nil
}
