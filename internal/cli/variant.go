package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/palettekit/palettekit/internal/colour"
)

// newVariantCmd builds the variant command.
func newVariantCmd() *cobra.Command {
	var (
		tone   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "variant <colour>... | -",
		Short: "Derive the light or dark counterpart of a palette",
		Long: `Derive a tone variant of a palette: each colour keeps its hue while
its lightness is remapped into the target tone's range.

Examples:
  # Dark-mode counterpart of a light palette
  palettekit variant --tone dark '#eff1f5' '#4c4f69'

  # Light-mode counterpart
  palettekit variant --tone light '#1e1e2e' '#cdd6f4'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			palette, err := paletteFromArgs(cmd, args)
			if err != nil {
				return err
			}

			var variant colour.Palette
			switch tone {
			case "dark":
				variant = colour.DarkVariant(palette)
			case "light":
				variant = colour.LightVariant(palette)
			default:
				return fmt.Errorf("invalid tone: %q (must be \"dark\" or \"light\")", tone)
			}

			return printPalette(cmd, variant, asJSON)
		},
	}

	cmd.Flags().StringVar(&tone, "tone", "dark", "target tone (dark or light)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}
