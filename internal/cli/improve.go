package cli

import (
	"github.com/spf13/cobra"

	"github.com/palettekit/palettekit/internal/colour"
)

// newImproveCmd builds the improve command.
func newImproveCmd() *cobra.Command {
	var (
		accessibilityScore float64
		harmonyScore       float64
		accessibilityOnly  bool
		asJSON             bool
	)

	cmd := &cobra.Command{
		Use:   "improve <colour>... | -",
		Short: "Repair a palette toward better accessibility and harmony",
		Long: `Repair a palette. The first colour anchors the result; companions
are derived from it depending on which score falls short, and every
surviving colour is nudged toward a readable contrast partner.

Scores are computed from the palette unless overridden with
--accessibility / --harmony. With --accessibility-only the dedicated
accessibility repair path runs instead: each original colour gains a
high-contrast companion and fixed neutrals are appended.

Examples:
  palettekit improve '#336699' '#3a6b9e'
  palettekit improve --accessibility-only '#777777' '#888888'
  cat brand.css | palettekit improve -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			palette, err := paletteFromArgs(cmd, args)
			if err != nil {
				return err
			}

			var improved colour.Palette
			if accessibilityOnly {
				improved = colour.AccessibilityImprovedColours(palette)
			} else {
				acc := accessibilityScore
				if acc < 0 {
					acc = colour.AccessibilityScore(palette)
				}
				harm := harmonyScore
				if harm < 0 {
					harm = colour.HarmonyScore(palette)
				}

				logger.Debug("improving palette", "accessibility", acc, "harmony", harm)
				improved = colour.Improve(palette, acc, harm)
			}

			return printPalette(cmd, improved, asJSON)
		},
	}

	cmd.Flags().Float64Var(&accessibilityScore, "accessibility", -1, "override the computed accessibility score")
	cmd.Flags().Float64Var(&harmonyScore, "harmony", -1, "override the computed harmony score")
	cmd.Flags().BoolVar(&accessibilityOnly, "accessibility-only", false, "use the dedicated accessibility repair path")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}
