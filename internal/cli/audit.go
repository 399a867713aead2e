package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/palettekit/palettekit/internal/colour"
)

// newAuditCmd builds the audit command.
func newAuditCmd() *cobra.Command {
	var cvdCheck string

	cmd := &cobra.Command{
		Use:   "audit <colour>... | -",
		Short: "Score a palette for accessibility and harmony",
		Long: `Audit a palette: report its aggregate accessibility and harmony
scores and the WCAG contrast classification of every colour pair.

Examples:
  # Audit three colours
  palettekit audit '#1e1e2e' '#cdd6f4' '#f38ba8'

  # Audit colours pasted from a CSS file
  cat theme.css | palettekit audit -

  # Include a deuteranopia check
  palettekit audit --cvd deuteranopia '#1e1e2e' '#cdd6f4'

  # Check every colour-vision deficiency
  palettekit audit --cvd all '#1e1e2e' '#cdd6f4'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			palette, err := paletteFromArgs(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printScores(cmd, palette)

			if results := colour.EvaluateContrast(palette); len(results) > 0 {
				fmt.Fprintln(out)
				fmt.Fprint(out, contrastTable(results))
			}

			if cvdCheck == "" {
				return nil
			}

			types := colour.CVDTypes()
			if cvdCheck != "all" {
				t, err := colour.ParseCVDType(cvdCheck)
				if err != nil {
					return err
				}
				types = []colour.CVDType{t}
			}

			for _, t := range types {
				simulated := colour.SimulatePalette(palette, t)
				fmt.Fprintf(out, "\nAs seen with %s:\n", t)
				printScores(cmd, simulated)
				if err := printPalette(cmd, simulated, false); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cvdCheck, "cvd", "", `also audit under a colour-vision deficiency (type name or "all")`)

	return cmd
}

// printScores writes the aggregate scores for a palette.
func printScores(cmd *cobra.Command, p colour.Palette) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Accessibility score: %5.1f\n", colour.AccessibilityScore(p))
	fmt.Fprintf(out, "Harmony score:       %5.1f\n", colour.HarmonyScore(p))
}

// contrastTable renders pairwise contrast results as a table.
func contrastTable(results []colour.ContrastResult) string {
	table := NewTable([]string{"Foreground", "Background", "Ratio", "Level", "Score"})
	for _, r := range results {
		table.AddRow([]string{
			r.Foreground.Hex(),
			r.Background.Hex(),
			fmt.Sprintf("%.2f", r.Ratio),
			string(r.Level),
			fmt.Sprintf("%.0f", r.Score),
		})
	}
	return table.Render()
}
