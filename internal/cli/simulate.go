package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/palettekit/palettekit/internal/colour"
)

// newSimulateCmd builds the simulate command.
func newSimulateCmd() *cobra.Command {
	var (
		cvdType string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "simulate <colour>... | -",
		Short: "Simulate how a palette looks with a colour-vision deficiency",
		Long: `Simulate a palette under one or all colour-vision deficiencies.

Types: protanopia, protanomaly, deuteranopia, deuteranomaly,
tritanopia, tritanomaly, achromatopsia, achromatomaly.

Examples:
  palettekit simulate --type deuteranopia '#f38ba8' '#a6e3a1'
  palettekit simulate --type all '#f38ba8' '#a6e3a1'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			palette, err := paletteFromArgs(cmd, args)
			if err != nil {
				return err
			}

			types := colour.CVDTypes()
			if cvdType != "all" {
				t, err := colour.ParseCVDType(cvdType)
				if err != nil {
					return err
				}
				types = []colour.CVDType{t}
			}

			out := cmd.OutOrStdout()
			for i, t := range types {
				if len(types) > 1 {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "%s:\n", t)
				}
				if err := printPalette(cmd, colour.SimulatePalette(palette, t), asJSON); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cvdType, "type", "all", `deficiency type to simulate (or "all")`)
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}
