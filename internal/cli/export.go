package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/palettekit/palettekit/internal/export"
)

// newExportCmd builds the export command.
func newExportCmd() *cobra.Command {
	var (
		format string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "export <colour>... | -",
		Short: "Export a palette as CSS, SCSS, JS, JSON, Tailwind or text",
		Long: `Export a palette in a developer-facing format. Variables are named
"{name}-1", "{name}-2", ... in palette order.

Formats: css, scss, js, json, tailwind, txt.

Examples:
  palettekit export --format css --name brand '#1e1e2e' '#cdd6f4'
  palettekit export --format tailwind '#f38ba8' '#a6e3a1' '#89b4fa'
  cat palette.txt | palettekit export --format scss -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			palette, err := paletteFromArgs(cmd, args)
			if err != nil {
				return err
			}

			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			rendered, err := export.Render(palette, name, f)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "css", "output format (css, scss, js, json, tailwind, txt)")
	cmd.Flags().StringVar(&name, "name", "palette", "variable name prefix")

	return cmd
}
