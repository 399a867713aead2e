package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/palettekit/palettekit/internal/colour"
)

// newParseCmd builds the parse command.
func newParseCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse [text...]",
		Short: "Extract colours from free-form text",
		Long: `Extract colours from text: hex codes (with or without "#"), rgb()/
rgba(), hsl()/hsla() notations and CSS colour names. Duplicates are
removed, first occurrence wins.

With no arguments, text is read from stdin.

Examples:
  palettekit parse 'background: #1e1e2e; color: rgb(205, 214, 244)'
  curl -s https://example.com/style.css | palettekit parse`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				text = string(data)
			}

			colours := colour.ExtractColours(text)
			logger.Debug("extracted colours", "count", len(colours))
			if len(colours) == 0 {
				return fmt.Errorf("no colours found in input")
			}

			return printPalette(cmd, colour.NewPalette(colours), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}
