package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/palettekit/palettekit/internal/colour"
)

// paletteFromArgs builds a palette from command arguments. Arguments
// are hex colour strings, or a single "-" to read free-form text from
// stdin through the colour-text parser.
func paletteFromArgs(cmd *cobra.Command, args []string) (colour.Palette, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return colour.Palette{}, fmt.Errorf("failed to read stdin: %w", err)
		}

		colours := colour.ExtractColours(string(data))
		if len(colours) == 0 {
			return colour.Palette{}, fmt.Errorf("no colours found in input")
		}

		logger.Debug("extracted colours from stdin", "count", len(colours))
		return colour.NewPalette(colours), nil
	}

	palette, err := colour.ParsePalette(args)
	if err != nil {
		return colour.Palette{}, err
	}
	return palette, nil
}

// previewEnabled reports whether swatch previews should be shown:
// stdout must be a terminal and --no-preview unset.
func previewEnabled() bool {
	return !rootNoPreview && term.IsTerminal(int(os.Stdout.Fd()))
}

// printPalette writes a palette to the command's output, either as
// JSON or as hex lines with optional swatch previews.
func printPalette(cmd *cobra.Command, p colour.Palette, asJSON bool) error {
	out := cmd.OutOrStdout()

	if asJSON {
		data, err := p.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to encode palette: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	for _, c := range p.Colours {
		if previewEnabled() {
			fmt.Fprintln(out, colour.FormatWithPreview(c, 8))
		} else {
			fmt.Fprintln(out, c.Hex())
		}
	}
	return nil
}
