// Package cli provides the command-line interface for PaletteKit.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/palettekit/palettekit/internal/version"
)

var (
	// Global flags shared by all commands.
	rootVerbose   bool
	rootNoPreview bool

	// logger is replaced with a real logger when --verbose is set.
	logger hclog.Logger = hclog.NewNullLogger()
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "palettekit",
		Short: "Evaluate, repair and generate accessible colour palettes",
		Long: `PaletteKit evaluates colour palettes for accessibility and visual
harmony, and repairs or regenerates them when they fall short.

It scores WCAG contrast between every pair of colours, rates palette
harmony, simulates eight kinds of colour-vision deficiency, derives
light and dark tone variants, extracts colours from pasted text, and
exports palettes as CSS, SCSS, JS, JSON, Tailwind config or plain
swatch listings.

Palettes are given as hex colour arguments, or as "-" to read
free-form text (CSS, logs, anything with colours in it) from stdin.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if rootVerbose {
				logger = hclog.New(&hclog.LoggerOptions{
					Name:   "palettekit",
					Output: cmd.ErrOrStderr(),
					Level:  hclog.Debug,
				})
			} else {
				logger = hclog.NewNullLogger()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&rootNoPreview, "no-preview", false, "disable colour swatch previews")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newAuditCmd(),
		newGenerateCmd(),
		newImproveCmd(),
		newSimulateCmd(),
		newVariantCmd(),
		newParseCmd(),
		newExportCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
