// Package export renders palettes into developer-facing text formats:
// CSS custom properties, SCSS variables, a JS array, JSON, a Tailwind
// colour map and a plain swatch listing. Variable names are 1-based
// ("{name}-1", "{name}-2", ...) in every format.
package export

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"slices"
	"text/template"

	"github.com/palettekit/palettekit/internal/colour"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Format identifies an output format.
type Format string

const (
	FormatCSS      Format = "css"
	FormatSCSS     Format = "scss"
	FormatJS       Format = "js"
	FormatJSON     Format = "json"
	FormatTailwind Format = "tailwind"
	FormatText     Format = "txt"
)

// Formats returns all supported output formats.
func Formats() []Format {
	return []Format{FormatCSS, FormatSCSS, FormatJS, FormatJSON, FormatTailwind, FormatText}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if slices.Contains(Formats(), f) {
		return f, nil
	}
	return "", fmt.Errorf("unsupported export format: %q (supported: css, scss, js, json, tailwind, txt)", s)
}

// entry is the per-colour view handed to the templates.
type entry struct {
	Index   int
	Hex     string
	R, G, B uint8
}

// document is the root template context.
type document struct {
	Name    string
	Colours []entry
}

// Render produces the palette in the requested format under the given
// name. The name becomes the variable prefix (CSS/SCSS/Tailwind) or
// the top-level key (JS/JSON).
func Render(p colour.Palette, name string, format Format) (string, error) {
	if name == "" {
		name = "palette"
	}

	if format == FormatJSON {
		return renderJSON(p, name)
	}

	tmpl, err := template.ParseFS(templateFS, fmt.Sprintf("templates/%s.tmpl", format))
	if err != nil {
		return "", fmt.Errorf("unsupported export format: %q", format)
	}

	doc := document{Name: name, Colours: make([]entry, len(p.Colours))}
	for i, c := range p.Colours {
		doc.Colours[i] = entry{Index: i + 1, Hex: c.Hex(), R: c.R, G: c.G, B: c.B}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to render %s export: %w", format, err)
	}
	return buf.String(), nil
}

// renderJSON writes { "name": ["#hex", ...] }.
func renderJSON(p colour.Palette, name string) (string, error) {
	out, err := json.MarshalIndent(map[string][]string{name: p.Hex()}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render json export: %w", err)
	}
	return string(out) + "\n", nil
}
