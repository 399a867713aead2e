package colour

import (
	"encoding/json"
	"fmt"
)

// Palette is an ordered collection of colours. Order matters only for
// display and export indexing; none of the scoring functions depend on
// it. The engine imposes no size limits: every operation behaves
// sensibly for empty, single-colour and large palettes.
type Palette struct {
	Colours []Colour
}

// NewPalette creates a Palette with the given colours.
func NewPalette(colours []Colour) Palette {
	return Palette{Colours: colours}
}

// ParsePalette builds a palette from hex colour strings. The first
// invalid entry aborts with a ColourFormatError.
func ParsePalette(hexes []string) (Palette, error) {
	colours := make([]Colour, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return Palette{}, err
		}
		colours = append(colours, c)
	}
	return NewPalette(colours), nil
}

// Len returns the number of colours in the palette.
func (p Palette) Len() int {
	return len(p.Colours)
}

// Hex returns the palette as normalized hex strings.
func (p Palette) Hex() []string {
	hexes := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		hexes[i] = c.Hex()
	}
	return hexes
}

// Contains reports whether the palette holds an exact match for c.
func (p Palette) Contains(c Colour) bool {
	for _, existing := range p.Colours {
		if existing == c {
			return true
		}
	}
	return false
}

// ColourJSON represents a colour in JSON output format.
type ColourJSON struct {
	Hex string `json:"hex"`
	RGB Colour `json:"rgb"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count   int          `json:"count"`
	Colours []ColourJSON `json:"colours"`
}

// ToJSON converts the palette to indented JSON.
func (p Palette) ToJSON() ([]byte, error) {
	colours := make([]ColourJSON, len(p.Colours))
	for i, c := range p.Colours {
		colours[i] = ColourJSON{Hex: c.Hex(), RGB: c}
	}

	return json.MarshalIndent(PaletteJSON{
		Count:   len(p.Colours),
		Colours: colours,
	}, "", "  ")
}

// String returns a human-readable listing of the palette.
func (p Palette) String() string {
	if len(p.Colours) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Colours))
	for i, c := range p.Colours {
		result += fmt.Sprintf("  %2d: %s (%s)\n", i+1, c.Hex(), c.RGBString())
	}
	return result
}
