package colour

import (
	"testing"
)

func hexes(colours []Colour) []string {
	out := make([]string, len(colours))
	for i, c := range colours {
		out[i] = c.Hex()
	}
	return out
}

func assertHexes(t *testing.T, got []Colour, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("extracted %v, want %v", hexes(got), want)
	}
	for i, w := range want {
		if got[i].Hex() != w {
			t.Errorf("colour %d = %s, want %s", i, got[i].Hex(), w)
		}
	}
}

func TestExtractColours(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "prefixed hex",
			text: "background: #1E1E2E; border: #abc;",
			want: []string{"#1e1e2e", "#aabbcc"},
		},
		{
			name: "bare hex tokens",
			text: "colours ff0000 and 00ff00 please",
			want: []string{"#ff0000", "#00ff00"},
		},
		{
			name: "purely numeric tokens rejected",
			text: "order 123456 shipped, invoice 442",
			want: []string{},
		},
		{
			name: "rgb notation",
			text: "rgb(0, 0, 255) and rgb(255,128,0)",
			want: []string{"#0000ff", "#ff8000"},
		},
		{
			name: "rgba keeps colour drops alpha",
			text: "rgba(255, 255, 0, 0.5)",
			want: []string{"#ffff00"},
		},
		{
			name: "hsl notation",
			text: "hsl(180, 100%, 50%)",
			want: []string{"#00ffff"},
		},
		{
			name: "hsla notation",
			text: "hsla(300, 100%, 25%, 1.0)",
			want: []string{"#800080"},
		},
		{
			name: "named colours",
			text: "a tomato on a steelblue table",
			want: []string{"#ff6347", "#4682b4"},
		},
		{
			name: "out of range rgb skipped",
			text: "rgb(300, 0, 0) rgb(12, 12, 12)",
			want: []string{"#0c0c0c"},
		},
		{
			name: "out of range hsl skipped",
			text: "hsl(400, 50%, 50%) hsl(120, 50%, 50%)",
			want: []string{"#40bf40"},
		},
		{
			name: "invalid alpha skipped",
			text: "rgba(10, 20, 30, 1.5)",
			want: []string{},
		},
		{
			name: "no colours",
			text: "nothing to see here",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertHexes(t, ExtractColours(tt.text), tt.want)
		})
	}
}

func TestExtractColoursScanOrder(t *testing.T) {
	// Passes run hex-first even when other notations appear earlier in
	// the text.
	text := "rgb(1, 2, 3) then #ff0000 then hsl(120, 100%, 50%)"
	assertHexes(t, ExtractColours(text), []string{"#ff0000", "#010203", "#00ff00"})
}

func TestExtractColoursDeduplicates(t *testing.T) {
	// The same colour in three notations appears once, and the
	// prefixed form does not get re-captured by the bare-hex pass.
	text := "#ff0000 red rgb(255, 0, 0)"
	assertHexes(t, ExtractColours(text), []string{"#ff0000"})
}

func TestExtractColoursThreeDigitBare(t *testing.T) {
	// "fff" expands to white; "fade" is four characters and matches
	// neither hex length.
	assertHexes(t, ExtractColours("fade it with fff"), []string{"#ffffff"})
}
