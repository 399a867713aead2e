package colour

import (
	"testing"
)

func TestHarmonyScore(t *testing.T) {
	identical := Colour{100, 100, 100}

	tests := []struct {
		name    string
		colours []Colour
		want    float64
	}{
		{name: "empty palette", colours: nil, want: 100},
		{name: "single colour", colours: []Colour{{255, 0, 0}}, want: 100},
		{name: "identical pair penalised", colours: []Colour{identical, identical}, want: 95},
		{name: "black and white clash", colours: []Colour{{0, 0, 0}, {255, 255, 255}}, want: 95},
		{name: "comfortable distance", colours: []Colour{{255, 0, 0}, {0, 255, 0}}, want: 100},
		{
			name:    "both penalties stack",
			colours: []Colour{{0, 0, 0}, {10, 10, 10}, {255, 255, 255}},
			// near-identical black pair, plus the black/white clash;
			// the near-black/white pair sits under the clash bound.
			want: 90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HarmonyScore(NewPalette(tt.colours))
			if got != tt.want {
				t.Errorf("HarmonyScore = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestHarmonyScoreFloorsAtZero(t *testing.T) {
	colours := make([]Colour, 30)
	for i := range colours {
		colours[i] = Colour{100, 100, 100}
	}

	if got := HarmonyScore(NewPalette(colours)); got != 0 {
		t.Errorf("HarmonyScore of 30 identical colours = %f, want 0", got)
	}
}
