package colour

import (
	"math"
	"testing"
)

func TestImproveEmptyPalette(t *testing.T) {
	got := Improve(Palette{}, 0, 0)
	if got.Len() != 0 {
		t.Errorf("Improve(empty) = %v, want empty", got)
	}
}

func TestImproveKeepsBaseFirst(t *testing.T) {
	base := Colour{0x33, 0x66, 0x99}
	got := Improve(NewPalette([]Colour{base, {0x3a, 0x6b, 0x9e}}), 50, 50)
	if got.Len() == 0 || got.Colours[0] != base {
		t.Errorf("Improve did not keep the base first: %v", got.Colours)
	}
}

func TestImproveLowAccessibilityAddsLightCompanion(t *testing.T) {
	// A dark base with a failing accessibility score gains a light
	// high-contrast companion on the same hue.
	base := Colour{0x33, 0x66, 0x99}
	got := Improve(NewPalette([]Colour{base}), 40, 90)

	found := false
	for _, c := range got.Colours[1:] {
		if _, _, l := c.HSL(); l > 0.8 {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("no light companion in %v", got.Hex())
	}
}

func TestImproveLowHarmonyAddsComplement(t *testing.T) {
	// Base hue 210; its complement lands near hue 30.
	base := Colour{0x33, 0x66, 0x99}
	got := Improve(NewPalette([]Colour{base}), 90, 50)

	found := false
	for _, c := range got.Colours[1:] {
		if h, s, _ := c.HSL(); s > 0.2 && math.Abs(h-30) < 5 {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("no complementary colour near hue 30 in %v", got.Hex())
	}
}

func TestImproveAddsNeutralWhenAllSaturated(t *testing.T) {
	base := Colour{0x33, 0x66, 0x99}
	got := Improve(NewPalette([]Colour{base}), 90, 50)

	if !hasMutedColour(got.Colours) {
		t.Errorf("expected a low-saturation neutral in %v", got.Hex())
	}
}

func TestImproveDeduplicates(t *testing.T) {
	base := Colour{0x33, 0x66, 0x99}
	got := Improve(NewPalette([]Colour{base}), 90, 90)

	for i := 0; i < got.Len(); i++ {
		for j := i + 1; j < got.Len(); j++ {
			if got.Colours[i] == got.Colours[j] {
				t.Errorf("duplicate colour %s in improved palette", got.Colours[i].Hex())
			}
		}
	}
}

func TestRepairContrastAdjustsIsolatedColour(t *testing.T) {
	// Two mid greys with no readable partner: the first is pushed far
	// enough that the pair reaches the minimum ratio.
	colours := []Colour{{0x77, 0x77, 0x77}, {0x88, 0x88, 0x88}}
	original := colours[0]
	repairContrast(colours)

	if colours[0] == original {
		t.Fatal("repairContrast left an isolated colour untouched")
	}
	if ratio := ContrastRatio(colours[0], colours[1]); ratio < improveMinContrast {
		t.Errorf("repaired contrast = %f, want >= %f", ratio, improveMinContrast)
	}
}

func TestRepairContrastLeavesReadablePairsAlone(t *testing.T) {
	colours := []Colour{{0, 0, 0}, {255, 255, 255}}
	repairContrast(colours)

	if colours[0] != (Colour{0, 0, 0}) || colours[1] != (Colour{255, 255, 255}) {
		t.Errorf("repairContrast modified a readable pair: %v", colours)
	}
}

func TestAccessibilityImprovedColours(t *testing.T) {
	got := AccessibilityImprovedColours(NewPalette([]Colour{{255, 0, 0}}))

	if got.Len() == 0 || got.Colours[0] != (Colour{255, 0, 0}) {
		t.Fatalf("original colour not kept first: %v", got.Hex())
	}

	for _, want := range []string{"#ffffff", "#000000", "#6b7280"} {
		found := false
		for _, c := range got.Colours {
			if c.Hex() == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("neutral %s missing from %v", want, got.Hex())
		}
	}
}

func TestAccessibilityImprovedColoursEmpty(t *testing.T) {
	got := AccessibilityImprovedColours(Palette{})
	// Only the neutrals remain, deduplicated.
	if got.Len() != 3 {
		t.Errorf("empty input produced %v, want the three neutrals", got.Hex())
	}
}
