package colour

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Colour
		wantErr bool
	}{
		{name: "six digit with hash", input: "#ff0000", want: Colour{R: 255, G: 0, B: 0}},
		{name: "six digit without hash", input: "336699", want: Colour{R: 0x33, G: 0x66, B: 0x99}},
		{name: "uppercase", input: "#FF8800", want: Colour{R: 0xff, G: 0x88, B: 0x00}},
		{name: "three digit expands nibbles", input: "#abc", want: Colour{R: 0xaa, G: 0xbb, B: 0xcc}},
		{name: "four digit discards alpha", input: "#abcf", want: Colour{R: 0xaa, G: 0xbb, B: 0xcc}},
		{name: "eight digit discards alpha", input: "#336699ff", want: Colour{R: 0x33, G: 0x66, B: 0x99}},
		{name: "surrounding whitespace", input: "  #000000 ", want: Colour{}},
		{name: "empty", input: "", wantErr: true},
		{name: "too short", input: "#12", wantErr: true},
		{name: "wrong length", input: "#12345", wantErr: true},
		{name: "non-hex digits", input: "#gggggg", wantErr: true},
		{name: "seven digits", input: "#1234567", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) expected error, got %v", tt.input, got)
				}
				var formatErr *ColourFormatError
				if !errors.As(err, &formatErr) {
					t.Errorf("ParseHex(%q) error type = %T, want *ColourFormatError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidHex(t *testing.T) {
	valid := []string{"#ffffff", "fff", "#AbC123", "#11223344"}
	for _, s := range valid {
		if !IsValidHex(s) {
			t.Errorf("IsValidHex(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "#", "xyz", "#12 456", "rgb(1,2,3)"}
	for _, s := range invalid {
		if IsValidHex(s) {
			t.Errorf("IsValidHex(%q) = true, want false", s)
		}
	}
}

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "FA3", want: "#ffaa33"},
		{input: "#FFFFFF", want: "#ffffff"},
		{input: "336699ff", want: "#336699"},
	}

	for _, tt := range tests {
		got, err := NormalizeHex(tt.input)
		if err != nil {
			t.Fatalf("NormalizeHex(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("NormalizeHex(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if _, err := NormalizeHex("nope"); err == nil {
		t.Error("NormalizeHex(\"nope\") expected error")
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		name   string
		colour Colour
		want   float64
	}{
		{name: "white", colour: Colour{255, 255, 255}, want: 1.0},
		{name: "black", colour: Colour{0, 0, 0}, want: 0.0},
		{name: "pure red", colour: Colour{255, 0, 0}, want: 0.2126},
		{name: "pure green", colour: Colour{0, 255, 0}, want: 0.7152},
		{name: "pure blue", colour: Colour{0, 0, 255}, want: 0.0722},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.colour.Luminance()
			if math.Abs(got-tt.want) > 1e-4 {
				t.Errorf("Luminance(%v) = %f, want %f", tt.colour, got, tt.want)
			}
		})
	}
}

func TestHSLKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		colour  Colour
		h, s, l float64
	}{
		{name: "red", colour: Colour{255, 0, 0}, h: 0, s: 1, l: 0.5},
		{name: "steel blue-ish", colour: Colour{0x33, 0x66, 0x99}, h: 210, s: 0.5, l: 0.4},
		{name: "white", colour: Colour{255, 255, 255}, h: 0, s: 0, l: 1},
		{name: "mid grey", colour: Colour{128, 128, 128}, h: 0, s: 0, l: 0.502},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := tt.colour.HSL()
			if math.Abs(h-tt.h) > 0.5 || math.Abs(s-tt.s) > 0.01 || math.Abs(l-tt.l) > 0.01 {
				t.Errorf("HSL(%v) = (%f, %f, %f), want (%f, %f, %f)",
					tt.colour, h, s, l, tt.h, tt.s, tt.l)
			}
		})
	}
}

func TestFromHSLAchromatic(t *testing.T) {
	// Saturation zero must produce a pure grey regardless of hue.
	got := FromHSL(123, 0, 0.5)
	if got.R != got.G || got.G != got.B {
		t.Errorf("FromHSL(123, 0, 0.5) = %v, want grey", got)
	}
}

func TestHSLRoundTrip(t *testing.T) {
	// Conversions must round-trip within one unit per channel.
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		c := RandomColour(rng)
		h, s, l := c.HSL()
		back := FromHSL(h, s, l)

		if channelDiff(c.R, back.R) > 1 || channelDiff(c.G, back.G) > 1 || channelDiff(c.B, back.B) > 1 {
			t.Fatalf("round trip failed for %v: got %v", c, back)
		}
	}
}

func channelDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func TestHslForDerivationSubstitutesAchromaticDefault(t *testing.T) {
	h, s, l := Colour{128, 128, 128}.hslForDerivation()
	if h != 0 {
		t.Errorf("derivation hue = %f, want 0", h)
	}
	if s != defaultDerivationSaturation {
		t.Errorf("derivation saturation = %f, want %f", s, defaultDerivationSaturation)
	}
	if math.Abs(l-0.502) > 0.01 {
		t.Errorf("derivation lightness = %f, want ~0.502", l)
	}

	// Chromatic colours pass through untouched.
	h, s, _ = Colour{255, 0, 0}.hslForDerivation()
	if h != 0 || s != 1 {
		t.Errorf("chromatic derivation = (%f, %f), want (0, 1)", h, s)
	}
}

func TestRandomColourDeterministic(t *testing.T) {
	a := RandomColour(rand.New(rand.NewSource(7)))
	b := RandomColour(rand.New(rand.NewSource(7)))
	if a != b {
		t.Errorf("same seed produced %v and %v", a, b)
	}
}

func TestDistance(t *testing.T) {
	got := Distance(Colour{0, 0, 0}, Colour{255, 255, 255})
	if math.Abs(got-441.67) > 0.01 {
		t.Errorf("Distance(black, white) = %f, want ~441.67", got)
	}

	if d := Distance(Colour{1, 2, 3}, Colour{1, 2, 3}); d != 0 {
		t.Errorf("Distance(c, c) = %f, want 0", d)
	}
}
