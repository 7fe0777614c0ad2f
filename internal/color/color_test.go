package color

import (
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
		ok    bool
	}{
		{"six digit red", "#ff0000", Color{R: 1, G: 0, B: 0, A: 1}, true},
		{"three digit shorthand", "#f00", Color{R: 1, G: 0, B: 0, A: 1}, true},
		{"eight digit with alpha", "#ff000080", Color{R: 1, G: 0, B: 0, A: 128.0 / 255}, true},
		{"white", "#ffffff", Color{R: 1, G: 1, B: 1, A: 1}, true},
		{"uppercase", "#FFFFFF", Color{R: 1, G: 1, B: 1, A: 1}, true},
		{"five digits", "#fffff", Color{}, false},
		{"not hex", "#gggggg", Color{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && !colorsClose(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFunctional(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{"rgb legacy commas", "rgb(255, 0, 0)", Color{R: 1, G: 0, B: 0, A: 1}},
		{"rgb modern spaces", "rgb(255 0 0)", Color{R: 1, G: 0, B: 0, A: 1}},
		{"rgba with alpha", "rgba(0, 0, 255, 0.5)", Color{R: 0, G: 0, B: 1, A: 0.5}},
		{"rgb percent channels", "rgb(100% 0% 0%)", Color{R: 1, G: 0, B: 0, A: 1}},
		{"hsl wrapper", "hsl(0, 100%, 50%)", Color{R: 1, G: 0, B: 0, A: 1}},
		{"hsl modern", "hsl(120 100% 50%)", Color{R: 0, G: 1, B: 0, A: 1}},
		{"bare hsl tuple", "240 100% 50%", Color{R: 0, G: 0, B: 1, A: 1}},
		{"oklch white", "oklch(1 0 0)", Color{R: 1, G: 1, B: 1, A: 1}},
		{"oklch percent lightness", "oklch(100% 0 0)", Color{R: 1, G: 1, B: 1, A: 1}},
		{"oklch with alpha", "oklch(1 0 0 / 0.5)", Color{R: 1, G: 1, B: 1, A: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if !ok {
				t.Fatalf("Parse(%q) failed", tt.input)
			}
			if !colorsClose(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	for _, input := range []string{"", "   ", "red", "rgb()", "oklch()", "hsl(abc, 1%, 2%)", "12px"} {
		if _, ok := Parse(input); ok {
			t.Errorf("Parse(%q) unexpectedly succeeded", input)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	// Format, reparse, and confirm the color survives each notation.
	inputs := []string{"#ff0000", "#3b82f6", "#1a1a2e", "#ffffff", "#000000"}
	formats := []Format{FormatHex, FormatRGB, FormatHSL, FormatOKLCH}

	for _, input := range inputs {
		original, ok := Parse(input)
		if !ok {
			t.Fatalf("Parse(%q) failed", input)
		}
		for _, format := range formats {
			rendered := original.Format(format, 4)
			reparsed, ok := Parse(rendered)
			if !ok {
				t.Fatalf("%s: Parse(%q) failed after format %s", input, rendered, format)
			}
			if !colorsWithin(original, reparsed, 0.01) {
				t.Errorf("%s via %s: got %+v back from %q, want %+v", input, format, reparsed, rendered, original)
			}
		}
	}
}

func TestFormatHSLVersions(t *testing.T) {
	c, _ := Parse("#0000ff")
	if got := c.Format(FormatHSL, 3); got != "240 100% 50%" {
		t.Errorf("v3 hsl = %q, want bare tuple", got)
	}
	if got := c.Format(FormatHSL, 4); got != "hsl(240 100% 50%)" {
		t.Errorf("v4 hsl = %q, want wrapped tuple", got)
	}
}

func TestFormatOKLCHAchromatic(t *testing.T) {
	white, _ := Parse("#ffffff")
	if got := white.Format(FormatOKLCH, 4); got != "oklch(1 0 0)" {
		t.Errorf("white oklch = %q, want oklch(1 0 0)", got)
	}
	black, _ := Parse("#000000")
	if got := black.Format(FormatOKLCH, 4); got != "oklch(0 0 0)" {
		t.Errorf("black oklch = %q, want oklch(0 0 0)", got)
	}
}

func TestFormatStringPassesThroughUnparseable(t *testing.T) {
	if got := FormatString("not-a-color", FormatHex, 4); got != "not-a-color" {
		t.Errorf("FormatString = %q, want input unchanged", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "0"},
		{1, "1"},
		{240, "240"},
		{0.5, "0.5"},
		{0.123456, "0.1235"},
		{0.10000001, "0.1"},
		{99.99999, "100"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.value); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"#ffffff", 1},
		{"#000000", 0},
		{"#ff0000", 0.2126},
		{"#00ff00", 0.7152},
		{"#0000ff", 0.0722},
	}
	for _, tt := range tests {
		got, ok := Luminance(tt.input)
		if !ok {
			t.Fatalf("Luminance(%q) failed", tt.input)
		}
		if math.Abs(got-tt.want) > 1e-4 {
			t.Errorf("Luminance(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, ok := Luminance("bogus"); ok {
		t.Error("Luminance of unparseable input should fail")
	}
}

func TestOKLCHRoundTrip(t *testing.T) {
	for _, input := range []string{"#3b82f6", "#ef4444", "#22c55e", "#1a1a2e"} {
		c, _ := Parse(input)
		l, chroma, h := c.OKLCH()
		back := FromOKLCH(l, chroma, h, c.A)
		if !colorsWithin(c, back, 0.002) {
			t.Errorf("%s: round-trip %+v -> %+v", input, c, back)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"hex", "RGB", " hsl ", "oklch"} {
		if _, ok := ParseFormat(valid); !ok {
			t.Errorf("ParseFormat(%q) should succeed", valid)
		}
	}
	for _, invalid := range []string{"", "lab", "cmyk"} {
		if _, ok := ParseFormat(invalid); ok {
			t.Errorf("ParseFormat(%q) should fail", invalid)
		}
	}
}

func colorsClose(a, b Color) bool {
	return colorsWithin(a, b, 1e-4)
}

func colorsWithin(a, b Color, tolerance float64) bool {
	return math.Abs(a.R-b.R) <= tolerance &&
		math.Abs(a.G-b.G) <= tolerance &&
		math.Abs(a.B-b.B) <= tolerance &&
		math.Abs(a.A-b.A) <= tolerance
}
