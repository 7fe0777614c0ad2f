package color

import (
	"math"
	"testing"
)

func TestAdjustIdentityIsNoOp(t *testing.T) {
	// The identity transform must return the input byte-for-byte, not a
	// reformatted equivalent.
	inputs := []string{"#3b82f6", "hsl(240 50% 60%)", "oklch(0.6 0.15 250)", "garbage"}
	for _, input := range inputs {
		if got := Adjust(input, IdentityAdjustments()); got != input {
			t.Errorf("Adjust(%q, identity) = %q, want input unchanged", input, got)
		}
	}
}

func TestAdjustUnparseablePassesThrough(t *testing.T) {
	adj := Adjustments{HueShift: 90, SaturationScale: 1, LightnessScale: 1}
	if got := Adjust("not-a-color", adj); got != "not-a-color" {
		t.Errorf("Adjust = %q, want input unchanged", got)
	}
}

func TestAdjustHueShift(t *testing.T) {
	adj := Adjustments{HueShift: 120, SaturationScale: 1, LightnessScale: 1}
	got := Adjust("hsl(0 100% 50%)", adj)

	c, ok := Parse(got)
	if !ok {
		t.Fatalf("adjusted output %q does not parse", got)
	}
	h, _, _ := c.HSL()
	if math.Abs(h-120) > 0.5 {
		t.Errorf("hue after +120 shift = %v, want ~120 (output %q)", h, got)
	}
}

func TestAdjustHueWraps(t *testing.T) {
	adj := Adjustments{HueShift: -90, SaturationScale: 1, LightnessScale: 1}
	got := Adjust("hsl(30 100% 50%)", adj)

	c, _ := Parse(got)
	h, _, _ := c.HSL()
	if math.Abs(h-300) > 0.5 {
		t.Errorf("hue after wrap = %v, want ~300 (output %q)", h, got)
	}
}

func TestAdjustOutputIsOKLCH(t *testing.T) {
	adj := Adjustments{HueShift: 10, SaturationScale: 1, LightnessScale: 1}
	got := Adjust("#3b82f6", adj)
	if !oklchRegex.MatchString(got) {
		t.Errorf("Adjust output %q is not oklch notation", got)
	}
}

func TestAdjustLightnessFloor(t *testing.T) {
	// Scaling lightness down must not collapse dark colors to pure black.
	adj := Adjustments{HueShift: 0, SaturationScale: 1, LightnessScale: 0.2}
	got := Adjust("hsl(200 50% 15%)", adj)

	c, _ := Parse(got)
	_, _, l := c.HSL()
	if l < adjustedLightnessFloor-0.01 {
		t.Errorf("lightness after floor = %v, want >= %v (output %q)", l, adjustedLightnessFloor, got)
	}
}

func TestAdjustSaturationClamped(t *testing.T) {
	adj := Adjustments{HueShift: 0, SaturationScale: 2, LightnessScale: 1}
	got := Adjust("hsl(120 80% 50%)", adj)

	c, _ := Parse(got)
	_, s, _ := c.HSL()
	if s > 1.001 {
		t.Errorf("saturation = %v, want clamped to 1 (output %q)", s, got)
	}
}

func TestAdjustmentsClamped(t *testing.T) {
	tests := []struct {
		name string
		in   Adjustments
		want Adjustments
	}{
		{"within range", Adjustments{HueShift: 45, SaturationScale: 1.5, LightnessScale: 0.8}, Adjustments{HueShift: 45, SaturationScale: 1.5, LightnessScale: 0.8}},
		{"hue too high", Adjustments{HueShift: 300, SaturationScale: 1, LightnessScale: 1}, Adjustments{HueShift: 180, SaturationScale: 1, LightnessScale: 1}},
		{"hue too low", Adjustments{HueShift: -300, SaturationScale: 1, LightnessScale: 1}, Adjustments{HueShift: -180, SaturationScale: 1, LightnessScale: 1}},
		{"negative saturation", Adjustments{HueShift: 0, SaturationScale: -1, LightnessScale: 1}, Adjustments{HueShift: 0, SaturationScale: 0, LightnessScale: 1}},
		{"lightness below floor", Adjustments{HueShift: 0, SaturationScale: 1, LightnessScale: 0.05}, Adjustments{HueShift: 0, SaturationScale: 1, LightnessScale: 0.2}},
		{"lightness above ceiling", Adjustments{HueShift: 0, SaturationScale: 1, LightnessScale: 5}, Adjustments{HueShift: 0, SaturationScale: 1, LightnessScale: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Clamped(); got != tt.want {
				t.Errorf("Clamped() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIsIdentity(t *testing.T) {
	if !IdentityAdjustments().IsIdentity() {
		t.Error("IdentityAdjustments should report identity")
	}
	if (Adjustments{HueShift: 1, SaturationScale: 1, LightnessScale: 1}).IsIdentity() {
		t.Error("nonzero hue shift should not report identity")
	}
}
