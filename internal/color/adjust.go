package color

import (
	"math"

	"github.com/rs/zerolog/log"
)

const (
	minHueShift        = -180
	maxHueShift        = 180
	maxSaturationScale = 2
	minLightnessScale  = 0.2
	maxLightnessScale  = 2

	// adjustedLightnessFloor keeps scaled-down colors from collapsing to
	// pure black.
	adjustedLightnessFloor = 0.1

	identityTolerance = 1e-9
)

// Adjustments is a global hue/saturation/lightness transform applied to
// every color token. The zero-shift, unit-scale value is the identity.
type Adjustments struct {
	HueShift        float64 `json:"hueShift" yaml:"hue_shift"`
	SaturationScale float64 `json:"saturationScale" yaml:"saturation_scale"`
	LightnessScale  float64 `json:"lightnessScale" yaml:"lightness_scale"`
}

// IdentityAdjustments returns the no-op transform.
func IdentityAdjustments() Adjustments {
	return Adjustments{HueShift: 0, SaturationScale: 1, LightnessScale: 1}
}

// IsIdentity reports whether applying a would leave colors unchanged.
func (a Adjustments) IsIdentity() bool {
	return math.Abs(a.HueShift) < identityTolerance &&
		math.Abs(a.SaturationScale-1) < identityTolerance &&
		math.Abs(a.LightnessScale-1) < identityTolerance
}

// Clamped constrains each component to its documented range: hue shift
// [-180,180], saturation scale [0,2], lightness scale [0.2,2].
func (a Adjustments) Clamped() Adjustments {
	return Adjustments{
		HueShift:        clamp(a.HueShift, minHueShift, maxHueShift),
		SaturationScale: clamp(a.SaturationScale, 0, maxSaturationScale),
		LightnessScale:  clamp(a.LightnessScale, minLightnessScale, maxLightnessScale),
	}
}

// Adjust applies the transform to a single color and renders the result in
// canonical oklch. Unparseable input is returned unchanged with a logged
// warning; the identity transform is an exact no-op.
func Adjust(input string, adj Adjustments) string {
	adj = adj.Clamped()
	if adj.IsIdentity() {
		return input
	}

	c, ok := Parse(input)
	if !ok {
		log.Warn().Str("value", input).Msg("Unparseable color left unadjusted")
		return input
	}

	h, s, l := c.HSL()
	h = math.Mod(math.Mod(h+adj.HueShift, 360)+360, 360)
	s = clamp(s*adj.SaturationScale, 0, 1)
	l = clamp(l*adj.LightnessScale, adjustedLightnessFloor, 1)

	return FromHSL(h, s, l, c.A).Format(FormatOKLCH, 4)
}
