package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// OKLab conversion matrices from Björn Ottosson's reference implementation.
// go-colorful handles the sRGB <-> linear RGB leg; the LMS leg lives here.

// OKLCH returns perceptual lightness in [0,1], chroma, and hue in degrees.
func (c Color) OKLCH() (l, chroma, h float64) {
	lr, lg, lb := colorful.Color{R: c.R, G: c.G, B: c.B}.LinearRgb()

	lms1 := 0.4122214708*lr + 0.5363325363*lg + 0.0514459929*lb
	lms2 := 0.2119034982*lr + 0.6806995451*lg + 0.1073969566*lb
	lms3 := 0.0883024619*lr + 0.2817188376*lg + 0.6299787005*lb

	l1 := math.Cbrt(lms1)
	l2 := math.Cbrt(lms2)
	l3 := math.Cbrt(lms3)

	okL := 0.2104542553*l1 + 0.7936177850*l2 - 0.0040720468*l3
	okA := 1.9779984951*l1 - 2.4285922050*l2 + 0.4505937099*l3
	okB := 0.0259040371*l1 + 0.7827717662*l2 - 0.8086757660*l3

	chroma = math.Hypot(okA, okB)
	h = math.Atan2(okB, okA) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	// Achromatic colors have no meaningful hue; zero it so formatting is stable.
	if chroma < 1e-6 {
		chroma = 0
		h = 0
	}
	return okL, chroma, h
}

// FromOKLCH builds a color from OKLCH components, clamping the result into
// the sRGB gamut.
func FromOKLCH(l, chroma, h, alpha float64) Color {
	hRad := h * math.Pi / 180
	okA := chroma * math.Cos(hRad)
	okB := chroma * math.Sin(hRad)

	l1 := l + 0.3963377774*okA + 0.2158037573*okB
	l2 := l - 0.1055613458*okA - 0.0638541728*okB
	l3 := l - 0.0894841775*okA - 1.2914855480*okB

	lms1 := l1 * l1 * l1
	lms2 := l2 * l2 * l2
	lms3 := l3 * l3 * l3

	lr := 4.0767416621*lms1 - 3.3077115913*lms2 + 0.2309699292*lms3
	lg := -1.2684380046*lms1 + 2.6097574011*lms2 - 0.3413193965*lms3
	lb := -0.0041960863*lms1 - 0.7034186147*lms2 + 1.7076147010*lms3

	cc := colorful.LinearRgb(lr, lg, lb).Clamped()
	return Color{R: cc.R, G: cc.G, B: cc.B, A: alpha}
}
