// Package color parses, converts, and formats CSS color values across the
// hex, rgb, hsl, and oklch notations used by the theme editor. OKLCH is the
// engine's canonical interchange format.
package color

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog/log"
)

// Format identifies a CSS color output notation.
type Format string

const (
	FormatHex   Format = "hex"
	FormatRGB   Format = "rgb"
	FormatHSL   Format = "hsl"
	FormatOKLCH Format = "oklch"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(value string) (Format, bool) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatHex:
		return FormatHex, true
	case FormatRGB:
		return FormatRGB, true
	case FormatHSL:
		return FormatHSL, true
	case FormatOKLCH:
		return FormatOKLCH, true
	}
	return "", false
}

// Color is a parsed color: sRGB components in [0,1] with straight alpha.
type Color struct {
	R, G, B, A float64
}

var (
	hexRegex     = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbRegex     = regexp.MustCompile(`^rgba?\(\s*([0-9.]+%?)\s*[,\s]\s*([0-9.]+%?)\s*[,\s]\s*([0-9.]+%?)\s*(?:[,/]\s*([0-9.]+%?)\s*)?\)$`)
	hslRegex     = regexp.MustCompile(`^hsla?\(\s*([0-9.]+)(?:deg)?\s*[,\s]\s*([0-9.]+)%?\s*[,\s]\s*([0-9.]+)%?\s*(?:[,/]\s*([0-9.]+%?)\s*)?\)$`)
	bareHSLRegex = regexp.MustCompile(`^([0-9.]+)(?:deg)?\s+([0-9.]+)%\s+([0-9.]+)%$`)
	oklchRegex   = regexp.MustCompile(`^oklch\(\s*([0-9.]+%?)\s+([0-9.]+)\s+([0-9.]+)(?:deg)?\s*(?:/\s*([0-9.]+%?)\s*)?\)$`)
)

// Parse reads a color in any supported notation. The second return value is
// false for unparseable input; callers are expected to degrade, not fail.
func Parse(input string) (Color, bool) {
	value := strings.TrimSpace(input)
	if value == "" {
		return Color{}, false
	}

	switch {
	case strings.HasPrefix(value, "#"):
		return parseHex(value)
	case hslRegex.MatchString(value):
		return parseHSLFunc(value)
	case rgbRegex.MatchString(value):
		return parseRGBFunc(value)
	case oklchRegex.MatchString(value):
		return parseOKLCHFunc(value)
	case bareHSLRegex.MatchString(value):
		// Tailwind v3 convention: "240 50% 60%" inside an hsl() wrapper.
		return parseBareHSL(value)
	}
	return Color{}, false
}

// IsValid reports whether input parses as any supported color notation.
func IsValid(input string) bool {
	_, ok := Parse(input)
	return ok
}

// FormatString re-renders input in the target notation. Unparseable input is
// returned unchanged with a logged warning.
func FormatString(input string, target Format, cssVersion int) string {
	c, ok := Parse(input)
	if !ok {
		log.Warn().Str("value", input).Str("format", string(target)).Msg("Unparseable color passed through unformatted")
		return input
	}
	return c.Format(target, cssVersion)
}

// Format renders the color in the target notation. The cssVersion only
// affects hsl output: version 4 wraps the tuple in an hsl() call, version 3
// emits the bare tuple for substitution inside existing hsl() wrappers.
func (c Color) Format(target Format, cssVersion int) string {
	switch target {
	case FormatRGB:
		return c.formatRGB()
	case FormatHSL:
		return c.formatHSL(cssVersion)
	case FormatOKLCH:
		return c.formatOKLCH()
	default:
		return c.Hex()
	}
}

// Hex renders #rrggbb, or #rrggbbaa when alpha is not fully opaque.
func (c Color) Hex() string {
	r := channelByte(c.R)
	g := channelByte(c.G)
	b := channelByte(c.B)
	if c.A < 1 {
		return "#" + byteHex(r) + byteHex(g) + byteHex(b) + byteHex(channelByte(c.A))
	}
	return "#" + byteHex(r) + byteHex(g) + byteHex(b)
}

func (c Color) formatRGB() string {
	r := strconv.Itoa(channelByte(c.R))
	g := strconv.Itoa(channelByte(c.G))
	b := strconv.Itoa(channelByte(c.B))
	if c.A < 1 {
		return "rgba(" + r + ", " + g + ", " + b + ", " + formatNumber(c.A) + ")"
	}
	return "rgb(" + r + ", " + g + ", " + b + ")"
}

func (c Color) formatHSL(cssVersion int) string {
	h, s, l := c.HSL()
	tuple := formatNumber(h) + " " + formatNumber(s*100) + "% " + formatNumber(l*100) + "%"
	if cssVersion <= 3 {
		return tuple
	}
	if c.A < 1 {
		return "hsl(" + tuple + " / " + formatNumber(c.A) + ")"
	}
	return "hsl(" + tuple + ")"
}

func (c Color) formatOKLCH() string {
	l, chroma, h := c.OKLCH()
	body := formatNumber(l) + " " + formatNumber(chroma) + " " + formatNumber(h)
	if c.A < 1 {
		return "oklch(" + body + " / " + formatNumber(c.A) + ")"
	}
	return "oklch(" + body + ")"
}

// HSL returns hue in degrees [0,360) and saturation/lightness in [0,1].
func (c Color) HSL() (h, s, l float64) {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
}

// FromHSL builds a color from hue in degrees and saturation/lightness in [0,1].
func FromHSL(h, s, l, alpha float64) Color {
	cc := colorful.Hsl(h, s, l).Clamped()
	return Color{R: cc.R, G: cc.G, B: cc.B, A: alpha}
}

// Luminance computes WCAG relative luminance for input. The second return
// value is false when the input does not parse.
func Luminance(input string) (float64, bool) {
	c, ok := Parse(input)
	if !ok {
		return 0, false
	}
	return c.Luminance(), true
}

// Luminance is the WCAG relative luminance in [0,1].
func (c Color) Luminance() float64 {
	return 0.2126*wcagLinear(c.R) + 0.7152*wcagLinear(c.G) + 0.0722*wcagLinear(c.B)
}

// wcagLinear uses the 0.03928 threshold from the WCAG 2.x definition, which
// differs slightly from the sRGB spec's 0.04045.
func wcagLinear(value float64) float64 {
	if value <= 0.03928 {
		return value / 12.92
	}
	return math.Pow((value+0.055)/1.055, 2.4)
}

func parseHex(value string) (Color, bool) {
	if !hexRegex.MatchString(value) {
		return Color{}, false
	}
	hex := value[1:]
	switch len(hex) {
	case 3, 4:
		expanded := make([]byte, 0, 8)
		for i := 0; i < len(hex); i++ {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
	}

	parsed, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Color{}, false
	}

	alpha := 1.0
	if len(hex) == 8 {
		alpha = float64(parsed&0xFF) / 255
		parsed >>= 8
	}
	return Color{
		R: float64((parsed>>16)&0xFF) / 255,
		G: float64((parsed>>8)&0xFF) / 255,
		B: float64(parsed&0xFF) / 255,
		A: alpha,
	}, true
}

func parseRGBFunc(value string) (Color, bool) {
	match := rgbRegex.FindStringSubmatch(value)
	if match == nil {
		return Color{}, false
	}
	r, okR := parseChannel(match[1])
	g, okG := parseChannel(match[2])
	b, okB := parseChannel(match[3])
	a, okA := parseAlpha(match[4])
	if !okR || !okG || !okB || !okA {
		return Color{}, false
	}
	return Color{R: clamp(r, 0, 1), G: clamp(g, 0, 1), B: clamp(b, 0, 1), A: a}, true
}

func parseHSLFunc(value string) (Color, bool) {
	match := hslRegex.FindStringSubmatch(value)
	if match == nil {
		return Color{}, false
	}
	return hslFromParts(match[1], match[2], match[3], match[4])
}

func parseBareHSL(value string) (Color, bool) {
	match := bareHSLRegex.FindStringSubmatch(value)
	if match == nil {
		return Color{}, false
	}
	return hslFromParts(match[1], match[2], match[3], "")
}

func hslFromParts(hs, ss, ls, as string) (Color, bool) {
	h, errH := strconv.ParseFloat(hs, 64)
	s, errS := strconv.ParseFloat(ss, 64)
	l, errL := strconv.ParseFloat(ls, 64)
	a, okA := parseAlpha(as)
	if errH != nil || errS != nil || errL != nil || !okA {
		return Color{}, false
	}
	h = math.Mod(math.Mod(h, 360)+360, 360)
	return FromHSL(h, clamp(s/100, 0, 1), clamp(l/100, 0, 1), a), true
}

func parseOKLCHFunc(value string) (Color, bool) {
	match := oklchRegex.FindStringSubmatch(value)
	if match == nil {
		return Color{}, false
	}

	ls := match[1]
	scale := 1.0
	if strings.HasSuffix(ls, "%") {
		ls = strings.TrimSuffix(ls, "%")
		scale = 0.01
	}
	l, errL := strconv.ParseFloat(ls, 64)
	chroma, errC := strconv.ParseFloat(match[2], 64)
	h, errH := strconv.ParseFloat(match[3], 64)
	a, okA := parseAlpha(match[4])
	if errL != nil || errC != nil || errH != nil || !okA {
		return Color{}, false
	}
	return FromOKLCH(clamp(l*scale, 0, 1), chroma, h, a), true
}

func parseChannel(raw string) (float64, bool) {
	if strings.HasSuffix(raw, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
		return v / 100, err == nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	return v / 255, err == nil
}

func parseAlpha(raw string) (float64, bool) {
	if raw == "" {
		return 1, true
	}
	if strings.HasSuffix(raw, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
		return clamp(v/100, 0, 1), err == nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	return clamp(v, 0, 1), err == nil
}

// formatNumber renders integers without a decimal point and everything else
// rounded to 4 decimal places with trailing zeros stripped.
func formatNumber(value float64) string {
	rounded := math.Round(value*10000) / 10000
	if rounded == math.Trunc(rounded) {
		return strconv.FormatFloat(math.Trunc(rounded), 'f', 0, 64)
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

func channelByte(value float64) int {
	return int(math.Round(clamp(value, 0, 1) * 255))
}

func byteHex(value int) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[value>>4], digits[value&0xF]})
}

func clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, value))
}
