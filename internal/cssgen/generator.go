// Package cssgen serializes token sets into CSS custom properties and
// parses them back out of externally authored stylesheets.
package cssgen

import (
	"strings"

	"github.com/sitewise/themekit/internal/color"
	"github.com/sitewise/themekit/internal/theme"
)

// Options controls value formatting and output shape.
type Options struct {
	ColorFormat color.Format
	CSSVersion  int
	Adjustments color.Adjustments
	Minify      bool
}

// DefaultOptions emits canonical oklch in modern (version 4) syntax.
func DefaultOptions() Options {
	return Options{
		ColorFormat: color.FormatOKLCH,
		CSSVersion:  4,
		Adjustments: color.IdentityAdjustments(),
	}
}

func (o Options) normalized() Options {
	if o.ColorFormat == "" {
		o.ColorFormat = color.FormatOKLCH
	}
	if o.CSSVersion == 0 {
		o.CSSVersion = 4
	}
	return o
}

// GenerateCSS renders the full two-block stylesheet: a :root block with
// every token and a .dark block with the dark overrides. Common keys are
// emitted only in :root; dark-mode consumers inherit them via the cascade.
func GenerateCSS(styles theme.Styles, opts Options) string {
	opts = opts.normalized()

	var b strings.Builder
	writeBlock(&b, ":root", &styles.Light, opts, false)
	if opts.Minify {
		b.WriteString("}")
	} else {
		b.WriteString("}\n\n")
	}
	writeBlock(&b, ".dark", &styles.Dark, opts, true)
	b.WriteString("}")
	if !opts.Minify {
		b.WriteString("\n")
	}
	return b.String()
}

// InlineStyles renders one mode's tokens as a flat custom-property map for
// inline style injection into a live preview surface. The per-value
// transform pipeline matches GenerateCSS; only the block wrapping differs.
func InlineStyles(styles theme.Styles, mode theme.Mode, opts Options) map[string]string {
	opts = opts.normalized()
	props := styles.Props(mode)

	out := make(map[string]string, len(theme.Keys()))
	for _, key := range theme.Keys() {
		value, _ := props.Value(key)
		if value == "" {
			continue
		}
		out["--"+key] = transformValue(key, value, opts)
	}
	return out
}

func writeBlock(b *strings.Builder, selector string, props *theme.StyleProps, opts Options, skipCommon bool) {
	if opts.Minify {
		b.WriteString(selector + "{")
	} else {
		b.WriteString(selector + " {\n")
	}
	for _, key := range theme.Keys() {
		if skipCommon && theme.IsCommonKey(key) {
			continue
		}
		value, _ := props.Value(key)
		if value == "" {
			continue
		}
		value = transformValue(key, value, opts)
		if opts.Minify {
			b.WriteString("--" + key + ":" + value + ";")
		} else {
			b.WriteString("  --" + key + ": " + value + ";\n")
		}
	}
}

// transformValue runs color tokens through the adjustment transform and the
// requested output format; non-color tokens pass through untouched.
func transformValue(key, value string, opts Options) string {
	if !theme.IsColorKey(key) {
		return value
	}
	if !opts.Adjustments.IsIdentity() {
		value = color.Adjust(value, opts.Adjustments)
	}
	return color.FormatString(value, opts.ColorFormat, opts.CSSVersion)
}
