package theme

// Built-in neutral palette, expressed in the engine's canonical oklch form.
// These are the values a fresh editing session starts from and the base that
// presets overlay.

const (
	defaultFontSans  = "ui-sans-serif, system-ui, sans-serif"
	defaultFontSerif = "ui-serif, Georgia, serif"
	defaultFontMono  = "ui-monospace, SFMono-Regular, monospace"
	defaultRadius    = "0.625rem"
)

// DefaultStyles returns the built-in two-mode token set.
func DefaultStyles() Styles {
	return Styles{
		Light: StyleProps{
			Background:            "oklch(1 0 0)",
			Foreground:            "oklch(0.145 0 0)",
			Card:                  "oklch(1 0 0)",
			CardForeground:        "oklch(0.145 0 0)",
			Popover:               "oklch(1 0 0)",
			PopoverForeground:     "oklch(0.145 0 0)",
			Primary:               "oklch(0.205 0 0)",
			PrimaryForeground:     "oklch(0.985 0 0)",
			Secondary:             "oklch(0.97 0 0)",
			SecondaryForeground:   "oklch(0.205 0 0)",
			Muted:                 "oklch(0.97 0 0)",
			MutedForeground:       "oklch(0.556 0 0)",
			Accent:                "oklch(0.97 0 0)",
			AccentForeground:      "oklch(0.205 0 0)",
			Destructive:           "oklch(0.577 0.245 27.325)",
			DestructiveForeground: "oklch(1 0 0)",
			Border:                "oklch(0.922 0 0)",
			Input:                 "oklch(0.922 0 0)",
			Ring:                  "oklch(0.708 0 0)",
			Chart1:                "oklch(0.646 0.222 41.116)",
			Chart2:                "oklch(0.6 0.118 184.704)",
			Chart3:                "oklch(0.398 0.07 227.392)",
			Chart4:                "oklch(0.828 0.189 84.429)",
			Chart5:                "oklch(0.769 0.188 70.08)",

			Sidebar:                  "oklch(0.985 0 0)",
			SidebarForeground:        "oklch(0.145 0 0)",
			SidebarPrimary:           "oklch(0.205 0 0)",
			SidebarPrimaryForeground: "oklch(0.985 0 0)",
			SidebarAccent:            "oklch(0.97 0 0)",
			SidebarAccentForeground:  "oklch(0.205 0 0)",
			SidebarBorder:            "oklch(0.922 0 0)",
			SidebarRing:              "oklch(0.708 0 0)",

			FontSans:  defaultFontSans,
			FontSerif: defaultFontSerif,
			FontMono:  defaultFontMono,
			Radius:    defaultRadius,

			ShadowColor:   "oklch(0 0 0)",
			ShadowOpacity: "0.1",
			ShadowBlur:    "3px",
			ShadowSpread:  "0px",
			ShadowOffsetX: "0px",
			ShadowOffsetY: "1px",

			LetterSpacing: "0em",
			Spacing:       "0.25rem",
		},
		Dark: StyleProps{
			Background:            "oklch(0.145 0 0)",
			Foreground:            "oklch(0.985 0 0)",
			Card:                  "oklch(0.205 0 0)",
			CardForeground:        "oklch(0.985 0 0)",
			Popover:               "oklch(0.205 0 0)",
			PopoverForeground:     "oklch(0.985 0 0)",
			Primary:               "oklch(0.922 0 0)",
			PrimaryForeground:     "oklch(0.205 0 0)",
			Secondary:             "oklch(0.269 0 0)",
			SecondaryForeground:   "oklch(0.985 0 0)",
			Muted:                 "oklch(0.269 0 0)",
			MutedForeground:       "oklch(0.708 0 0)",
			Accent:                "oklch(0.269 0 0)",
			AccentForeground:      "oklch(0.985 0 0)",
			Destructive:           "oklch(0.704 0.191 22.216)",
			DestructiveForeground: "oklch(0.145 0 0)",
			Border:                "oklch(0.275 0 0)",
			Input:                 "oklch(0.325 0 0)",
			Ring:                  "oklch(0.556 0 0)",
			Chart1:                "oklch(0.488 0.243 264.376)",
			Chart2:                "oklch(0.696 0.17 162.48)",
			Chart3:                "oklch(0.769 0.188 70.08)",
			Chart4:                "oklch(0.627 0.265 303.9)",
			Chart5:                "oklch(0.645 0.246 16.439)",

			Sidebar:                  "oklch(0.205 0 0)",
			SidebarForeground:        "oklch(0.985 0 0)",
			SidebarPrimary:           "oklch(0.488 0.243 264.376)",
			SidebarPrimaryForeground: "oklch(0.985 0 0)",
			SidebarAccent:            "oklch(0.269 0 0)",
			SidebarAccentForeground:  "oklch(0.985 0 0)",
			SidebarBorder:            "oklch(0.275 0 0)",
			SidebarRing:              "oklch(0.439 0 0)",

			// Common keys hold duplicate values in the dark map; the
			// generator emits them once, in the root block.
			FontSans:  defaultFontSans,
			FontSerif: defaultFontSerif,
			FontMono:  defaultFontMono,
			Radius:    defaultRadius,

			ShadowColor:   "oklch(0 0 0)",
			ShadowOpacity: "0.1",
			ShadowBlur:    "3px",
			ShadowSpread:  "0px",
			ShadowOffsetX: "0px",
			ShadowOffsetY: "1px",

			LetterSpacing: "0em",
			Spacing:       "0.25rem",
		},
	}
}
