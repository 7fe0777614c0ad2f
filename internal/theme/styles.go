// Package theme defines the design-token data model shared by the editor,
// the contrast validator, and the CSS generator.
package theme

// Mode selects which half of a Styles pair is active.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// StyleProps holds one mode's named design tokens. Every value is an opaque
// string; validity is format-dependent and checked where the value is used.
// Sidebar tokens and spacing are optional and may be empty in either mode.
type StyleProps struct {
	Background            string `json:"background"`
	Foreground            string `json:"foreground"`
	Card                  string `json:"card"`
	CardForeground        string `json:"card-foreground"`
	Popover               string `json:"popover"`
	PopoverForeground     string `json:"popover-foreground"`
	Primary               string `json:"primary"`
	PrimaryForeground     string `json:"primary-foreground"`
	Secondary             string `json:"secondary"`
	SecondaryForeground   string `json:"secondary-foreground"`
	Muted                 string `json:"muted"`
	MutedForeground       string `json:"muted-foreground"`
	Accent                string `json:"accent"`
	AccentForeground      string `json:"accent-foreground"`
	Destructive           string `json:"destructive"`
	DestructiveForeground string `json:"destructive-foreground"`
	Border                string `json:"border"`
	Input                 string `json:"input"`
	Ring                  string `json:"ring"`
	Chart1                string `json:"chart-1"`
	Chart2                string `json:"chart-2"`
	Chart3                string `json:"chart-3"`
	Chart4                string `json:"chart-4"`
	Chart5                string `json:"chart-5"`

	Sidebar                  string `json:"sidebar,omitempty"`
	SidebarForeground        string `json:"sidebar-foreground,omitempty"`
	SidebarPrimary           string `json:"sidebar-primary,omitempty"`
	SidebarPrimaryForeground string `json:"sidebar-primary-foreground,omitempty"`
	SidebarAccent            string `json:"sidebar-accent,omitempty"`
	SidebarAccentForeground  string `json:"sidebar-accent-foreground,omitempty"`
	SidebarBorder            string `json:"sidebar-border,omitempty"`
	SidebarRing              string `json:"sidebar-ring,omitempty"`

	FontSans  string `json:"font-sans"`
	FontSerif string `json:"font-serif"`
	FontMono  string `json:"font-mono"`
	Radius    string `json:"radius"`

	ShadowColor   string `json:"shadow-color"`
	ShadowOpacity string `json:"shadow-opacity"`
	ShadowBlur    string `json:"shadow-blur"`
	ShadowSpread  string `json:"shadow-spread"`
	ShadowOffsetX string `json:"shadow-offset-x"`
	ShadowOffsetY string `json:"shadow-offset-y"`

	LetterSpacing string `json:"letter-spacing"`
	Spacing       string `json:"spacing,omitempty"`
}

// Styles pairs the light and dark token maps. Common keys are stored in both
// maps but emitted only in the root CSS block.
type Styles struct {
	Light StyleProps `json:"light"`
	Dark  StyleProps `json:"dark"`
}

// Props returns the token map for the given mode. Unknown modes fall back to
// light.
func (s *Styles) Props(mode Mode) *StyleProps {
	if mode == ModeDark {
		return &s.Dark
	}
	return &s.Light
}

// Keys returns the full ordered token key registry.
func Keys() []string {
	keys := make([]string, len(orderedKeys))
	copy(keys, orderedKeys)
	return keys
}

// ColorKeys returns the ordered keys whose values run through the color
// adjustment and formatting pipeline.
func ColorKeys() []string {
	keys := make([]string, len(colorKeys))
	copy(keys, colorKeys)
	return keys
}

// IsKey reports whether key names a registered token.
func IsKey(key string) bool {
	_, ok := keyIndex[key]
	return ok
}

// IsColorKey reports whether key holds a color value.
func IsColorKey(key string) bool {
	return colorKeySet[key]
}

// IsCommonKey reports whether key is shared between modes: stored per mode
// but emitted only in the root block, with dark inheriting via the cascade.
func IsCommonKey(key string) bool {
	return commonKeySet[key]
}

// IsOptionalKey reports whether key may legitimately be empty in a mode.
func IsOptionalKey(key string) bool {
	return optionalKeySet[key]
}

// Value returns the token value for key, with ok=false for unknown keys.
func (p *StyleProps) Value(key string) (string, bool) {
	field, ok := p.fields()[key]
	if !ok {
		return "", false
	}
	return *field, true
}

// Set stores value under key and reports whether the key is registered.
func (p *StyleProps) Set(key, value string) bool {
	field, ok := p.fields()[key]
	if !ok {
		return false
	}
	*field = value
	return true
}

// Merge overlays every non-empty entry of overrides whose key is registered.
func (p *StyleProps) Merge(overrides map[string]string) {
	for key, value := range overrides {
		if value == "" {
			continue
		}
		p.Set(key, value)
	}
}

// orderedKeys fixes CSS emission order: colors, typography, geometry.
var orderedKeys = []string{
	"background", "foreground",
	"card", "card-foreground",
	"popover", "popover-foreground",
	"primary", "primary-foreground",
	"secondary", "secondary-foreground",
	"muted", "muted-foreground",
	"accent", "accent-foreground",
	"destructive", "destructive-foreground",
	"border", "input", "ring",
	"chart-1", "chart-2", "chart-3", "chart-4", "chart-5",
	"sidebar", "sidebar-foreground",
	"sidebar-primary", "sidebar-primary-foreground",
	"sidebar-accent", "sidebar-accent-foreground",
	"sidebar-border", "sidebar-ring",
	"font-sans", "font-serif", "font-mono",
	"radius",
	"shadow-color", "shadow-opacity", "shadow-blur", "shadow-spread",
	"shadow-offset-x", "shadow-offset-y",
	"letter-spacing", "spacing",
}

var colorKeys = []string{
	"background", "foreground",
	"card", "card-foreground",
	"popover", "popover-foreground",
	"primary", "primary-foreground",
	"secondary", "secondary-foreground",
	"muted", "muted-foreground",
	"accent", "accent-foreground",
	"destructive", "destructive-foreground",
	"border", "input", "ring",
	"chart-1", "chart-2", "chart-3", "chart-4", "chart-5",
	"sidebar", "sidebar-foreground",
	"sidebar-primary", "sidebar-primary-foreground",
	"sidebar-accent", "sidebar-accent-foreground",
	"sidebar-border", "sidebar-ring",
	"shadow-color",
}

var commonKeys = []string{
	"font-sans", "font-serif", "font-mono",
	"radius",
	"shadow-opacity", "shadow-blur", "shadow-spread",
	"shadow-offset-x", "shadow-offset-y",
	"letter-spacing", "spacing",
}

var optionalKeys = []string{
	"sidebar", "sidebar-foreground",
	"sidebar-primary", "sidebar-primary-foreground",
	"sidebar-accent", "sidebar-accent-foreground",
	"sidebar-border", "sidebar-ring",
	"spacing",
}

var (
	keyIndex       = make(map[string]int, len(orderedKeys))
	colorKeySet    = make(map[string]bool, len(colorKeys))
	commonKeySet   = make(map[string]bool, len(commonKeys))
	optionalKeySet = make(map[string]bool, len(optionalKeys))
)

func init() {
	for i, key := range orderedKeys {
		keyIndex[key] = i
	}
	for _, key := range colorKeys {
		colorKeySet[key] = true
	}
	for _, key := range commonKeys {
		commonKeySet[key] = true
	}
	for _, key := range optionalKeys {
		optionalKeySet[key] = true
	}
}

func (p *StyleProps) fields() map[string]*string {
	return map[string]*string{
		"background":                 &p.Background,
		"foreground":                 &p.Foreground,
		"card":                       &p.Card,
		"card-foreground":            &p.CardForeground,
		"popover":                    &p.Popover,
		"popover-foreground":         &p.PopoverForeground,
		"primary":                    &p.Primary,
		"primary-foreground":         &p.PrimaryForeground,
		"secondary":                  &p.Secondary,
		"secondary-foreground":       &p.SecondaryForeground,
		"muted":                      &p.Muted,
		"muted-foreground":           &p.MutedForeground,
		"accent":                     &p.Accent,
		"accent-foreground":          &p.AccentForeground,
		"destructive":                &p.Destructive,
		"destructive-foreground":     &p.DestructiveForeground,
		"border":                     &p.Border,
		"input":                      &p.Input,
		"ring":                       &p.Ring,
		"chart-1":                    &p.Chart1,
		"chart-2":                    &p.Chart2,
		"chart-3":                    &p.Chart3,
		"chart-4":                    &p.Chart4,
		"chart-5":                    &p.Chart5,
		"sidebar":                    &p.Sidebar,
		"sidebar-foreground":         &p.SidebarForeground,
		"sidebar-primary":            &p.SidebarPrimary,
		"sidebar-primary-foreground": &p.SidebarPrimaryForeground,
		"sidebar-accent":             &p.SidebarAccent,
		"sidebar-accent-foreground":  &p.SidebarAccentForeground,
		"sidebar-border":             &p.SidebarBorder,
		"sidebar-ring":               &p.SidebarRing,
		"font-sans":                  &p.FontSans,
		"font-serif":                 &p.FontSerif,
		"font-mono":                  &p.FontMono,
		"radius":                     &p.Radius,
		"shadow-color":               &p.ShadowColor,
		"shadow-opacity":             &p.ShadowOpacity,
		"shadow-blur":                &p.ShadowBlur,
		"shadow-spread":              &p.ShadowSpread,
		"shadow-offset-x":            &p.ShadowOffsetX,
		"shadow-offset-y":            &p.ShadowOffsetY,
		"letter-spacing":             &p.LetterSpacing,
		"spacing":                    &p.Spacing,
	}
}
