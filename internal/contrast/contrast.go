// Package contrast implements the WCAG contrast checks that gate theme
// publishing. A fixed registry of background/foreground token pairs is
// evaluated against the active token set; critical pairs block publishing
// when they fail AA.
package contrast

import (
	"math"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/sitewise/themekit/internal/color"
	"github.com/sitewise/themekit/internal/theme"
)

// WCAG 2.x thresholds.
const (
	RatioAANormal = 4.5
	RatioAALarge  = 3.0
	RatioAAA      = 7.0
)

// Pair names a background/foreground token combination to validate.
// Critical pairs gate publishing.
type Pair struct {
	Label      string
	Background string
	Foreground string
	Critical   bool
}

// Registry is the fixed set of token pairs checked on every run.
var Registry = []Pair{
	{Label: "Base", Background: "background", Foreground: "foreground", Critical: true},
	{Label: "Card", Background: "card", Foreground: "card-foreground", Critical: true},
	{Label: "Popover", Background: "popover", Foreground: "popover-foreground", Critical: true},
	{Label: "Primary", Background: "primary", Foreground: "primary-foreground", Critical: true},
	{Label: "Secondary", Background: "secondary", Foreground: "secondary-foreground", Critical: false},
	{Label: "Muted", Background: "muted", Foreground: "muted-foreground", Critical: false},
	{Label: "Accent", Background: "accent", Foreground: "accent-foreground", Critical: false},
	{Label: "Destructive", Background: "destructive", Foreground: "destructive-foreground", Critical: true},
	{Label: "Sidebar", Background: "sidebar", Foreground: "sidebar-foreground", Critical: false},
	{Label: "Sidebar Primary", Background: "sidebar-primary", Foreground: "sidebar-primary-foreground", Critical: false},
	{Label: "Sidebar Accent", Background: "sidebar-accent", Foreground: "sidebar-accent-foreground", Critical: false},
}

// Result is the outcome for one registry pair. Ratio is also carried
// pre-formatted to two decimals for UI display.
type Result struct {
	Pair      Pair
	Ratio     float64
	RatioText string
	PassesAA  bool
	// Large-text AA uses the 3.0 threshold.
	PassesAALarge bool
	PassesAAA     bool
}

// Summary aggregates a full check run.
type Summary struct {
	Total           int `json:"total"`
	Passing         int `json:"passing"`
	Failing         int `json:"failing"`
	CriticalFailing int `json:"criticalFailing"`
}

// Ratio computes the WCAG contrast ratio between two color values. The
// second return value is false when either side fails to parse.
func Ratio(a, b string) (float64, bool) {
	la, okA := color.Luminance(a)
	lb, okB := color.Luminance(b)
	if !okA || !okB {
		return 0, false
	}
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05), true
}

// Check evaluates one pair against the token set. Missing or unparseable
// tokens degrade to a failing 1.00 result rather than aborting the run.
func Check(props *theme.StyleProps, pair Pair) Result {
	background, _ := props.Value(pair.Background)
	foreground, _ := props.Value(pair.Foreground)

	ratio, ok := Ratio(background, foreground)
	if !ok {
		log.Warn().
			Str("pair", pair.Label).
			Str("background", background).
			Str("foreground", foreground).
			Msg("Contrast pair degraded to failing result")
		ratio = 1
	}

	return Result{
		Pair:          pair,
		Ratio:         ratio,
		RatioText:     formatRatio(ratio),
		PassesAA:      ok && ratio >= RatioAANormal,
		PassesAALarge: ok && ratio >= RatioAALarge,
		PassesAAA:     ok && ratio >= RatioAAA,
	}
}

// CheckAll runs the full registry against one mode's token set.
func CheckAll(props *theme.StyleProps) []Result {
	results := make([]Result, 0, len(Registry))
	for _, pair := range Registry {
		results = append(results, Check(props, pair))
	}
	return results
}

// CanPublish reports whether no critical pair falls below AA for normal
// text.
func CanPublish(props *theme.StyleProps) bool {
	for _, result := range CheckAll(props) {
		if result.Pair.Critical && !result.PassesAA {
			return false
		}
	}
	return true
}

// Summarize rolls results up for UI display and publish gating.
func Summarize(results []Result) Summary {
	summary := Summary{Total: len(results)}
	for _, result := range results {
		if result.PassesAA {
			summary.Passing++
			continue
		}
		summary.Failing++
		if result.Pair.Critical {
			summary.CriticalFailing++
		}
	}
	return summary
}

func formatRatio(ratio float64) string {
	return strconv.FormatFloat(math.Round(ratio*100)/100, 'f', 2, 64)
}
