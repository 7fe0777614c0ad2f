package cssgen

import (
	"regexp"
	"strings"

	"github.com/sitewise/themekit/internal/theme"
)

// Reverse operation: pull --key: value declarations out of an arbitrary CSS
// string so an externally authored theme can be imported. Only registered
// token keys are kept; everything else in the stylesheet is ignored.

var (
	commentRegex     = regexp.MustCompile(`(?s)/\*.*?\*/`)
	declarationRegex = regexp.MustCompile(`--([A-Za-z][A-Za-z0-9-]*)\s*:\s*([^;{}]+);?`)
)

// ParseCSS extracts partial light and dark token maps from css. Blocks whose
// selector targets dark mode (.dark, [data-theme="dark"], media-query
// prefers-color-scheme bodies are not unwrapped) feed the dark map; :root,
// .light, html, and :host blocks feed the light map.
func ParseCSS(css string) (light, dark map[string]string) {
	light = make(map[string]string)
	dark = make(map[string]string)

	content := commentRegex.ReplaceAllString(css, "")
	pos := 0
	for pos < len(content) {
		open := strings.IndexByte(content[pos:], '{')
		if open == -1 {
			break
		}
		open += pos
		end := blockEnd(content, open)

		selector := strings.TrimSpace(content[selectorStart(content, pos, open):open])
		body := content[open+1 : end-1]

		switch classifySelector(selector) {
		case theme.ModeDark:
			collectDeclarations(body, dark)
		case theme.ModeLight:
			collectDeclarations(body, light)
		}
		pos = end
	}
	return light, dark
}

// selectorStart backs up from the opening brace to the end of the previous
// block (or the scan start) so nested/preceding rules don't bleed into the
// selector text.
func selectorStart(content string, from, open int) int {
	start := from
	if idx := strings.LastIndexAny(content[from:open], "}{;"); idx != -1 {
		start = from + idx + 1
	}
	return start
}

// blockEnd returns the index just past the matching closing brace.
func blockEnd(content string, open int) int {
	depth := 1
	pos := open + 1
	for pos < len(content) && depth > 0 {
		switch content[pos] {
		case '{':
			depth++
		case '}':
			depth--
		}
		pos++
	}
	return pos
}

func classifySelector(selector string) theme.Mode {
	lowered := strings.ToLower(selector)
	switch {
	case strings.Contains(lowered, ".dark"),
		strings.Contains(lowered, `[data-theme="dark"]`),
		strings.Contains(lowered, `[data-mode="dark"]`):
		return theme.ModeDark
	case strings.Contains(lowered, ":root"),
		strings.Contains(lowered, ".light"),
		strings.Contains(lowered, ":host"),
		lowered == "html", strings.HasPrefix(lowered, "html"):
		return theme.ModeLight
	}
	return ""
}

func collectDeclarations(body string, out map[string]string) {
	for _, match := range declarationRegex.FindAllStringSubmatch(body, -1) {
		key := match[1]
		if !theme.IsKey(key) {
			continue
		}
		value := strings.TrimSpace(match[2])
		if value == "" {
			continue
		}
		out[key] = value
	}
}
