// Package presets loads the built-in theme presets embedded under
// assets/presets. Each preset is a complete two-mode ThemeStyles bundle
// that can be applied wholesale in the editor.
package presets

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/sitewise/themekit/assets"
	"github.com/sitewise/themekit/internal/color"
	"github.com/sitewise/themekit/internal/cssgen"
	"github.com/sitewise/themekit/internal/theme"
)

// Preset is a named, complete styles bundle. ID is the preset file's base
// name and is what the editor records as preset attribution.
type Preset struct {
	ID     string
	Name   string
	Styles theme.Styles
}

// Load parses every embedded preset stylesheet. Preset overrides are
// overlaid onto the built-in defaults, so a preset only has to declare the
// tokens it changes. Invalid files and duplicate names are startup errors.
func Load() ([]Preset, error) {
	entries, err := fs.ReadDir(assets.PresetsFS, assets.PresetsDir)
	if err != nil {
		return nil, fmt.Errorf("read embedded presets: %w", err)
	}

	presets := make([]Preset, 0, len(entries))
	seenNames := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".css") {
			continue
		}

		data, err := fs.ReadFile(assets.PresetsFS, path.Join(assets.PresetsDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read preset %s: %w", entry.Name(), err)
		}

		preset, err := parsePreset(entry.Name(), string(data))
		if err != nil {
			return nil, fmt.Errorf("invalid preset %s: %w", entry.Name(), err)
		}

		if previous, ok := seenNames[preset.Name]; ok {
			return nil, fmt.Errorf("duplicate preset name %q in %s and %s", preset.Name, previous, entry.Name())
		}
		seenNames[preset.Name] = entry.Name()
		presets = append(presets, preset)
	}

	sort.Slice(presets, func(i, j int) bool { return presets[i].Name < presets[j].Name })
	return presets, nil
}

// ByID returns the preset with the given ID from a loaded set.
func ByID(presets []Preset, id string) (Preset, bool) {
	for _, preset := range presets {
		if preset.ID == id {
			return preset, true
		}
	}
	return Preset{}, false
}

func parsePreset(filename, css string) (Preset, error) {
	name := parseNameComment(css)
	if name == "" {
		return Preset{}, fmt.Errorf("missing Preset: name comment")
	}

	light, dark := cssgen.ParseCSS(css)
	if len(light) == 0 && len(dark) == 0 {
		return Preset{}, fmt.Errorf("no token declarations found")
	}

	styles := theme.DefaultStyles()
	styles.Light.Merge(light)
	styles.Dark.Merge(dark)

	if err := validateColors(&styles.Light); err != nil {
		return Preset{}, fmt.Errorf("light mode: %w", err)
	}
	if err := validateColors(&styles.Dark); err != nil {
		return Preset{}, fmt.Errorf("dark mode: %w", err)
	}

	return Preset{
		ID:     strings.TrimSuffix(filename, ".css"),
		Name:   name,
		Styles: styles,
	}, nil
}

// parseNameComment reads the display name from the leading comment block:
//
//	/*
//	Preset: Ocean
//	*/
func parseNameComment(css string) string {
	start := strings.Index(css, "/*")
	if start == -1 {
		return ""
	}
	end := strings.Index(css[start:], "*/")
	if end == -1 {
		return ""
	}
	for _, line := range strings.Split(css[start+2:start+end], "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Preset:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "Preset:"))
		}
	}
	return ""
}

func validateColors(props *theme.StyleProps) error {
	for _, key := range theme.ColorKeys() {
		value, _ := props.Value(key)
		if value == "" {
			if theme.IsOptionalKey(key) {
				continue
			}
			return fmt.Errorf("%s is required", key)
		}
		if !color.IsValid(value) {
			return fmt.Errorf("%s is not a parseable color: %q", key, value)
		}
	}
	return nil
}
