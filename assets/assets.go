// Package assets embeds the built-in preset stylesheets shipped with the
// engine. Preset files are ordinary :root/.dark CSS parsed with the same
// importer used for foreign themes.
package assets

import "embed"

//go:embed presets/*.css
var PresetsFS embed.FS

// PresetsDir is the embedded directory holding one CSS file per preset.
const PresetsDir = "presets"
