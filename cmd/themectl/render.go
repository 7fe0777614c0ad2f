package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sitewise/themekit/internal/color"
	"github.com/sitewise/themekit/internal/cssgen"
	"github.com/sitewise/themekit/internal/presets"
	"github.com/sitewise/themekit/internal/store"
	"github.com/sitewise/themekit/internal/theme"
)

var (
	renderThemeID  string
	renderFile     string
	renderPreset   string
	renderFormat   string
	renderVersion  int
	renderMinify   bool
	renderOut      string
	renderHue      float64
	renderSat      float64
	renderLight    float64
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a theme to CSS",
	Long: "Render a stored theme, an imported stylesheet, or a built-in preset " +
		"into :root/.dark CSS custom properties.",
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderThemeID, "theme", "", "Stored theme ID to render")
	renderCmd.Flags().StringVar(&renderFile, "file", "", "CSS file to import and re-render")
	renderCmd.Flags().StringVar(&renderPreset, "preset", "", "Built-in preset ID to render")
	renderCmd.Flags().StringVar(&renderFormat, "format", "", "Color output format: hex, rgb, hsl, oklch")
	renderCmd.Flags().IntVar(&renderVersion, "css-version", 0, "CSS major version for hsl output (3 or 4)")
	renderCmd.Flags().BoolVar(&renderMinify, "minify", false, "Emit minified CSS")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file (default: stdout)")
	renderCmd.Flags().Float64Var(&renderHue, "hue-shift", 0, "Global hue shift in degrees [-180,180]")
	renderCmd.Flags().Float64Var(&renderSat, "saturation", 1, "Global saturation scale [0,2]")
	renderCmd.Flags().Float64Var(&renderLight, "lightness", 1, "Global lightness scale [0.2,2]")
}

func runRender(cmd *cobra.Command, args []string) error {
	styles, adjustments, err := resolveTheme(cmd)
	if err != nil {
		return err
	}

	opts, err := outputOptions(cmd, adjustments)
	if err != nil {
		return err
	}

	css := cssgen.GenerateCSS(styles, opts)
	if !strings.HasSuffix(css, "\n") {
		css += "\n"
	}
	if renderOut == "" {
		fmt.Fprint(cmd.OutOrStdout(), css)
		return nil
	}
	if err := os.WriteFile(renderOut, []byte(css), 0644); err != nil {
		return fmt.Errorf("write %s: %w", renderOut, err)
	}
	return nil
}

// resolveTheme picks the styles source: stored theme, imported CSS file,
// built-in preset, or the engine defaults.
func resolveTheme(cmd *cobra.Command) (theme.Styles, color.Adjustments, error) {
	adjustments := color.IdentityAdjustments()

	switch {
	case renderThemeID != "":
		s, err := store.Open(cfg.Database.Filename)
		if err != nil {
			return theme.Styles{}, adjustments, err
		}
		defer s.Close()

		record, err := s.GetTheme(cmd.Context(), renderThemeID)
		if err != nil {
			return theme.Styles{}, adjustments, err
		}
		return record.Styles, record.Adjustments, nil

	case renderFile != "":
		styles, err := stylesFromFile(renderFile)
		return styles, adjustments, err

	case renderPreset != "":
		loaded, err := presets.Load()
		if err != nil {
			return theme.Styles{}, adjustments, err
		}
		preset, ok := presets.ByID(loaded, renderPreset)
		if !ok {
			return theme.Styles{}, adjustments, fmt.Errorf("unknown preset: %s", renderPreset)
		}
		return preset.Styles, adjustments, nil
	}

	return theme.DefaultStyles(), adjustments, nil
}

// stylesFromFile overlays the declarations found in a foreign stylesheet
// onto the built-in defaults.
func stylesFromFile(path string) (theme.Styles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return theme.Styles{}, fmt.Errorf("read %s: %w", path, err)
	}
	light, dark := cssgen.ParseCSS(string(data))
	if len(light) == 0 && len(dark) == 0 {
		return theme.Styles{}, fmt.Errorf("%s: no theme token declarations found", path)
	}

	styles := theme.DefaultStyles()
	styles.Light.Merge(light)
	styles.Dark.Merge(dark)
	return styles, nil
}

func outputOptions(cmd *cobra.Command, adjustments color.Adjustments) (cssgen.Options, error) {
	opts := cssgen.DefaultOptions()

	formatName := cfg.Output.ColorFormat
	if cmd.Flags().Changed("format") {
		formatName = renderFormat
	}
	format, ok := color.ParseFormat(formatName)
	if !ok {
		return cssgen.Options{}, fmt.Errorf("unsupported color format: %s", formatName)
	}
	opts.ColorFormat = format

	opts.CSSVersion = cfg.Output.CSSVersion
	if cmd.Flags().Changed("css-version") {
		if renderVersion != 3 && renderVersion != 4 {
			return cssgen.Options{}, fmt.Errorf("css-version must be 3 or 4")
		}
		opts.CSSVersion = renderVersion
	}

	opts.Minify = renderMinify
	opts.Adjustments = adjustments
	if cmd.Flags().Changed("hue-shift") || cmd.Flags().Changed("saturation") || cmd.Flags().Changed("lightness") {
		opts.Adjustments = color.Adjustments{
			HueShift:        renderHue,
			SaturationScale: renderSat,
			LightnessScale:  renderLight,
		}.Clamped()
	}
	return opts, nil
}
