package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sitewise/themekit/internal/contrast"
	"github.com/sitewise/themekit/internal/presets"
	"github.com/sitewise/themekit/internal/store"
	"github.com/sitewise/themekit/internal/theme"
)

var (
	checkThemeID string
	checkFile    string
	checkPreset  string
	checkMode    string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the WCAG contrast report for a theme",
	Long: "Check every registered background/foreground token pair against the " +
		"WCAG thresholds. Exits non-zero when a critical pair fails AA.",
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkThemeID, "theme", "", "Stored theme ID to check")
	checkCmd.Flags().StringVar(&checkFile, "file", "", "CSS file to import and check")
	checkCmd.Flags().StringVar(&checkPreset, "preset", "", "Built-in preset ID to check")
	checkCmd.Flags().StringVar(&checkMode, "mode", "light", "Mode to check: light or dark")
}

func runCheck(cmd *cobra.Command, args []string) error {
	mode, err := parseMode(checkMode)
	if err != nil {
		return err
	}

	styles, err := checkStyles(cmd)
	if err != nil {
		return err
	}

	props := styles.Props(mode)
	results := contrast.CheckAll(props)
	summary := contrast.Summarize(results)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PAIR\tRATIO\tAA\tAAA\tCRITICAL")
	for _, result := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			result.Pair.Label,
			result.RatioText,
			passMark(result.PassesAA),
			passMark(result.PassesAAA),
			criticalMark(result.Pair.Critical),
		)
	}
	w.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d checked, %d passing, %d failing (%d critical)\n",
		summary.Total, summary.Passing, summary.Failing, summary.CriticalFailing)

	if !contrast.CanPublish(props) {
		return fmt.Errorf("theme cannot be published: %d critical contrast failure(s)", summary.CriticalFailing)
	}
	return nil
}

func checkStyles(cmd *cobra.Command) (theme.Styles, error) {
	switch {
	case checkThemeID != "":
		s, err := store.Open(cfg.Database.Filename)
		if err != nil {
			return theme.Styles{}, err
		}
		defer s.Close()
		record, err := s.GetTheme(cmd.Context(), checkThemeID)
		if err != nil {
			return theme.Styles{}, err
		}
		return record.Styles, nil
	case checkFile != "":
		return stylesFromFile(checkFile)
	case checkPreset != "":
		loaded, err := presets.Load()
		if err != nil {
			return theme.Styles{}, err
		}
		preset, ok := presets.ByID(loaded, checkPreset)
		if !ok {
			return theme.Styles{}, fmt.Errorf("unknown preset: %s", checkPreset)
		}
		return preset.Styles, nil
	}
	return theme.DefaultStyles(), nil
}

func parseMode(value string) (theme.Mode, error) {
	switch theme.Mode(value) {
	case theme.ModeLight:
		return theme.ModeLight, nil
	case theme.ModeDark:
		return theme.ModeDark, nil
	}
	return "", fmt.Errorf("mode must be light or dark")
}

func passMark(pass bool) string {
	if pass {
		return "pass"
	}
	return "FAIL"
}

func criticalMark(critical bool) string {
	if critical {
		return "yes"
	}
	return ""
}
