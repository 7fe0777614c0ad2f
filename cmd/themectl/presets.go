package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sitewise/themekit/internal/contrast"
	"github.com/sitewise/themekit/internal/presets"
	"github.com/sitewise/themekit/internal/theme"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in theme presets",
	RunE:  runPresets,
}

func runPresets(cmd *cobra.Command, args []string) error {
	loaded, err := presets.Load()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPUBLISHABLE")
	for _, preset := range loaded {
		styles := preset.Styles
		publishable := contrast.CanPublish(styles.Props(theme.ModeLight)) &&
			contrast.CanPublish(styles.Props(theme.ModeDark))
		fmt.Fprintf(w, "%s\t%s\t%s\n", preset.ID, preset.Name, passMark(publishable))
	}
	return w.Flush()
}
