package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sitewise/themekit/internal/color"
	"github.com/sitewise/themekit/internal/store"
)

var importName string

var importCmd = &cobra.Command{
	Use:   "import <css-file>",
	Short: "Import an externally authored stylesheet as a stored theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&importName, "name", "", "Theme name (default: file base name)")
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	styles, err := stylesFromFile(path)
	if err != nil {
		return err
	}

	name := importName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	s, err := store.Open(cfg.Database.Filename)
	if err != nil {
		return err
	}
	defer s.Close()

	record, err := s.SaveTheme(cmd.Context(), store.Record{
		Name:        name,
		Styles:      styles,
		Adjustments: color.IdentityAdjustments(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %q as theme %s\n", name, record.ID)
	return nil
}
