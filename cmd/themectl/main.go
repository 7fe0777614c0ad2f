// cmd/themectl/main.go
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sitewise/themekit/internal/config"
)

var (
	configPath string
	dbPath     string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "themectl",
	Short: "themectl - design-token theme toolbox",
	Long: "Themectl renders stored design-token themes to CSS, validates them " +
		"against WCAG contrast thresholds, and imports externally authored stylesheets.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentPreRunE = setup
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a themekit config file (optional)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the theme database (overrides config)")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(presetsCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Failed to load .env file")
	}

	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	} else {
		cfg = config.Default()
	}

	if cmd.Flags().Changed("db") || rootCmd.PersistentFlags().Changed("db") {
		cfg.Database.Filename = dbPath
	}

	setupLogger(cfg.App.Environment)
	return nil
}

func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
