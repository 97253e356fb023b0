package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"noteremote/internal/config"
	"noteremote/internal/logging"
	"noteremote/internal/output"
	"noteremote/internal/version"
)

var (
	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "noteremote",
	Short: "Remote-control OneNote's navigation pane",
	Long: "A CLI that connects to a running OneNote window, re-finds it across\n" +
		"restarts via a fuzzy window signature, and keeps the selected notebook\n" +
		"row centered in the navigation pane.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json, table")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("log-level", "", "Override configured log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress console log output")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		level := cfg.Logging.Level
		if override, _ := rootCmd.PersistentFlags().GetString("log-level"); override != "" {
			level = override
		}
		quiet, _ := rootCmd.PersistentFlags().GetBool("quiet")

		log = logging.NewLogger(logging.Config{
			Level:   level,
			LogFile: cfg.Paths.LogFile,
			NoColor: cfg.Logging.Color == "never",
			Quiet:   quiet,
		})

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		case "table":
			output.OutputFormat = output.FormatTable
		default:
			return fmt.Errorf("unsupported format: %s (use yaml, json, or table)", format)
		}
		if pretty, _ := rootCmd.PersistentFlags().GetBool("pretty"); pretty {
			output.PrettyOutput = true
		}
		return nil
	}
}
