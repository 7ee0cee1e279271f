// Root command for the patternbook CLI.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dukaforge/patternbook/internal/paths"
)

// version is reported by the version command and --version.
const version = "0.1.0"

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir  string
	flagJournalDir string
	flagJSON       bool
	flagDebug      bool
)

// Config values loaded by PersistentPreRunE so all subcommands can use
// them.
var (
	configJournalDir     string
	configJournalEnabled bool
)

var rootCmd = &cobra.Command{
	Use:     "patternbook",
	Short:   "Patternbook is a catalog of design pattern demonstrations",
	Version: version,
	Long: `Patternbook is a browsable catalog of classic design patterns, each
illustrated by a small self-contained trading example. Demos can be
listed, inspected, and executed; every execution is recorded in a
local run journal.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configJournalDir = cfg.GetString(cfgKeyJournalDir)
		configJournalEnabled = cfg.GetBool(cfgKeyJournal)

		log.Debug().
			Str("config_dir", configDir).
			Bool("journal", configJournalEnabled).
			Msg("configuration loaded")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagJournalDir, "journal-dir", "", "journal directory (default: alongside config)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
}

// setupLogging routes structured logs to stderr so command output on
// stdout stays machine-readable.
func setupLogging() {
	level := zerolog.InfoLevel
	if flagDebug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
		With().Timestamp().Logger()
}

// resolveConfigDir returns the configuration directory:
// --config-dir flag > PATTERNBOOK_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveJournalDir returns the journal directory:
// --journal-dir flag > config.yaml journal_dir > PATTERNBOOK_JOURNAL_DIR
// env > platform default.
func resolveJournalDir() (string, error) {
	return paths.ResolveJournalDir(flagJournalDir, configJournalDir)
}
