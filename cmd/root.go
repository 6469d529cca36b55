// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"ytlist/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagJSON      bool
	flagPick      bool
	flagNoHistory bool
	flagDebug     bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "ytlist <url>",
	Short: "Print video metadata from a YouTube playlist page",
	Long: `ytlist loads a YouTube playlist page and prints one line per video:

    url duration title

Example:

    ytlist https://www.youtube.com/playlist?list=ABCD
    https://www.youtube.com/watch?v=123 1:01:01 Text of the title1
    https://www.youtube.com/watch?v=456 2:02:02 Text of the title2

Both the legacy server-rendered playlist pages and the current pages
with an embedded JSON state blob are supported.`,
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: loadConfig,
	RunE:              listRun,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Output one JSON object per video")
	rootCmd.PersistentFlags().BoolVarP(&flagPick, "pick", "p", false, "Pick a video interactively and print its URL")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Do not record this fetch in the history")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if flagDebug {
		cfg.Debug = true
	}
	if flagNoHistory {
		cfg.History = false
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log.SetOutput(os.Stderr)
	if cfg.Debug {
		log.SetPrefix("[ytlist] ")
	} else {
		log.SetFlags(0)
	}

	return nil
}

// debugf logs a message if debug mode is enabled.
func debugf(format string, args ...interface{}) {
	if cfg != nil && cfg.Debug {
		log.Printf(format, args...)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ytlist " + Version)
	},
}
