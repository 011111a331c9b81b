// dino is an endless runner for the terminal.
//
// Usage:
//
//	dino play        - Play interactively
//	dino simulate    - Run the simulation headless and print the final state
//	dino config      - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.dino/config.yaml)
//	--seed <value>      - RNG seed for reproducible runs
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Log destination, "-" for stderr
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dino",
	Short: "Dino - an endless runner in your terminal",
	Long: `Dino is a side-scrolling endless runner. Jump over the desserts,
survive as long as you can, beat your best score.

Available commands:
  play      - Play interactively
  simulate  - Run the simulation headless
  config    - Print the effective configuration

Examples:
  dino play
  dino play --seed 42
  dino simulate --start --ticks 500 --jump-every 30
  dino config > ~/.dino/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value or time based)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", `Log file path ("-" for stderr)`)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies the global flag overrides.
func loadConfig() (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	return cfg, source, nil
}

// setup loads the configuration and opens the logger it describes.
// source names the config file, or "embedded" when none was found.
func setup() (cfg config.Config, source string, logger *log.Logger, closeLog func() error, err error) {
	cfg, source, err = loadConfig()
	if err != nil {
		return cfg, source, nil, nil, err
	}

	logger, closeLog, err = logging.New(cfg.Log)
	if err != nil {
		return cfg, source, nil, nil, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, source, logger, closeLog, nil
}
