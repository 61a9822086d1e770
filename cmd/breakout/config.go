package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.arcade/configs/breakout.yaml or pass it with --config to customize.

With --check, loads the configuration the other commands would use and
reports whether it is valid.

Examples:
  breakout config > ~/.arcade/configs/breakout.yaml
  breakout config --check --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagCheck bool

func init() {
	configCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate the active configuration")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagCheck {
		_, err := os.Stdout.Write(config.GetDefaultYAML(defaultGameID))
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cols, rows := cfg.BrickGrid()
	fmt.Printf("Configuration OK: %d lives, %dx%d bricks, %d Hz\n",
		cfg.Gameplay.Lives, cols, rows, cfg.Gameplay.TickHz)
	return nil
}
