package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/window"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Start Breakout in a desktop window. The arena is drawn in pixels and
the paddle follows the real key state.

Examples:
  breakout window
  breakout window breakout_easy --scale 1.5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(nil, "breakout")
	if err != nil {
		return err
	}
	defer closeLog()

	created, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}
	game, ok := created.(*breakout.Game)
	if !ok {
		return fmt.Errorf("game %q cannot run in a window", gameID)
	}

	sound, closeSound := openSound(cfg.Audio, logger)
	defer closeSound()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting window", "game", gameID)
	return window.Run(game, window.Options{
		Store:  store,
		Sound:  sound,
		Logger: logger,
		Player: playerName(),
		Scale:  flagScale,
	})
}
