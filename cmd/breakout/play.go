package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start Breakout in the terminal.

Controls:
  A/D, Left/Right  - Move the paddle
  W/S, Up/Down     - Move the menu cursor
  Enter/Space      - Select
  B/Esc            - Back
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Variants:
  breakout       - Uses --difficulty (normal by default)
  breakout_easy  - Five lives, slower ball
  breakout_hard  - One life, faster ball

Examples:
  breakout play
  breakout play breakout_hard
  breakout play --difficulty easy --mute
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
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

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}

	sound, closeSound := openSound(cfg.Audio, logger)
	defer closeSound()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "game", gameID, "size", fmt.Sprintf("%dx%d", width, height))
	return tui.Run(game, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}, tui.Options{
		Store:  store,
		Sound:  sound,
		Logger: logger,
		Player: playerName(),
	})
}
