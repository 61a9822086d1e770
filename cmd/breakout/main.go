// breakout is a Breakout clone for the terminal, a desktop window, or SSH.
//
// Usage:
//
//	breakout play [variant]     - Play in the terminal
//	breakout window [variant]   - Play in a desktop window
//	breakout serve              - Start SSH server for remote play
//	breakout scores [variant]   - Show high scores
//	breakout list               - List game variants
//	breakout config             - Print the default configuration
//
// Global flags:
//
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - easy, normal or hard
//	--db <path>          - Scores database (default: ~/.arcade/breakout.db)
//	--fps <rate>         - Terminal frame rate (default: 60)
//	--mute               - Disable sound
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

const defaultGameID = "breakout"

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagFPS        int
	flagMute       bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce the ball, clear the bricks",
	Long: `Breakout is the classic brick breaking game for your terminal,
a desktop window, or anyone who can reach you over SSH.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show game variants
  config   - Print the default configuration

Examples:
  breakout play
  breakout play breakout_hard
  breakout window --difficulty easy
  breakout serve --ssh :2222
  breakout scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Terminal frame rate (frames per second)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the program logger. Interactive commands own the
// terminal, so without --log-file their logs are discarded unless w is given.
func newLogger(w io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig checks the configuration before anything starts and
// hands the CLI choices to the game package.
func loadConfig() (config.BreakoutConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BreakoutConfig{}, err
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)

	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(preset)
	return cfg, nil
}

// variantArg returns the game ID from the optional positional argument.
func variantArg(args []string) (string, error) {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown game %q, run 'breakout list' to see variants", gameID)
	}
	return gameID, nil
}

// openSound opens the speaker unless sound is off. A speaker that cannot
// be opened leaves the game silent.
func openSound(cfg config.BreakoutAudio, logger *log.Logger) (core.SoundPlayer, func()) {
	if flagMute || !cfg.Enabled {
		logger.Debug("sound disabled")
		return core.NopSound{}, func() {}
	}

	p := audio.NewPlayer(cfg, logger)
	if err := p.Open(); err != nil {
		logger.Warn("playing without sound", "err", err)
		return core.NopSound{}, func() {}
	}
	return p, p.Close
}

// openStore opens the scores database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// playerName is recorded with local scores.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
