package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/greedy-snake/internal/audio"
	"github.com/vovakirdan/greedy-snake/internal/config"
	"github.com/vovakirdan/greedy-snake/internal/core"
	"github.com/vovakirdan/greedy-snake/internal/platform/tui"
	"github.com/vovakirdan/greedy-snake/internal/registry"
)

var (
	flagMute   bool
	flagRecord bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode directly",
	Long: `Start playing the given mode, or open the mode menu when no mode is
given.

Modes:
  classic  - The snake wraps around at the edges
  walled   - The edges are walls and cost a life

Controls:
  Arrows/WASD/hjkl  - Steer
  P                 - Pause
  R                 - Restart (after game over)
  Esc               - Back
  Q/Ctrl+C          - Quit

Examples:
  snake play
  snake play walled
  snake play classic --difficulty easy --mute
  snake play --record`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects and music")
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Record every session to ~/.greedy-snake/recordings")
}

func runPlay(_ *cobra.Command, args []string) {
	if len(args) == 1 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available modes.")
		os.Exit(1)
	}
	if err := play(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := play(nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one mode, or the menu when args is empty.
func play(args []string) error {
	snakeCfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog := openLogger()
	defer closeLog()

	scoreStore, history := openStores(logger)
	if history != nil {
		defer history.Close()
	}

	player := audio.New(audio.Options{
		Enabled:     snakeCfg.Audio.Enabled && !flagMute,
		SFXVolume:   snakeCfg.Audio.SFXVolume,
		MusicVolume: snakeCfg.Audio.MusicVolume,
	}, logger)
	defer player.Close()
	player.StartMusic()

	deps := tui.Deps{
		Scores:  scoreStore,
		History: history,
		Audio:   player,
		Logger:  logger,
	}
	if flagRecord {
		deps.RecordDir = recordingsDir()
	}

	cfg := runtimeConfig()

	if len(args) == 0 {
		err = tui.RunSession(deps, cfg)
	} else {
		game, createErr := registry.Create(args[0])
		if createErr != nil {
			return fmt.Errorf("creating game: %w", createErr)
		}
		err = tui.Run(game, deps, cfg)
	}
	if err != nil {
		logger.Error("game exited with error", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

func recordingsDir() string {
	return filepath.Join(config.DataDir(), "recordings")
}
