// snake is a terminal arcade snake game.
//
// Usage:
//
//	snake                    - Open the mode menu
//	snake play [mode]        - Play a mode directly (classic, walled)
//	snake list               - List available modes
//	snake scores [mode]      - Show high scores and session history
//	snake replay <file|id>   - Play back a recorded session
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Session history database (default: ~/.greedy-snake/scores.db)
//	--scores-file <path>   - Top 3 score file (default: ~/.greedy-snake/high_scores.json)
//	--config <path>        - Custom snake.yaml
//	--difficulty <preset>  - easy, normal or hard
//	--log-file <path>      - Log file (default: ~/.greedy-snake/snake.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/greedy-snake/internal/config"
	"github.com/vovakirdan/greedy-snake/internal/games/snake"
	"github.com/vovakirdan/greedy-snake/internal/scores"
	"github.com/vovakirdan/greedy-snake/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagScoresFile string
	flagLogFile    string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Greedy Snake - arcade snake in your terminal",
	Long: `Greedy Snake is a single-screen arcade snake game for the terminal.

Eat food to grow and score. Every 5 points the level goes up, the snake
speeds up and more obstacles appear. Coloured special food changes your
speed or lives for a moment. The game ends when you run out of lives.

Available commands:
  play     - Play a mode directly
  list     - Show all game modes
  scores   - View high scores and history
  replay   - Watch a recorded session
  serve    - Start SSH server for remote play

Examples:
  snake
  snake play walled --difficulty hard
  snake scores classic
  snake serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.greedy-snake/scores.db", "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagScoresFile, "scores-file", "~/.greedy-snake/high_scores.json", "Path to top 3 score file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.greedy-snake/snake.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig reads the snake config, applies the difficulty preset and
// hands the result to the game package.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, ok, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	if ok {
		config.ApplySnakePreset(&cfg, preset)
	}
	snake.Configure(cfg)
	return cfg, nil
}

// openLogger returns a logger writing to the log file. The terminal belongs
// to the game, so nothing is logged to stdout or stderr while playing.
func openLogger() (*log.Logger, func()) {
	path := config.ExpandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			logger := log.NewWithOptions(f, log.Options{
				ReportTimestamp: true,
				TimeFormat:      time.DateTime,
				Prefix:          "snake",
			})
			return logger, func() { f.Close() }
		}
	}
	fmt.Fprintf(os.Stderr, "Warning: could not open log file %s, logging disabled\n", path)
	return log.New(io.Discard), func() {}
}

// openStores opens the score file and the history database. A database
// that cannot be opened is reported and play continues without history.
func openStores(logger *log.Logger) (*scores.Store, *storage.Store) {
	scoreStore := scores.New(config.ExpandHome(flagScoresFile), logger)

	history, err := storage.Open(config.ExpandHome(flagDBPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("history disabled", "err", err)
		return scoreStore, nil
	}
	return scoreStore, history
}
