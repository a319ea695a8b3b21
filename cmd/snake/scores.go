package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/greedy-snake/internal/config"
	"github.com/vovakirdan/greedy-snake/internal/platform/tui"
	"github.com/vovakirdan/greedy-snake/internal/registry"
	"github.com/vovakirdan/greedy-snake/internal/scores"
	"github.com/vovakirdan/greedy-snake/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 3 scores and the best sessions from the history
database. Without a mode, sessions of every mode are listed.

Examples:
  snake scores
  snake scores walled --limit 20
  snake scores --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show")
}

func runScores(_ *cobra.Command, args []string) {
	mode := ""
	if len(args) == 1 {
		mode = args[0]
		if !registry.Exists(mode) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
			fmt.Fprintln(os.Stderr, "Run 'snake list' to see available modes.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(config.ExpandHome(flagDBPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	printTop3(os.Stdout)
	if err := printSessions(os.Stdout, store, mode, flagScoresLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
	}
}

// printTop3 prints the persisted top 3 scores.
func printTop3(w io.Writer) {
	top := scores.New(config.ExpandHome(flagScoresFile), log.New(io.Discard)).Load()
	fmt.Fprintln(w, "Top Scores")
	fmt.Fprintln(w)
	for i, s := range top {
		fmt.Fprintf(w, "  %d. %d\n", i+1, s)
	}
	fmt.Fprintln(w)
}

// printSessions prints the best sessions of a mode and its aggregate stats.
func printSessions(w io.Writer, store *storage.Store, mode string, limit int) error {
	sessions, err := store.TopSessions(mode, limit)
	if err != nil {
		return err
	}

	title := "all modes"
	if mode != "" {
		title = mode
	}
	fmt.Fprintf(w, "Best Sessions - %s\n", title)
	fmt.Fprintln(w)

	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'snake play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-5s  %-8s  %s\n", "Rank", "Mode", "Score", "Level", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-5s  %-8s  %s\n", "----", "----", "-----", "-----", "----", "----")
	for i, s := range sessions {
		fmt.Fprintf(w, "  %-4d  %-8s  %-6d  %-5d  %-8s  %s\n",
			i+1, s.Mode, s.Score, s.Level,
			s.Duration.Round(time.Second), s.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(mode)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Sessions: %d  Best: %d  Average: %.1f  Best level: %d  Time played: %s\n",
		stats.Sessions, stats.HighScore, stats.AvgScore, stats.BestLevel, stats.TotalTime.Round(time.Second))
	return nil
}
