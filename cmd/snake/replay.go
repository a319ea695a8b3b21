package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/greedy-snake/internal/platform/tui"
	"github.com/vovakirdan/greedy-snake/internal/recorder"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file|session-id>",
	Short: "Play back a recorded session",
	Long: `Play back a session recorded with 'snake play --record'.

The argument is either a path to a .jsonl recording or a session id, which
is looked up in ~/.greedy-snake/recordings.

Controls:
  Space/P  - Pause
  R        - Replay from the start
  Q/Esc    - Quit

Examples:
  snake replay ~/.greedy-snake/recordings/session_1b9d6bcd.jsonl
  snake replay 1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	path := resolveRecording(args[0])

	frames, err := recorder.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(frames) == 0 {
		fmt.Fprintf(os.Stderr, "Recording %s is empty\n", path)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	if err := tui.RunReplay(frames, cfg.ScreenW, cfg.ScreenH); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveRecording maps a session id to its file in the recordings
// directory. Anything that exists on disk is used as is.
func resolveRecording(arg string) string {
	if _, err := os.Stat(arg); err == nil {
		return arg
	}
	candidate := filepath.Join(recordingsDir(), recorder.FileName(arg))
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return arg
}

