package config

import (
	"os"
	"path/filepath"
	"strings"
)

// dataDirName is the per-user directory holding scores, logs and recordings.
const dataDirName = ".greedy-snake"

// DataDir returns ~/.greedy-snake, or an empty string if the home directory
// cannot be determined.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, dataDirName)
}

// DefaultPath returns a file path inside DataDir, falling back to the
// current directory when home is unavailable.
func DefaultPath(name string) string {
	if dir := DataDir(); dir != "" {
		return filepath.Join(dir, name)
	}
	return name
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
