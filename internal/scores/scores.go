// Package scores persists the top three scores as a JSON array.
package scores

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// Size is the number of scores kept.
const Size = 3

// Store reads and writes the high score file. Failures never reach the
// caller: they are logged and the store falls back to zeros.
type Store struct {
	path   string
	logger *log.Logger
	mu     sync.Mutex
}

// New creates a store backed by the file at path.
func New(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{
		path:   path,
		logger: logger.WithPrefix("scores"),
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted top scores, always Size entries sorted
// descending. A missing file yields zeros silently, a corrupt one is logged.
func (s *Store) Load() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() []int {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Normalize(nil)
	}
	if err != nil {
		s.logger.Error("error loading high scores", "path", s.path, "err", err)
		return Normalize(nil)
	}

	var list []int
	if err := json.Unmarshal(data, &list); err != nil {
		s.logger.Error("error loading high scores", "path", s.path, "err", err)
		return Normalize(nil)
	}
	return Normalize(list)
}

// Save writes the normalized scores.
func (s *Store) Save(list []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(Normalize(list))
}

func (s *Store) save(list []int) {
	if err := writeFile(s.path, list); err != nil {
		s.logger.Error("error saving high scores", "path", s.path, "err", err)
	}
}

// Update inserts score, persists the new top list and returns it.
func (s *Store) Update(score int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := Normalize(append(s.load(), score))
	s.save(list)
	s.logger.Info("updated high scores", "score", score, "top", list)
	return list
}

// Normalize returns exactly Size non-negative entries sorted descending.
// Short lists are padded with zeros and long lists truncated.
func Normalize(list []int) []int {
	out := make([]int, 0, max(len(list), Size))
	for _, v := range list {
		out = append(out, max(v, 0))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	for len(out) < Size {
		out = append(out, 0)
	}
	return out[:Size]
}

// writeFile replaces the file contents through a temp file so that a crash
// mid-write never leaves a truncated array behind.
func writeFile(path string, list []int) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("scores: encode: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("scores: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".high_scores-*")
	if err != nil {
		return fmt.Errorf("scores: create temp: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("scores: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("scores: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("scores: rename: %w", err)
	}
	return nil
}
