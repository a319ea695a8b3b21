// Package recorder writes one JSON line per game tick so that a session can
// be replayed later.
package recorder

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/greedy-snake/internal/games/snake"
)

// bufferFrames is how many frames may wait for the writer before new ones
// are dropped.
const bufferFrames = 1000

// Frame is one recorded tick.
type Frame struct {
	Tick   uint64      `json:"tick"`
	At     time.Time   `json:"at"`
	Mode   string      `json:"mode"`
	Events []string    `json:"events,omitempty"`
	State  snake.State `json:"state"`
}

// Recorder writes frames asynchronously to a JSONL file.
type Recorder struct {
	path    string
	file    *os.File
	writer  *bufio.Writer
	frames  chan Frame
	wg      sync.WaitGroup
	logger  *log.Logger
	dropped atomic.Int64

	mu     sync.Mutex
	closed bool
	err    error // First write error, reported by Close
}

// FileName returns the recording file name for a session.
func FileName(sessionID string) string {
	return fmt.Sprintf("session_%s.jsonl", sessionID)
}

// New creates dir if needed and starts recording to session_<id>.jsonl.
func New(dir, sessionID string, logger *log.Logger) (*Recorder, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("recorder: create dir: %w", err)
	}

	path := filepath.Join(dir, FileName(sessionID))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("recorder: create file: %w", err)
	}

	r := &Recorder{
		path:   path,
		file:   f,
		writer: bufio.NewWriter(f),
		frames: make(chan Frame, bufferFrames),
		logger: logger.WithPrefix("recorder"),
	}
	r.wg.Add(1)
	go r.writeLoop()
	return r, nil
}

// Path returns the file being written.
func (r *Recorder) Path() string {
	return r.path
}

// Record queues a frame. It never blocks: when the writer falls behind the
// frame is dropped and counted.
func (r *Recorder) Record(f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	select {
	case r.frames <- f:
	default:
		r.dropped.Add(1)
	}
}

// Dropped returns how many frames were discarded so far.
func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}

// Close drains pending frames, flushes and closes the file.
// It is safe to call more than once.
func (r *Recorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.frames)
	r.mu.Unlock()

	r.wg.Wait()
	if dropped := r.Dropped(); dropped > 0 {
		r.logger.Warn("frames dropped", "path", r.path, "count", dropped)
	}
	return errors.Join(r.err, r.file.Close())
}

func (r *Recorder) writeLoop() {
	defer r.wg.Done()

	enc := json.NewEncoder(r.writer)
	for f := range r.frames {
		if err := enc.Encode(f); err != nil {
			r.logger.Error("error recording frame", "tick", f.Tick, "err", err)
			if r.err == nil {
				r.err = fmt.Errorf("recorder: encode: %w", err)
			}
		}
	}
	if err := r.writer.Flush(); err != nil && r.err == nil {
		r.err = fmt.Errorf("recorder: flush: %w", err)
	}
}

// Load reads every frame of a recording.
func Load(path string) ([]Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("recorder: open: %w", err)
	}
	defer f.Close()

	var frames []Frame
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var fr Frame
		if err := json.Unmarshal(sc.Bytes(), &fr); err != nil {
			return nil, fmt.Errorf("recorder: line %d: %w", line, err)
		}
		frames = append(frames, fr)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("recorder: read: %w", err)
	}
	return frames, nil
}
