// Package storage keeps a history of finished snake sessions in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// timeLayout is fixed width so that text ordering matches time ordering.
const timeLayout = "2006-01-02 15:04:05.000000"

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// Session is one finished game.
type Session struct {
	ID        int64
	SessionID string // Random id shared with the session recording
	Mode      string
	Score     int
	Level     int
	Duration  time.Duration
	CreatedAt time.Time
}

// Stats contains aggregated statistics for a mode.
type Stats struct {
	Mode       string
	Sessions   int
	HighScore  int
	AvgScore   float64
	BestLevel  int
	TotalTime  time.Duration
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(mode, score DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished session and returns its row id.
// A zero CreatedAt is replaced by the current time.
func (s *Store) SaveSession(sess Session) (int64, error) {
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now()
	}
	result, err := s.db.Exec(
		`INSERT INTO sessions (session_id, mode, score, level, duration_secs, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sess.SessionID,
		sess.Mode,
		sess.Score,
		sess.Level,
		int64(sess.Duration/time.Second),
		sess.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopSessions returns the best sessions for a mode, highest score first.
// An empty mode matches every mode.
func (s *Store) TopSessions(mode string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, session_id, mode, score, level, duration_secs, created_at
		 FROM sessions
		 WHERE ? = '' OR mode = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		mode, mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	return scanSessions(rows)
}

// RecentSessions returns the latest sessions across all modes.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, session_id, mode, score, level, duration_secs, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	return scanSessions(rows)
}

// Stats returns aggregated statistics for a mode. An empty mode
// aggregates every mode.
func (s *Store) Stats(mode string) (*Stats, error) {
	stats := &Stats{Mode: mode}

	var totalSecs int64
	var lastPlayed sql.NullString
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(level), 0), COALESCE(SUM(duration_secs), 0), MAX(created_at)
		 FROM sessions WHERE ? = '' OR mode = ?`,
		mode, mode,
	).Scan(&stats.Sessions, &stats.HighScore, &stats.AvgScore, &stats.BestLevel, &totalSecs, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	stats.TotalTime = time.Duration(totalSecs) * time.Second
	if lastPlayed.Valid {
		stats.LastPlayed = parseTime(lastPlayed.String)
	}
	return stats, nil
}

// ClearMode deletes all sessions of a mode.
func (s *Store) ClearMode(mode string) error {
	if _, err := s.db.Exec("DELETE FROM sessions WHERE mode = ?", mode); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

func scanSessions(rows *sql.Rows) ([]Session, error) {
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var secs int64
		var createdAt string
		if err := rows.Scan(&sess.ID, &sess.SessionID, &sess.Mode, &sess.Score,
			&sess.Level, &secs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.Duration = time.Duration(secs) * time.Second
		sess.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sessions, nil
}

// parseTime reads a stored timestamp. SQLite's own CURRENT_TIMESTAMP uses
// second precision, so that layout is accepted too.
func parseTime(v string) time.Time {
	for _, layout := range []string{timeLayout, "2006-01-02 15:04:05", time.RFC3339Nano} {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			return t
		}
	}
	return time.Time{}
}
