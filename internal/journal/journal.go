// Package journal implements the durable thought archive for Sage.
//
// It uses SQLite to keep an append-only record of every processed
// thought across server restarts. The journal is an optional
// subsystem: when it fails to initialize the server runs memory-only.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Entry is one archived thought.
type Entry struct {
	ID              int64  `json:"id"`
	SessionID       string `json:"session_id"`
	BranchID        string `json:"branch_id,omitempty"`
	Index           int    `json:"thought_number"`
	TotalCount      int    `json:"total_thoughts"`
	Stage           string `json:"stage"`
	Text            string `json:"thought"`
	IsRevision      bool   `json:"is_revision,omitempty"`
	RevisesIndex    int    `json:"revises_thought,omitempty"`
	BranchFromIndex int    `json:"branch_from_thought,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// Config holds journal configuration.
type Config struct {
	DataDir string
}

// DefaultConfig stores the journal under ~/.sage.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{DataDir: filepath.Join(home, ".sage")}
}

// Journal is the SQLite-backed thought archive.
type Journal struct {
	db *sql.DB
}

// New creates the data directory if needed, opens SQLite with WAL
// mode, and runs migrations.
func New(cfg Config) (*Journal, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("journal: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "journal.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("journal: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("journal: pragma %q: %w", p, err)
		}
	}

	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		return nil, fmt.Errorf("journal: migration: %w", err)
	}
	return j, nil
}

// Close closes the underlying database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS thoughts (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id          TEXT    NOT NULL,
			branch_id           TEXT    NOT NULL DEFAULT '',
			thought_number      INTEGER NOT NULL,
			total_thoughts      INTEGER NOT NULL,
			stage               TEXT    NOT NULL,
			thought             TEXT    NOT NULL,
			is_revision         INTEGER NOT NULL DEFAULT 0,
			revises_thought     INTEGER NOT NULL DEFAULT 0,
			branch_from_thought INTEGER NOT NULL DEFAULT 0,
			created_at          TEXT    NOT NULL DEFAULT (datetime('now'))
		);

		CREATE INDEX IF NOT EXISTS idx_thoughts_session ON thoughts(session_id);
		CREATE INDEX IF NOT EXISTS idx_thoughts_created ON thoughts(created_at DESC);
	`
	_, err := j.db.Exec(schema)
	return err
}

// Append archives one thought and returns its row ID.
func (j *Journal) Append(e Entry) (int64, error) {
	res, err := j.db.Exec(`
		INSERT INTO thoughts (
			session_id, branch_id, thought_number, total_thoughts,
			stage, thought, is_revision, revises_thought, branch_from_thought,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.SessionID, e.BranchID, e.Index, e.TotalCount,
		e.Stage, e.Text, boolInt(e.IsRevision), e.RevisesIndex, e.BranchFromIndex,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("journal: append: %w", err)
	}
	return res.LastInsertId()
}

// BySession returns the archived thoughts of one session in insertion
// order, capped at limit (0 means no cap).
func (j *Journal) BySession(sessionID string, limit int) ([]Entry, error) {
	query := `
		SELECT id, session_id, branch_id, thought_number, total_thoughts,
		       stage, thought, is_revision, revises_thought, branch_from_thought,
		       created_at
		FROM thoughts WHERE session_id = ? ORDER BY id`
	args := []any{sessionID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("journal: by session: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Recent returns the most recently archived thoughts, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := j.db.Query(`
		SELECT id, session_id, branch_id, thought_number, total_thoughts,
		       stage, thought, is_revision, revises_thought, branch_from_thought,
		       created_at
		FROM thoughts ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("journal: recent: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// SessionCount reports how many distinct sessions the journal holds.
func (j *Journal) SessionCount() (int, error) {
	var n int
	err := j.db.QueryRow(`SELECT COUNT(DISTINCT session_id) FROM thoughts`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("journal: session count: %w", err)
	}
	return n, nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var isRevision int
		if err := rows.Scan(
			&e.ID, &e.SessionID, &e.BranchID, &e.Index, &e.TotalCount,
			&e.Stage, &e.Text, &isRevision, &e.RevisesIndex, &e.BranchFromIndex,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("journal: scan: %w", err)
		}
		e.IsRevision = isRevision != 0
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
