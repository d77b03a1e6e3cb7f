// Package store persists guidance sessions in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a session does not exist.
var ErrNotFound = errors.New("session not found")

// Session is one recorded guidance exchange.
type Session struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Feeling   string          `json:"feeling"`
	Response  json.RawMessage `json:"response"`
}

// Store is an append-only log of guidance sessions.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	feeling    TEXT NOT NULL,
	response   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON sessions(created_at);
`

// Open opens (creating if needed) the session database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init session schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save records one guidance exchange and returns the stored session.
func (s *Store) Save(ctx context.Context, feeling string, response json.RawMessage) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Feeling:   feeling,
		Response:  response,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, created_at, feeling, response) VALUES (?, ?, ?, ?)`,
		sess.ID, sess.CreatedAt.Format(time.RFC3339Nano), sess.Feeling, string(sess.Response))
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// List returns the most recent sessions, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, feeling, response FROM sessions ORDER BY created_at DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := []Session{}
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *sess)
	}
	return sessions, rows.Err()
}

// Get returns a single session by ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, feeling, response FROM sessions WHERE id = ?`, id)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return sess, err
}

// Count returns the number of stored sessions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var sess Session
	var createdAt, response string
	if err := row.Scan(&sess.ID, &createdAt, &sess.Feeling, &response); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse session timestamp: %w", err)
	}
	sess.CreatedAt = ts
	sess.Response = json.RawMessage(response)
	return &sess, nil
}
