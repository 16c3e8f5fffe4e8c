package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/wellnest/wellnest/internal/streak"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates a SQLite database at dbPath and
// initializes the schema. Parent directories are created if needed.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		streak_current INTEGER NOT NULL DEFAULT 0,
		streak_longest INTEGER NOT NULL DEFAULT 0,
		last_visit TIMESTAMP,
		freeze_available INTEGER NOT NULL DEFAULT 0,
		badges TEXT NOT NULL DEFAULT '[]',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at);
	`
	_, err := db.Exec(schema)
	return err
}

// CreateUser inserts a new user with a generated id and zero streak.
func (s *SQLiteStore) CreateUser(ctx context.Context, name string) (*User, error) {
	user := &User{
		ID:        uuid.NewString(),
		Name:      name,
		Badges:    []string{},
		CreatedAt: time.Now(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, name, created_at) VALUES (?, ?, ?)`,
		user.ID, user.Name, user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUser returns a user by id, or ErrNotFound.
func (s *SQLiteStore) GetUser(ctx context.Context, id string) (*User, error) {
	var (
		user       User
		lastVisit  sql.NullTime
		badgesJSON string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, streak_current, streak_longest, last_visit, freeze_available, badges, created_at
		 FROM users WHERE id = ?`, id,
	).Scan(&user.ID, &user.Name, &user.Streak.Current, &user.Streak.Longest,
		&lastVisit, &user.Streak.FreezeAvailable, &badgesJSON, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if lastVisit.Valid {
		user.Streak.LastVisit = lastVisit.Time
	}
	if err := json.Unmarshal([]byte(badgesJSON), &user.Badges); err != nil {
		return nil, fmt.Errorf("failed to unmarshal badges: %w", err)
	}
	return &user, nil
}

// UpdateStreak persists a user's streak state and badge list.
func (s *SQLiteStore) UpdateStreak(ctx context.Context, id string, st streak.State, badges []string) error {
	if badges == nil {
		badges = []string{}
	}
	badgesJSON, err := json.Marshal(badges)
	if err != nil {
		return fmt.Errorf("failed to marshal badges: %w", err)
	}

	var lastVisit interface{}
	if !st.LastVisit.IsZero() {
		lastVisit = st.LastVisit
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET streak_current = ?, streak_longest = ?, last_visit = ?, freeze_available = ?, badges = ?
		 WHERE id = ?`,
		st.Current, st.Longest, lastVisit, st.FreezeAvailable, string(badgesJSON), id,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountUsers returns the number of users.
func (s *SQLiteStore) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
