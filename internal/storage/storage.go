// Package storage defines persistence for users and their visit streaks.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/wellnest/wellnest/internal/streak"
)

// ErrNotFound is returned when a user does not exist.
var ErrNotFound = errors.New("user not found")

// User is a registered user with their streak state and badges.
type User struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Streak    streak.State `json:"streak"`
	Badges    []string     `json:"badges"`
	CreatedAt time.Time    `json:"created_at"`
}

// Store defines user persistence operations.
type Store interface {
	CreateUser(ctx context.Context, name string) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	UpdateStreak(ctx context.Context, id string, s streak.State, badges []string) error
	CountUsers(ctx context.Context) (int64, error)
	Close() error
}
