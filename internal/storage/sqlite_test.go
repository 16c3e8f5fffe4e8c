package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/wellnest/wellnest/internal/streak"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_createAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user, err := store.CreateUser(ctx, "asha")
	if err != nil {
		t.Fatal(err)
	}
	if user.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := store.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "asha" {
		t.Errorf("name = %q", got.Name)
	}
	if got.Streak.Current != 0 || !got.Streak.LastVisit.IsZero() {
		t.Errorf("new user should have zero streak: %+v", got.Streak)
	}
	if len(got.Badges) != 0 {
		t.Errorf("new user should have no badges: %v", got.Badges)
	}
}

func TestSQLiteStore_getMissing(t *testing.T) {
	store := newTestStore(t)
	_, err := store.GetUser(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteStore_updateStreak(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user, err := store.CreateUser(ctx, "ravi")
	if err != nil {
		t.Fatal(err)
	}

	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	state := streak.State{Current: 3, Longest: 5, LastVisit: now, FreezeAvailable: 1}
	badges := []string{"🌱 Starter"}
	if err := store.UpdateStreak(ctx, user.ID, state, badges); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Streak.Current != 3 || got.Streak.Longest != 5 || got.Streak.FreezeAvailable != 1 {
		t.Errorf("streak = %+v", got.Streak)
	}
	if !got.Streak.LastVisit.Equal(now) {
		t.Errorf("last visit = %v, want %v", got.Streak.LastVisit, now)
	}
	if len(got.Badges) != 1 || got.Badges[0] != "🌱 Starter" {
		t.Errorf("badges = %v", got.Badges)
	}
}

func TestSQLiteStore_updateStreakMissingUser(t *testing.T) {
	store := newTestStore(t)
	err := store.UpdateStreak(context.Background(), "nope", streak.State{}, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteStore_countUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	count, err := store.CountUsers(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}

	if _, err := store.CreateUser(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.CreateUser(ctx, "b"); err != nil {
		t.Fatal(err)
	}

	count, err = store.CountUsers(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}
