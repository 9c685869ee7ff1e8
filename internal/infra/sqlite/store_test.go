package sqlite

import (
	"context"
	"testing"
	"time"

	"trivia-quiz-service/internal/auth"
	"trivia-quiz-service/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreSheetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.AddUser(ctx, &auth.StoredUser{
		User:      domain.User{ID: "u1", Email: "alice@example.com", FirstName: "Alice", LastName: "Ray"},
		PassHash:  []byte("hash"),
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("add user: %v", err)
	}

	now := time.Now().UTC()
	if err := store.SaveResult(ctx, domain.Result{UserID: "u1", Score: 3, Attempts: "4/4", CreatedAt: now}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.SaveResult(ctx, domain.Result{UserID: domain.AnonymousUserID, Score: 6, Attempts: "8/8", CreatedAt: now}); err != nil {
		t.Fatalf("save anonymous: %v", err)
	}

	entries, err := store.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].TotalScore != 6 || entries[1].TotalScore != 3 {
		t.Fatalf("expected descending scores, got %+v", entries)
	}
	if entries[0].FirstName != "Unknown" {
		t.Fatalf("expected Unknown for anonymous row, got %q", entries[0].FirstName)
	}
	if entries[1].FirstName != "Alice" {
		t.Fatalf("expected joined name, got %q", entries[1].FirstName)
	}

	records, err := store.UserAttempts(ctx, "u1")
	if err != nil {
		t.Fatalf("attempts: %v", err)
	}
	if len(records) != 1 || records[0].Attempts != "4/4" || records[0].TotalScore != 3 {
		t.Fatalf("unexpected records %+v", records)
	}
}

func TestUserLookup(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	missing, err := store.FindUserByEmail(ctx, "ghost@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown email")
	}

	stored := &auth.StoredUser{
		User:      domain.User{ID: "u2", Email: "bob@example.com", FirstName: "Bob"},
		PassHash:  []byte("hash"),
		CreatedAt: time.Now().UTC(),
	}
	if err := store.AddUser(ctx, stored); err != nil {
		t.Fatalf("add: %v", err)
	}

	found, err := store.FindUserByEmail(ctx, "bob@example.com")
	if err != nil {
		t.Fatalf("find 2: %v", err)
	}
	if found == nil || found.ID != "u2" || string(found.PassHash) != "hash" {
		t.Fatalf("unexpected user %+v", found)
	}

	if err := store.AddUser(ctx, stored); err == nil {
		t.Fatalf("expected unique email violation")
	}
}
