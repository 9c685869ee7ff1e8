package memory

import (
	"context"
	"testing"
	"time"

	"trivia-quiz-service/internal/auth"
	"trivia-quiz-service/internal/domain"
)

func TestLeaderboardOrderAndNameJoin(t *testing.T) {
	ctx := context.Background()
	store := NewScoreStore()

	if err := store.AddUser(ctx, &auth.StoredUser{
		User: domain.User{ID: "u1", Email: "alice@example.com", FirstName: "Alice", LastName: "Ray"},
	}); err != nil {
		t.Fatalf("add user: %v", err)
	}

	now := time.Now()
	_ = store.SaveResult(ctx, domain.Result{UserID: "u1", Score: 3, Attempts: "4/4", CreatedAt: now})
	_ = store.SaveResult(ctx, domain.Result{UserID: domain.AnonymousUserID, Score: 7, Attempts: "8/8", CreatedAt: now})

	entries, err := store.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].TotalScore != 7 || entries[1].TotalScore != 3 {
		t.Fatalf("expected descending score order, got %+v", entries)
	}
	if entries[0].FirstName != "Unknown" {
		t.Fatalf("expected Unknown fallback for anonymous row, got %q", entries[0].FirstName)
	}
	if entries[1].FirstName != "Alice" || entries[1].LastName != "Ray" {
		t.Fatalf("expected joined profile names, got %+v", entries[1])
	}
}

func TestUserAttemptsFiltersByUser(t *testing.T) {
	ctx := context.Background()
	store := NewScoreStore()

	_ = store.SaveResult(ctx, domain.Result{UserID: "u1", Score: 2, Attempts: "4/4"})
	_ = store.SaveResult(ctx, domain.Result{UserID: "u1", Score: 5, Attempts: "8/8"})
	_ = store.SaveResult(ctx, domain.Result{UserID: "u2", Score: 1, Attempts: "4/4"})

	records, err := store.UserAttempts(ctx, "u1")
	if err != nil {
		t.Fatalf("attempts: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].TotalScore+records[1].TotalScore != 7 {
		t.Fatalf("unexpected scores %+v", records)
	}
}

func TestFindUserByEmailUnknownIsNil(t *testing.T) {
	store := NewScoreStore()
	user, err := store.FindUserByEmail(context.Background(), "ghost@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil for unknown email, got %+v", user)
	}
}
