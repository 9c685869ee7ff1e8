package memory

import (
	"context"
	"testing"
	"time"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/domain"
)

func TestLeaderboardCacheHitsAndInvalidates(t *testing.T) {
	ctx := context.Background()
	backing := &countingStore{ScoreStore: NewScoreStore()}
	cache := NewLeaderboardCache(backing, time.Minute)

	_ = cache.SaveResult(ctx, domain.Result{UserID: "u1", Score: 2, Attempts: "4/4"})

	if _, err := cache.Leaderboard(ctx); err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if backing.reads != 1 {
		t.Fatalf("expected one backing read, got %d", backing.reads)
	}

	if _, err := cache.Leaderboard(ctx); err != nil {
		t.Fatalf("leaderboard 2: %v", err)
	}
	if backing.reads != 1 {
		t.Fatalf("expected cache hit, reads=%d", backing.reads)
	}

	// A new result drops the cached board.
	_ = cache.SaveResult(ctx, domain.Result{UserID: "u2", Score: 4, Attempts: "4/4"})
	entries, err := cache.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("leaderboard 3: %v", err)
	}
	if backing.reads != 2 {
		t.Fatalf("expected invalidated cache to re-read, reads=%d", backing.reads)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

type countingStore struct {
	app.ScoreStore
	reads int
}

func (c *countingStore) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	c.reads++
	return c.ScoreStore.Leaderboard(ctx)
}
