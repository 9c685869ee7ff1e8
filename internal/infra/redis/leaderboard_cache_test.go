package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/infra/memory"
)

func TestLeaderboardCachedInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)
	ctx := context.Background()

	backing := &countingStore{ScoreStore: memory.NewScoreStore()}
	cache := NewLeaderboardCache(client, backing, time.Minute)

	_ = cache.SaveResult(ctx, domain.Result{UserID: "u1", Score: 3, Attempts: "4/4"})

	if _, err := cache.Leaderboard(ctx); err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if backing.reads != 1 {
		t.Fatalf("expected one backing read, got %d", backing.reads)
	}
	if !mr.Exists("quiz:leaderboard") {
		t.Fatalf("expected cached key in redis")
	}

	// Second read is served from Redis.
	if _, err := cache.Leaderboard(ctx); err != nil {
		t.Fatalf("leaderboard 2: %v", err)
	}
	if backing.reads != 1 {
		t.Fatalf("expected cache hit, reads=%d", backing.reads)
	}
}

func TestSaveResultInvalidatesCache(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)
	ctx := context.Background()

	cache := NewLeaderboardCache(client, memory.NewScoreStore(), time.Minute)

	_ = cache.SaveResult(ctx, domain.Result{UserID: "u1", Score: 3, Attempts: "4/4"})
	if _, err := cache.Leaderboard(ctx); err != nil {
		t.Fatalf("leaderboard: %v", err)
	}

	_ = cache.SaveResult(ctx, domain.Result{UserID: "u2", Score: 9, Attempts: "8/8"})
	if mr.Exists("quiz:leaderboard") {
		t.Fatalf("expected cache key dropped after write")
	}

	entries, err := cache.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("leaderboard 2: %v", err)
	}
	if len(entries) != 2 || entries[0].TotalScore != 9 {
		t.Fatalf("expected fresh board led by 9, got %+v", entries)
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

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
