package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/domain"
)

const leaderboardKey = "quiz:leaderboard"

// LeaderboardCache keeps the serialized leaderboard in Redis so multiple
// instances share one cached board. Misses fall through to the wrapped
// store behind a singleflight; writes pass through and drop the key.
type LeaderboardCache struct {
	client *redis.Client
	store  app.ScoreStore
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewLeaderboardCache(client *redis.Client, store app.ScoreStore, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{
		client: client,
		store:  store,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *LeaderboardCache) SaveResult(ctx context.Context, res domain.Result) error {
	if err := c.store.SaveResult(ctx, res); err != nil {
		return err
	}
	// best-effort invalidation; an expired stale board is acceptable
	_ = c.client.Del(ctx, leaderboardKey).Err()
	return nil
}

func (c *LeaderboardCache) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	if raw, err := c.client.Get(ctx, leaderboardKey).Bytes(); err == nil {
		var entries []domain.LeaderboardEntry
		if err := json.Unmarshal(raw, &entries); err == nil {
			return entries, nil
		}
	}

	result, err, _ := c.sf.Do(leaderboardKey, func() (interface{}, error) {
		// Re-check in case another goroutine filled the key.
		if raw, err := c.client.Get(ctx, leaderboardKey).Bytes(); err == nil {
			var entries []domain.LeaderboardEntry
			if err := json.Unmarshal(raw, &entries); err == nil {
				return entries, nil
			}
		}

		entries, err := c.store.Leaderboard(ctx)
		if err != nil {
			return nil, err
		}
		if raw, err := json.Marshal(entries); err == nil {
			_ = c.client.Set(ctx, leaderboardKey, raw, c.ttlWithJitter()).Err()
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.LeaderboardEntry), nil
}

func (c *LeaderboardCache) UserAttempts(ctx context.Context, userID string) ([]domain.AttemptRecord, error) {
	return c.store.UserAttempts(ctx, userID)
}

func (c *LeaderboardCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
