package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/domain"
)

// LeaderboardCache wraps a score store and caches the leaderboard read with
// a TTL to avoid hammering the backing store. Writes pass through and drop
// the cached board.
type LeaderboardCache struct {
	store app.ScoreStore
	ttl   time.Duration
	clock func() time.Time
	sf    singleflight.Group
	rnd   *rand.Rand

	mu        sync.RWMutex
	cached    []domain.LeaderboardEntry
	expiresAt time.Time
}

func NewLeaderboardCache(store app.ScoreStore, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{
		store: store,
		ttl:   ttl,
		clock: time.Now,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *LeaderboardCache) SaveResult(ctx context.Context, res domain.Result) error {
	if err := c.store.SaveResult(ctx, res); err != nil {
		return err
	}
	c.mu.Lock()
	c.cached = nil
	c.mu.Unlock()
	return nil
}

func (c *LeaderboardCache) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	now := c.clock()

	c.mu.RLock()
	if c.cached != nil && c.expiresAt.After(now) {
		entries := c.cached
		c.mu.RUnlock()
		return entries, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.sf.Do("leaderboard", func() (interface{}, error) {
		now := c.clock()
		c.mu.RLock()
		if c.cached != nil && c.expiresAt.After(now) {
			entries := c.cached
			c.mu.RUnlock()
			return entries, nil
		}
		c.mu.RUnlock()

		entries, err := c.store.Leaderboard(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.cached = entries
		c.expiresAt = now.Add(c.ttlWithJitter())
		c.mu.Unlock()
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
	// add up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
