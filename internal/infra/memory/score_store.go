package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"trivia-quiz-service/internal/auth"
	"trivia-quiz-service/internal/domain"
)

// ScoreStore keeps the score sheet and registered users in memory.
// It backs tests and demo runs; sqlite or Postgres serve real deployments.
type ScoreStore struct {
	mu      sync.RWMutex
	results []scoreRow
	users   map[string]*auth.StoredUser
	byEmail map[string]*auth.StoredUser
}

type scoreRow struct {
	userID    string
	score     int
	attempts  string
	createdAt time.Time
}

func NewScoreStore() *ScoreStore {
	return &ScoreStore{
		users:   make(map[string]*auth.StoredUser),
		byEmail: make(map[string]*auth.StoredUser),
	}
}

func (s *ScoreStore) SaveResult(_ context.Context, res domain.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, scoreRow{
		userID:    res.UserID,
		score:     res.Score,
		attempts:  res.Attempts,
		createdAt: res.CreatedAt,
	})
	return nil
}

func (s *ScoreStore) Leaderboard(_ context.Context) ([]domain.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.LeaderboardEntry, 0, len(s.results))
	for _, row := range s.results {
		entry := domain.LeaderboardEntry{
			UserID:     row.userID,
			FirstName:  "Unknown",
			TotalScore: row.score,
			Attempts:   row.attempts,
		}
		if user, ok := s.users[row.userID]; ok {
			entry.FirstName = user.FirstName
			entry.LastName = user.LastName
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalScore > entries[j].TotalScore
	})
	return entries, nil
}

func (s *ScoreStore) UserAttempts(_ context.Context, userID string) ([]domain.AttemptRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.AttemptRecord, 0)
	for _, row := range s.results {
		if row.userID == userID {
			records = append(records, domain.AttemptRecord{Attempts: row.attempts, TotalScore: row.score})
		}
	}
	return records, nil
}

func (s *ScoreStore) FindUserByEmail(_ context.Context, email string) (*auth.StoredUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (s *ScoreStore) AddUser(_ context.Context, user *auth.StoredUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *user
	s.users[user.ID] = &clone
	s.byEmail[strings.ToLower(user.Email)] = &clone
	return nil
}
