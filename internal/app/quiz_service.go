package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"trivia-quiz-service/internal/domain"
)

// SessionRepository abstracts how live sessions are tracked (in-memory, Redis-backed, etc).
type SessionRepository interface {
	Put(session *Session)
	Get(id string) (*Session, bool)
	Delete(id string)
}

// QuestionSource supplies the question bank filtered by category.
// An empty result is a valid answer, not an error.
type QuestionSource interface {
	QuestionsByCategories(ctx context.Context, categories []string) ([]domain.Question, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

// QuizService contains the quiz use cases: starting sessions, routing
// actions to them, and the leaderboard/profile reads.
type QuizService struct {
	sessions  SessionRepository
	questions QuestionSource
	store     ScoreStore
	identity  IdentityProvider
	budget    int
	newID     func() string
	now       func() time.Time
}

func NewQuizService(sessions SessionRepository, questions QuestionSource, store ScoreStore, identity IdentityProvider, questionSeconds int) *QuizService {
	if questionSeconds <= 0 {
		questionSeconds = DefaultQuestionSeconds
	}
	return &QuizService{
		sessions:  sessions,
		questions: questions,
		store:     store,
		identity:  identity,
		budget:    questionSeconds,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Categories lists the selectable topics.
func (s *QuizService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.questions.Categories(ctx)
}

// Start filters the bank by the chosen categories and opens a session.
// An empty filter result fails before any session exists.
func (s *QuizService) Start(ctx context.Context, categories []string) (Snapshot, error) {
	if len(categories) > domain.MaxCategoriesPerSession {
		return Snapshot{}, domain.ErrTooManyCategories
	}
	questions, err := s.questions.QuestionsByCategories(ctx, categories)
	if err != nil {
		return Snapshot{}, err
	}
	if len(questions) == 0 {
		return Snapshot{}, domain.ErrNoQuestions
	}

	session, err := NewSessionWithClock(s.newID(), questions, s.store, s.identity, s.budget, s.now)
	if err != nil {
		return Snapshot{}, err
	}
	s.sessions.Put(session)
	return session.Snapshot(), nil
}

// SelectOption records an answer choice on a live session.
func (s *QuizService) SelectOption(ctx context.Context, sessionID string, option int) (Snapshot, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return Snapshot{}, domain.ErrSessionNotFound
	}
	return session.SelectOption(option)
}

// Advance submits the current answer; on the last question it persists the
// result and, once complete, drops the session from the repository.
func (s *QuizService) Advance(ctx context.Context, sessionID string) (Snapshot, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return Snapshot{}, domain.ErrSessionNotFound
	}
	snap, err := session.Advance(ctx)
	s.reapIfComplete(snap)
	return snap, err
}

// Skip moves past the current question without scoring it.
func (s *QuizService) Skip(ctx context.Context, sessionID string) (Snapshot, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return Snapshot{}, domain.ErrSessionNotFound
	}
	snap, err := session.Skip(ctx)
	s.reapIfComplete(snap)
	return snap, err
}

// Tick delivers one second of elapsed time to a live session.
func (s *QuizService) Tick(ctx context.Context, sessionID string) (Snapshot, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return Snapshot{}, domain.ErrSessionNotFound
	}
	snap, err := session.Tick(ctx)
	s.reapIfComplete(snap)
	return snap, err
}

// Abandon discards a session without persisting anything.
func (s *QuizService) Abandon(_ context.Context, sessionID string) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return
	}
	session.Abandon()
	s.sessions.Delete(sessionID)
}

// Leaderboard returns all persisted results joined with user profiles,
// sorted by total score descending.
func (s *QuizService) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return s.store.Leaderboard(ctx)
}

// UserAttempts returns a user's attempt history and their summed total score.
func (s *QuizService) UserAttempts(ctx context.Context, userID string) ([]domain.AttemptRecord, int, error) {
	records, err := s.store.UserAttempts(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	total := 0
	for _, rec := range records {
		total += rec.TotalScore
	}
	return records, total, nil
}

func (s *QuizService) reapIfComplete(snap Snapshot) {
	if snap.State == StateComplete {
		s.sessions.Delete(snap.SessionID)
	}
}
