package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"trivia-quiz-service/internal/domain"
)

// DefaultQuestionSeconds is the per-question countdown budget.
const DefaultQuestionSeconds = 15

// State is the lifecycle phase of a quiz session.
type State string

const (
	StateInProgress   State = "in_progress"
	StateSubmitting   State = "submitting"
	StateFailedSubmit State = "failed_submit"
	StateComplete     State = "complete"
	StateAbandoned    State = "abandoned"
)

// ScoreStore persists the final result of a completed session.
type ScoreStore interface {
	SaveResult(ctx context.Context, res domain.Result) error
	Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
	UserAttempts(ctx context.Context, userID string) ([]domain.AttemptRecord, error)
}

// IdentityProvider resolves the authenticated user for a request context.
// It is queried once, at session finalization; absence is not an error.
type IdentityProvider interface {
	CurrentUser(ctx context.Context) (domain.User, bool)
}

const noSelection = -1

// Session drives one quiz attempt from first question to persisted result.
// All mutators are serialized on an internal mutex; while a result is being
// persisted every other mutation is an observable no-op, so a timeout and a
// repeated tap can never submit twice.
type Session struct {
	id        string
	questions []domain.Question
	store     ScoreStore
	identity  IdentityProvider
	now       func() time.Time
	budget    int

	mu        sync.Mutex
	state     State
	index     int
	remaining int
	selected  int
	score     int
	result    *domain.Result // built once, reused across persist retries
}

// Snapshot is an immutable view of session state for transports.
type Snapshot struct {
	SessionID string           `json:"sessionId"`
	State     State            `json:"state"`
	Index     int              `json:"index"`
	Total     int              `json:"total"`
	Question  *domain.Question `json:"question,omitempty"`
	Remaining int              `json:"remaining"`
	Selected  int              `json:"selected"`
	Score     int              `json:"score"`
}

// NewSession builds a session over a non-empty, already filtered question list.
func NewSession(id string, questions []domain.Question, store ScoreStore, identity IdentityProvider) (*Session, error) {
	return NewSessionWithClock(id, questions, store, identity, DefaultQuestionSeconds, time.Now)
}

// NewSessionWithClock allows deterministic budgets and timestamps in tests.
func NewSessionWithClock(id string, questions []domain.Question, store ScoreStore, identity IdentityProvider, budget int, now func() time.Time) (*Session, error) {
	if len(questions) == 0 {
		return nil, domain.ErrNoQuestions
	}
	if budget <= 0 {
		budget = DefaultQuestionSeconds
	}
	return &Session{
		id:        id,
		questions: questions,
		store:     store,
		identity:  identity,
		now:       now,
		budget:    budget,
		state:     StateInProgress,
		selected:  noSelection,
		remaining: budget,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Snapshot returns the current session view.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// SelectOption records the user's choice for the current question.
// Re-selecting overwrites; nothing else changes.
func (s *Session) SelectOption(index int) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateComplete:
		return s.snapshotLocked(), domain.ErrSessionComplete
	case StateAbandoned:
		return s.snapshotLocked(), domain.ErrSessionAbandoned
	case StateSubmitting, StateFailedSubmit:
		// Selection is frozen once the final answer has been evaluated.
		return s.snapshotLocked(), nil
	}
	if index < 0 || index >= len(s.questions[s.index].Options) {
		return s.snapshotLocked(), domain.ErrInvalidOption
	}
	s.selected = index
	return s.snapshotLocked(), nil
}

// Tick consumes one second of the current question's budget. Reaching zero
// triggers the same transition as an explicit Advance with whatever option is
// currently selected. Ticks outside IN_PROGRESS are no-ops.
func (s *Session) Tick(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	if s.state != StateInProgress {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, nil
	}
	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining > 0 {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, nil
	}
	s.mu.Unlock()
	return s.Advance(ctx)
}

// Advance evaluates the current selection, then moves to the next question or,
// on the last one, persists the result. A persist failure leaves the session
// on the last question in a retryable state; calling Advance again only
// retries persistence, it never re-scores.
func (s *Session) Advance(ctx context.Context) (Snapshot, error) {
	return s.advance(ctx, true)
}

// Skip moves to the next question without scoring the current selection.
// On the last question it takes the same finalization path as Advance,
// matching the save control.
func (s *Session) Skip(ctx context.Context) (Snapshot, error) {
	return s.advance(ctx, false)
}

func (s *Session) advance(ctx context.Context, scoreSelection bool) (Snapshot, error) {
	s.mu.Lock()
	switch s.state {
	case StateSubmitting:
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, nil
	case StateComplete:
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, domain.ErrSessionComplete
	case StateAbandoned:
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, domain.ErrSessionAbandoned
	}

	if s.index < len(s.questions)-1 {
		if scoreSelection {
			s.applySelectionLocked()
		}
		s.index++
		s.remaining = s.budget
		s.selected = noSelection
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, nil
	}

	// Last question: skip and save converge on the same finalization path.
	if s.result == nil {
		s.applySelectionLocked()
		s.result = &domain.Result{
			UserID:    s.resolveUserID(ctx),
			Score:     s.score,
			Attempts:  fmt.Sprintf("%d/%d", s.index+1, len(s.questions)),
			CreatedAt: s.now().UTC(),
		}
	}
	res := *s.result
	s.state = StateSubmitting
	s.mu.Unlock()

	err := s.store.SaveResult(ctx, res)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateAbandoned {
		return s.snapshotLocked(), domain.ErrSessionAbandoned
	}
	if err != nil {
		s.state = StateFailedSubmit
		return s.snapshotLocked(), fmt.Errorf("%w: %v", domain.ErrSaveScore, err)
	}
	s.state = StateComplete
	s.index = len(s.questions)
	return s.snapshotLocked(), nil
}

// Abandon discards the session without persisting a partial result.
// A persist already in flight still resolves, but its outcome is dropped.
func (s *Session) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateComplete {
		return
	}
	s.state = StateAbandoned
}

func (s *Session) applySelectionLocked() {
	if s.selected == noSelection {
		return
	}
	q := s.questions[s.index]
	if q.Options[s.selected] == q.Answer {
		s.score++
	}
}

func (s *Session) resolveUserID(ctx context.Context) string {
	if s.identity != nil {
		if user, ok := s.identity.CurrentUser(ctx); ok && user.ID != "" {
			return user.ID
		}
	}
	return domain.AnonymousUserID
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		SessionID: s.id,
		State:     s.state,
		Index:     s.index,
		Total:     len(s.questions),
		Remaining: s.remaining,
		Selected:  s.selected,
		Score:     s.score,
	}
	if s.index < len(s.questions) {
		q := s.questions[s.index]
		snap.Question = &q
	}
	return snap
}
