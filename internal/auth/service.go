package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"trivia-quiz-service/internal/domain"
)

// Service implements account registration and login over a UserStore.
type Service struct {
	store    UserStore
	tokens   *TokenManager
	now      func() time.Time
	newID    func() string
	tokenTTL time.Duration
}

// Result is a successful authentication: the signed token and its identity.
type Result struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func NewService(store UserStore, tokens *TokenManager) *Service {
	return &Service{
		store:    store,
		tokens:   tokens,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
		tokenTTL: 30 * 24 * time.Hour,
	}
}

// SetTokenTTL overrides the default 30-day token lifetime.
func (s *Service) SetTokenTTL(ttl time.Duration) {
	if ttl > 0 {
		s.tokenTTL = ttl
	}
}

func (s *Service) Register(ctx context.Context, email, password, firstName, lastName string) (*Result, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, errors.New("email and password required")
	}
	existing, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := domain.User{
		ID:        s.newID(),
		Email:     email,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
	}
	if err := s.store.AddUser(ctx, &StoredUser{User: user, PassHash: hash, CreatedAt: s.now()}); err != nil {
		return nil, err
	}
	token, err := s.tokens.Sign(user, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &Result{Token: token, User: user}, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*Result, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.PassHash, []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := s.tokens.Sign(user.User, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &Result{Token: token, User: user.User}, nil
}
