package auth

import (
	"context"
	"time"

	"trivia-quiz-service/internal/domain"
)

// StoredUser is a registered account with its credential hash.
type StoredUser struct {
	domain.User
	PassHash  []byte
	CreatedAt time.Time
}

// UserStore abstracts account persistence. FindUserByEmail returns nil
// without error when the email is unknown.
type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (*StoredUser, error)
	AddUser(ctx context.Context, user *StoredUser) error
}
