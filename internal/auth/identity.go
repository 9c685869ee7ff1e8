package auth

import (
	"context"

	"trivia-quiz-service/internal/domain"
)

type identityCtxKey int

const userKey identityCtxKey = 1

// WithUser attaches a resolved identity to the context. Transports call this
// after verifying credentials (Bearer token, chat account, ...).
func WithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the identity attached to the context, if any.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(userKey).(domain.User)
	return user, ok
}

// ContextIdentity resolves the current user from the request context.
// Absence is reported, never treated as an error; sessions finalized without
// an identity fall back to the anonymous bucket.
type ContextIdentity struct{}

func (ContextIdentity) CurrentUser(ctx context.Context) (domain.User, bool) {
	return UserFromContext(ctx)
}
