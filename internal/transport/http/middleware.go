package http

import (
	"net/http"
	"strings"

	"trivia-quiz-service/internal/auth"
)

// WithAuth attaches the verified identity to the request context when a
// Bearer token is present and valid. Requests without one pass through
// untouched; endpoints that need an identity check the context themselves.
func WithAuth(tokens *auth.TokenManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if strings.HasPrefix(h, "Bearer ") {
			raw := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
			if user, err := tokens.Parse(raw); err == nil {
				next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), user)))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
