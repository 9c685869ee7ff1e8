package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"trivia-quiz-service/internal/domain"
)

// Claims carries the identity attributes the quiz surfaces need, so no
// store lookup happens on the request path.
type Claims struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 session tokens.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	if secret == "" {
		secret = "trivia-dev-secret"
	}
	return &TokenManager{secret: []byte(secret)}
}

func (m *TokenManager) Sign(user domain.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UID:       user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) Parse(raw string) (domain.User, error) {
	t, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) { return m.secret, nil })
	if err != nil {
		return domain.User{}, err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return domain.User{}, errors.New("invalid token")
	}
	return domain.User{
		ID:        claims.UID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
	}, nil
}
