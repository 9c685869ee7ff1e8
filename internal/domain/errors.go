package domain

import "errors"

var (
	// ErrNoQuestions is returned when the category filter matches nothing;
	// a session is never constructed in that case.
	ErrNoQuestions = errors.New("no questions available for the selected categories")
	// ErrTooManyCategories is returned when a session requests more categories than allowed.
	ErrTooManyCategories = errors.New("too many categories selected")
	// ErrSessionNotFound is returned when a session id is unknown or already torn down.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrSessionComplete is returned for actions on a session that already finished.
	ErrSessionComplete = errors.New("quiz session already complete")
	// ErrSessionAbandoned is returned for actions on a session its owner discarded.
	ErrSessionAbandoned = errors.New("quiz session abandoned")
	// ErrInvalidOption is returned when a selected option index is out of range.
	ErrInvalidOption = errors.New("option index out of range")
	// ErrSaveScore wraps score store failures; the session stays retryable.
	ErrSaveScore = errors.New("failed to save score")
	// ErrEmailExists is returned when registering an already known email.
	ErrEmailExists = errors.New("email already registered")
	// ErrInvalidCredentials is returned for unknown email or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
