package domain

import "time"

// OptionsPerQuestion is the fixed option count for every bank question.
const OptionsPerQuestion = 4

// AnonymousUserID is the sentinel identity results fall back to when no
// authenticated user is resolvable at submission time.
const AnonymousUserID = "anonymous"

// MaxCategoriesPerSession caps how many categories one session may span.
const MaxCategoriesPerSession = 4

// Question models an MCQ question with exactly one correct option.
// Answer is always equal to one of Options.
type Question struct {
	ID       int      `json:"id"`
	Category string   `json:"category"`
	Text     string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Category is a topic tag used to filter the question bank.
type Category struct {
	ID    string `json:"id"`
	Topic string `json:"topic"`
	Icon  string `json:"icon"`
}

// Result is the record persisted once per completed session.
// Attempts is the "answered/total" counter, e.g. "8/8".
type Result struct {
	UserID    string    `json:"userId"`
	Score     int       `json:"score"`
	Attempts  string    `json:"attempts"`
	CreatedAt time.Time `json:"createdAt"`
}

// LeaderboardEntry is one row of the score sheet joined with the user profile.
type LeaderboardEntry struct {
	UserID     string `json:"userId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	TotalScore int    `json:"totalScore"`
	Attempts   string `json:"attempts"`
}

// AttemptRecord is one historical attempt for the profile view.
type AttemptRecord struct {
	Attempts   string `json:"attempts"`
	TotalScore int    `json:"totalScore"`
}

// User is the authenticated identity as resolved from the identity provider.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
