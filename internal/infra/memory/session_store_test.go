package memory

import (
	"testing"

	"trivia-quiz-service/internal/app"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()

	session, err := app.NewSession("s1", DefaultQuestionBank()[:1], NewScoreStore(), nil)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	store.Put(session)

	if _, ok := store.Get("s1"); !ok {
		t.Fatalf("expected session present")
	}

	store.Delete("s1")
	if _, ok := store.Get("s1"); ok {
		t.Fatalf("expected session removed")
	}
}
