package memory

import (
	"context"
	"testing"
)

func TestFilterIsCaseInsensitive(t *testing.T) {
	source := NewDefaultQuestionSource()

	questions, err := source.QuestionsByCategories(context.Background(), []string{"MOBILE COMPUTING"})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(questions) != 4 {
		t.Fatalf("expected 4 mobile computing questions, got %d", len(questions))
	}
	for _, q := range questions {
		if q.Category != "Mobile Computing" {
			t.Fatalf("unexpected category %q", q.Category)
		}
	}
}

func TestFilterFailsClosed(t *testing.T) {
	source := NewDefaultQuestionSource()

	questions, err := source.QuestionsByCategories(context.Background(), []string{"underwater basket weaving"})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("expected empty result for unknown category, got %d", len(questions))
	}

	questions, err = source.QuestionsByCategories(context.Background(), nil)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("expected empty result for no categories, got %d", len(questions))
	}
}

func TestBankInvariants(t *testing.T) {
	for _, q := range DefaultQuestionBank() {
		if len(q.Options) != 4 {
			t.Fatalf("question %d: expected 4 options, got %d", q.ID, len(q.Options))
		}
		found := false
		for _, opt := range q.Options {
			if opt == q.Answer {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("question %d: answer %q not among options", q.ID, q.Answer)
		}
	}
}
