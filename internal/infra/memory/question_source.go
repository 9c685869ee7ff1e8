package memory

import (
	"context"
	"strings"

	"trivia-quiz-service/internal/domain"
)

// QuestionSource serves a static in-process question bank filtered by
// category. Matching is case-insensitive identifier equality and fails
// closed: unknown categories simply contribute nothing.
type QuestionSource struct {
	questions  []domain.Question
	categories []domain.Category
}

func NewQuestionSource(questions []domain.Question, categories []domain.Category) *QuestionSource {
	return &QuestionSource{questions: questions, categories: categories}
}

// NewDefaultQuestionSource serves the built-in bank and catalogue.
func NewDefaultQuestionSource() *QuestionSource {
	return NewQuestionSource(DefaultQuestionBank(), DefaultCategories())
}

func (s *QuestionSource) Categories(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

func (s *QuestionSource) QuestionsByCategories(_ context.Context, categories []string) ([]domain.Question, error) {
	wanted := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		wanted[strings.ToLower(strings.TrimSpace(c))] = struct{}{}
	}

	matched := make([]domain.Question, 0, len(s.questions))
	for _, q := range s.questions {
		if _, ok := wanted[strings.ToLower(q.Category)]; ok {
			matched = append(matched, q)
		}
	}
	return matched, nil
}
