package question

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/gokatarajesh/trivia-bank/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-bank/internal/db/sqlc"
)

// QuestionStore is the persistence surface the service reads and writes questions through.
// ListQuestions must return questions ordered by id.
type QuestionStore interface {
	ListQuestions(ctx context.Context) ([]Question, error)
	GetQuestion(ctx context.Context, id int) (Question, error)
	InsertQuestion(ctx context.Context, q Question) (int, error)
	DeleteQuestion(ctx context.Context, id int) (int, error)
}

// CategoryStore lists the category catalog.
type CategoryStore interface {
	ListCategories(ctx context.Context) ([]Category, error)
}

// RepositoryStore adapts the Postgres repositories to QuestionStore and CategoryStore.
type RepositoryStore struct {
	questions  *repository.QuestionRepository
	categories *repository.CategoryRepository
}

var (
	_ QuestionStore = (*RepositoryStore)(nil)
	_ CategoryStore = (*RepositoryStore)(nil)
)

func NewRepositoryStore(questions *repository.QuestionRepository, categories *repository.CategoryRepository) *RepositoryStore {
	return &RepositoryStore{questions: questions, categories: categories}
}

func (s *RepositoryStore) ListQuestions(ctx context.Context) ([]Question, error) {
	rows, err := s.questions.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out, nil
}

func (s *RepositoryStore) GetQuestion(ctx context.Context, id int) (Question, error) {
	if !fitsInt32(id) {
		return Question{}, fmt.Errorf("%w: question %d", ErrNotFound, id)
	}
	row, err := s.questions.Get(ctx, int32(id))
	if errors.Is(err, repository.ErrNotFound) {
		return Question{}, fmt.Errorf("%w: question %d", ErrNotFound, id)
	}
	if err != nil {
		return Question{}, err
	}
	return toDomain(row), nil
}

func (s *RepositoryStore) InsertQuestion(ctx context.Context, q Question) (int, error) {
	if !fitsInt32(q.Difficulty) {
		return 0, fmt.Errorf("difficulty %d out of range", q.Difficulty)
	}
	row, err := s.questions.Insert(ctx, sqlcgen.InsertQuestionParams{
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: int32(q.Difficulty),
	})
	if err != nil {
		return 0, err
	}
	return int(row.ID), nil
}

func (s *RepositoryStore) DeleteQuestion(ctx context.Context, id int) (int, error) {
	if !fitsInt32(id) {
		return 0, fmt.Errorf("%w: question %d", ErrNotFound, id)
	}
	deleted, err := s.questions.Delete(ctx, int32(id))
	if errors.Is(err, repository.ErrNotFound) {
		return 0, fmt.Errorf("%w: question %d", ErrNotFound, id)
	}
	if err != nil {
		return 0, err
	}
	return int(deleted), nil
}

func (s *RepositoryStore) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, Category{ID: int(row.ID), Type: row.Type})
	}
	return out, nil
}

// fitsInt32 reports whether v survives conversion to the INTEGER columns unchanged.
func fitsInt32(v int) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

func toDomain(row sqlcgen.Question) Question {
	return Question{
		ID:         int(row.ID),
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   row.Category,
		Difficulty: int(row.Difficulty),
	}
}
