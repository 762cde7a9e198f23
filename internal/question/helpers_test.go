package question

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// memoryStore is an in-memory QuestionStore and CategoryStore.
type memoryStore struct {
	mu         sync.Mutex
	questions  []Question
	categories []Category
	nextID     int

	listErr   error
	insertErr error
	deleteErr error
}

func newMemoryStore(categories []Category, questions ...Question) *memoryStore {
	s := &memoryStore{categories: categories, nextID: 1}
	for _, q := range questions {
		s.questions = append(s.questions, q)
		if q.ID >= s.nextID {
			s.nextID = q.ID + 1
		}
	}
	return s
}

func (s *memoryStore) ListQuestions(_ context.Context) ([]Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out, nil
}

func (s *memoryStore) GetQuestion(_ context.Context, id int) (Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return Question{}, fmt.Errorf("%w: question %d", ErrNotFound, id)
}

func (s *memoryStore) InsertQuestion(_ context.Context, q Question) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertErr != nil {
		return 0, s.insertErr
	}
	q.ID = s.nextID
	s.nextID++
	s.questions = append(s.questions, q)
	return q.ID, nil
}

func (s *memoryStore) DeleteQuestion(_ context.Context, id int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return 0, s.deleteErr
	}
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: question %d", ErrNotFound, id)
}

func (s *memoryStore) ListCategories(_ context.Context) ([]Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

func seedCategories() []Category {
	return []Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
}

// numberedQuestions builds questions with ids 1..n spread over categories "0".."5".
func numberedQuestions(n int) []Question {
	out := make([]Question, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Question{
			ID:         i,
			Question:   fmt.Sprintf("Question number %d?", i),
			Answer:     fmt.Sprintf("Answer %d", i),
			Category:   fmt.Sprint(i % 6),
			Difficulty: 1 + i%5,
		})
	}
	return out
}

func newTestService(store *memoryStore, opts ServiceOptions) *Service {
	return NewService(store, store, zerolog.Nop(), opts)
}
