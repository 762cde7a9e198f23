package question

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-bank/internal/metrics"
)

// ServiceOptions tunes the service. Zero values fall back to defaults.
type ServiceOptions struct {
	PageSize int
	Selector *Selector
	Metrics  *metrics.Collector
}

// Service implements the question bank operations on top of the injected stores.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	questions  QuestionStore
	categories CategoryStore
	selector   *Selector
	pageSize   int
	validate   *validator.Validate
	metrics    *metrics.Collector
	logger     zerolog.Logger
}

func NewService(questions QuestionStore, categories CategoryStore, logger zerolog.Logger, opts ServiceOptions) *Service {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	selector := opts.Selector
	if selector == nil {
		selector = NewSelector()
	}
	return &Service{
		questions:  questions,
		categories: categories,
		selector:   selector,
		pageSize:   pageSize,
		validate:   validator.New(),
		metrics:    opts.Metrics,
		logger:     logger.With().Str("component", "question_service").Logger(),
	}
}

// ListCategories returns the catalog ordered by id. An empty catalog is ErrNoResults.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrNoResults)
	}
	return SortCategories(categories), nil
}

// ListQuestions returns one page of questions ordered by id along with the
// pre-slice total and the category labels. An empty bank is ErrNoResults; a page
// past the end is an empty page.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	all, err := s.loadQuestions(ctx)
	if err != nil {
		return QuestionPage{}, err
	}
	if len(all) == 0 {
		return QuestionPage{}, fmt.Errorf("%w: no questions", ErrNoResults)
	}

	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list categories: %w", err)
	}

	return QuestionPage{
		Questions:      Paginate(all, page, s.pageSize),
		TotalQuestions: len(all),
		Categories:     CategoryLabels(categories),
	}, nil
}

// SearchQuestions returns every question whose text contains term, ignoring case.
func (s *Service) SearchQuestions(ctx context.Context, term string) (QuestionList, error) {
	all, err := s.loadQuestions(ctx)
	if err != nil {
		return QuestionList{}, err
	}
	matches := Search(all, term)
	if len(matches) == 0 {
		return QuestionList{}, fmt.Errorf("%w: no questions match %q", ErrNoResults, term)
	}
	return QuestionList{Questions: matches, TotalQuestions: len(matches)}, nil
}

// QuestionsByCategory returns the questions stored under categoryID, compared as a string.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID string) (CategoryQuestions, error) {
	all, err := s.loadQuestions(ctx)
	if err != nil {
		return CategoryQuestions{}, err
	}
	matches := FilterByCategory(all, categoryID)
	if len(matches) == 0 {
		return CategoryQuestions{}, fmt.Errorf("%w: no questions found for category %s", ErrNoResults, categoryID)
	}
	return CategoryQuestions{
		Questions:       matches,
		TotalQuestions:  len(matches),
		CurrentCategory: categoryID,
	}, nil
}

// GetQuestion fetches one question by id.
func (s *Service) GetQuestion(ctx context.Context, id int) (Question, error) {
	q, err := s.questions.GetQuestion(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Question{}, err
		}
		return Question{}, fmt.Errorf("get question %d: %w", id, err)
	}
	return q, nil
}

// CreateQuestion validates and stores a question, returning its new id.
// Missing or non-numeric fields are ErrBadRequest; store failures are ErrUnprocessable.
func (s *Service) CreateQuestion(ctx context.Context, req NewQuestion) (int, error) {
	q, err := s.parseNewQuestion(req)
	if err != nil {
		return 0, err
	}

	id, err := s.questions.InsertQuestion(ctx, q)
	if err != nil {
		s.logger.Error().Err(err).Msg("insert question failed")
		return 0, fmt.Errorf("%w: question could not be stored", ErrUnprocessable)
	}

	s.metrics.QuestionCreated()
	s.logger.Info().Int("question_id", id).Str("category", q.Category).Msg("question created")
	return id, nil
}

// DeleteQuestion removes a question and echoes its id. A missing id is ErrNotFound.
func (s *Service) DeleteQuestion(ctx context.Context, id int) (int, error) {
	deleted, err := s.questions.DeleteQuestion(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("delete question %d: %w", id, err)
	}

	s.metrics.QuestionDeleted()
	s.logger.Info().Int("question_id", deleted).Msg("question deleted")
	return deleted, nil
}

// DrawQuizQuestion serves a random question from the requested category that is not
// among req.PreviousIDs. ErrPoolExhausted signals the end of the quiz.
func (s *Service) DrawQuizQuestion(ctx context.Context, req QuizRequest) (Question, error) {
	all, err := s.loadQuestions(ctx)
	if err != nil {
		return Question{}, err
	}

	pool := all
	if key, everything := DisplayCategoryToStoredKey(req.CategoryID); !everything {
		pool = FilterByCategory(all, key)
	}

	q, err := s.selector.Draw(pool, PreviousSet(req.PreviousIDs))
	switch {
	case errors.Is(err, ErrPoolExhausted):
		s.metrics.ObserveDraw(metrics.DrawExhausted)
		return Question{}, err
	case errors.Is(err, ErrNoResults):
		s.metrics.ObserveDraw(metrics.DrawEmpty)
		return Question{}, fmt.Errorf("%w: no questions found for this category", err)
	case err != nil:
		return Question{}, err
	}

	s.metrics.ObserveDraw(metrics.DrawServed)
	return q, nil
}

func (s *Service) loadQuestions(ctx context.Context) ([]Question, error) {
	all, err := s.questions.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return SortByID(all), nil
}

func (s *Service) parseNewQuestion(req NewQuestion) (Question, error) {
	if err := s.validate.Struct(req); err != nil {
		return Question{}, fmt.Errorf("%w: %s", ErrBadRequest, formatValidationError(err))
	}
	difficulty, err := strconv.ParseInt(req.Difficulty, 10, 32)
	if err != nil {
		return Question{}, fmt.Errorf("%w: difficulty must be a 32-bit integer", ErrBadRequest)
	}
	if _, err := strconv.ParseInt(req.Category, 10, 32); err != nil {
		return Question{}, fmt.Errorf("%w: category must be a 32-bit integer id", ErrBadRequest)
	}
	return Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: int(difficulty),
	}, nil
}

func formatValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "numeric":
			msgs = append(msgs, field+" must be numeric")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}
