package question

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"

	"github.com/gokatarajesh/trivia-bank/internal/metrics"
	"github.com/gokatarajesh/trivia-bank/internal/question/external"
)

var providerDifficulty = map[string]int{
	"easy":   1,
	"medium": 2,
	"hard":   3,
}

// ImportRequest describes one batch pulled from a provider.
type ImportRequest struct {
	Amount     int
	Difficulty string
}

// ImportResult summarises a batch.
type ImportResult struct {
	Fetched int
	Created int
	Skipped int
}

// Importer copies provider questions into the bank through the normal create path.
// Questions whose category has no catalog match, whose difficulty is unknown, or
// whose text already exists are skipped.
type Importer struct {
	svc      *Service
	provider external.Provider
	metrics  *metrics.Collector
	logger   zerolog.Logger
}

func NewImporter(svc *Service, provider external.Provider, collector *metrics.Collector, logger zerolog.Logger) *Importer {
	return &Importer{
		svc:      svc,
		provider: provider,
		metrics:  collector,
		logger:   logger.With().Str("component", "question_importer").Logger(),
	}
}

func (i *Importer) Import(ctx context.Context, req ImportRequest) (ImportResult, error) {
	amount := req.Amount
	if amount <= 0 {
		amount = DefaultPageSize
	}

	items, err := i.provider.Fetch(ctx, amount, req.Difficulty)
	if err != nil {
		return ImportResult{}, fmt.Errorf("fetch provider questions: %w", err)
	}
	categories, err := i.svc.ListCategories(ctx)
	if err != nil {
		return ImportResult{}, err
	}
	existing, err := i.svc.loadQuestions(ctx)
	if err != nil {
		return ImportResult{}, err
	}

	fold := cases.Fold()
	seen := make(map[string]struct{}, len(existing))
	for _, q := range existing {
		seen[fold.String(q.Question)] = struct{}{}
	}

	result := ImportResult{Fetched: len(items)}
	for _, item := range items {
		nq, ok := normalizeItem(item, categories)
		if !ok {
			result.Skipped++
			continue
		}
		key := fold.String(nq.Question)
		if _, dup := seen[key]; dup {
			result.Skipped++
			continue
		}

		if _, err := i.svc.CreateQuestion(ctx, nq); err != nil {
			if errors.Is(err, ErrBadRequest) {
				result.Skipped++
				continue
			}
			i.metrics.QuestionsImportedAdd(result.Created)
			return result, err
		}
		seen[key] = struct{}{}
		result.Created++
	}

	i.metrics.QuestionsImportedAdd(result.Created)
	i.logger.Info().
		Int("fetched", result.Fetched).
		Int("created", result.Created).
		Int("skipped", result.Skipped).
		Msg("import batch finished")
	return result, nil
}

func normalizeItem(item external.Item, categories []Category) (NewQuestion, bool) {
	difficulty, ok := providerDifficulty[strings.ToLower(item.Difficulty)]
	if !ok {
		return NewQuestion{}, false
	}
	category, ok := matchCategory(item.Category, categories)
	if !ok {
		return NewQuestion{}, false
	}
	return NewQuestion{
		Question:   strings.TrimSpace(item.Question),
		Answer:     strings.TrimSpace(item.Answer),
		Category:   strconv.Itoa(category.ID),
		Difficulty: strconv.Itoa(difficulty),
	}, true
}

// matchCategory finds the first catalog category whose label is a word of the
// provider category, allowing a trailing plural "s" on either side.
// "Science & Nature" -> Science, "arts_and_literature" -> Art, "Sport" -> Sports.
func matchCategory(providerCategory string, categories []Category) (Category, bool) {
	fold := cases.Fold()
	words := strings.FieldsFunc(fold.String(providerCategory), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, c := range SortCategories(categories) {
		label := fold.String(c.Type)
		for _, w := range words {
			if w == label || w == label+"s" || w+"s" == label {
				return c, true
			}
		}
	}
	return Category{}, false
}
