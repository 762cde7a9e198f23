package external

import "context"

// Provider names accepted by IMPORT_SOURCE.
const (
	SourceOpenTDB   = "opentdb"
	SourceTriviaAPI = "triviaapi"
	SourceGenerator = "generator"
)

// Item is a provider question reduced to the fields the bank stores.
// Category and Difficulty are still in the provider's vocabulary.
type Item struct {
	Source     string
	Category   string
	Difficulty string
	Question   string
	Answer     string
}

// Provider fetches a batch of questions from a remote trivia source.
type Provider interface {
	Fetch(ctx context.Context, amount int, difficulty string) ([]Item, error)
}

var (
	_ Provider = (*OpenTDBClient)(nil)
	_ Provider = (*TriviaAPIClient)(nil)
	_ Provider = (*GeneratorClient)(nil)
)
