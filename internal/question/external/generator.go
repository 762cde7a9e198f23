package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GeneratorClient asks a question generator service (an LLM wrapper exposing
// POST /generate) for fresh questions.
type GeneratorClient struct {
	generateURL string
	apiKey      string
	category    string
	httpClient  *http.Client
}

func NewGeneratorClient(baseURL, apiKey, category string, httpClient *http.Client) *GeneratorClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 6 * time.Second}
	}
	return &GeneratorClient{
		generateURL: strings.TrimSuffix(baseURL, "/") + "/generate",
		apiKey:      apiKey,
		category:    category,
		httpClient:  httpClient,
	}
}

type generatorRequest struct {
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
	Seed       string `json:"seed"`
}

type generatedQuestion struct {
	Prompt     string `json:"prompt"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

type generatorResponse struct {
	Questions []generatedQuestion `json:"questions"`
}

// Fetch requests amount questions. Each call sends a new seed so repeated
// batches differ. Items missing a category or difficulty inherit the request's.
func (c *GeneratorClient) Fetch(ctx context.Context, amount int, difficulty string) ([]Item, error) {
	body, err := json.Marshal(generatorRequest{
		Category:   c.category,
		Difficulty: difficulty,
		Count:      amount,
		Seed:       uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.generateURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("generator returned status %d", resp.StatusCode)
	}

	var payload generatorResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode generator payload: %w", err)
	}

	items := make([]Item, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		item := Item{
			Source:     SourceGenerator,
			Category:   q.Category,
			Difficulty: q.Difficulty,
			Question:   q.Prompt,
			Answer:     q.Answer,
		}
		if item.Category == "" {
			item.Category = c.category
		}
		if item.Difficulty == "" {
			item.Difficulty = difficulty
		}
		items = append(items, item)
	}
	return items, nil
}
