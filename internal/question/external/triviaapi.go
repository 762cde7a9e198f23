package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// TriviaAPIClient integrates with the-trivia-api.com. The key is optional.
type TriviaAPIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewTriviaAPIClient(baseURL, apiKey string, httpClient *http.Client) *TriviaAPIClient {
	if baseURL == "" {
		baseURL = "https://the-trivia-api.com/api"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &TriviaAPIClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type triviaAPIQuestion struct {
	Category   string `json:"category"`
	Question   string `json:"question"`
	Difficulty string `json:"difficulty"`
	Correct    string `json:"correctAnswer"`
}

func (c *TriviaAPIClient) Fetch(ctx context.Context, amount int, difficulty string) ([]Item, error) {
	values := url.Values{}
	values.Set("limit", strconv.Itoa(amount))
	if difficulty != "" {
		values.Set("difficulty", difficulty)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/questions?%s", c.baseURL, values.Encode()), nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("triviaapi non-200: %d", resp.StatusCode)
	}

	var payload []triviaAPIQuestion
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(payload))
	for _, q := range payload {
		items = append(items, Item{
			Source:     SourceTriviaAPI,
			Category:   q.Category,
			Difficulty: q.Difficulty,
			Question:   q.Question,
			Answer:     q.Correct,
		})
	}
	return items, nil
}
