//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestCategoriesAreSeeded(t *testing.T) {
	baseURL := envOrDefault("INTEGRATION_BASE_URL", "http://localhost:8080")

	status, out := doRequest(t, http.MethodGet, fmt.Sprintf("%s/categories", baseURL), nil)
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d", status)
	}
	categories, ok := out["categories"].(map[string]interface{})
	if !ok || len(categories) == 0 {
		t.Fatalf("expected seeded categories, got %v", out["categories"])
	}
	if categories["1"] != "Science" {
		t.Fatalf("expected category 1 to be Science, got %v", categories["1"])
	}
}

func TestQuestionPages(t *testing.T) {
	baseURL := envOrDefault("INTEGRATION_BASE_URL", "http://localhost:8080")

	status, out := doRequest(t, http.MethodGet, fmt.Sprintf("%s/questions?page=1", baseURL), nil)
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d", status)
	}
	questions := out["questions"].([]interface{})
	if len(questions) == 0 || len(questions) > 10 {
		t.Fatalf("expected between 1 and 10 questions, got %d", len(questions))
	}
	if out["total_questions"].(float64) < float64(len(questions)) {
		t.Fatalf("total_questions smaller than page: %v", out["total_questions"])
	}

	status, out = doRequest(t, http.MethodGet, fmt.Sprintf("%s/questions?page=1000", baseURL), nil)
	if status != http.StatusOK {
		t.Fatalf("unexpected status for page 1000: %d", status)
	}
	if len(out["questions"].([]interface{})) != 0 {
		t.Fatalf("expected empty page 1000")
	}
}

func TestCreateSearchDelete(t *testing.T) {
	baseURL := envOrDefault("INTEGRATION_BASE_URL", "http://localhost:8080")
	marker := fmt.Sprintf("IntegrationMarker%d", time.Now().UnixNano())

	id := createQuestion(t, baseURL, fmt.Sprintf("What is the %s?", marker), 2, 3)

	status, out := doRequest(t, http.MethodPost, fmt.Sprintf("%s/questions/search", baseURL), map[string]string{
		"searchTerm": marker,
	})
	if status != http.StatusOK {
		t.Fatalf("search: unexpected status %d: %v", status, out)
	}
	if out["total_questions"] != float64(1) {
		t.Fatalf("expected one search hit, got %v", out["total_questions"])
	}

	status, out = doRequest(t, http.MethodDelete, fmt.Sprintf("%s/questions/%d", baseURL, id), nil)
	if status != http.StatusOK || out["deleted"] != float64(id) {
		t.Fatalf("delete: unexpected response %d: %v", status, out)
	}

	status, out = doRequest(t, http.MethodGet, fmt.Sprintf("%s/questions/%d", baseURL, id), nil)
	expectError(t, status, out, http.StatusNotFound, "Resource not found")
}

func TestCategoryQuestions(t *testing.T) {
	baseURL := envOrDefault("INTEGRATION_BASE_URL", "http://localhost:8080")
	createQuestion(t, baseURL, fmt.Sprintf("Category probe %d?", time.Now().UnixNano()), 4, 1)

	status, out := doRequest(t, http.MethodGet, fmt.Sprintf("%s/categories/4/questions", baseURL), nil)
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d: %v", status, out)
	}
	if out["current_category"] != "4" {
		t.Fatalf("expected current_category 4, got %v", out["current_category"])
	}
	for _, raw := range out["questions"].([]interface{}) {
		if raw.(map[string]interface{})["category"] != "4" {
			t.Fatalf("question from another category: %v", raw)
		}
	}
}
