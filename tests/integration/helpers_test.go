//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

var client = &http.Client{Timeout: 10 * time.Second}

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// doRequest sends payload as JSON (when non-nil) and decodes the JSON response body.
func doRequest(t *testing.T, method, url string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode %s %s response: %v", method, url, err)
	}
	return resp.StatusCode, out
}

// createQuestion inserts a question and registers its deletion with t.Cleanup.
func createQuestion(t *testing.T, baseURL, text string, category, difficulty int) int {
	t.Helper()

	status, out := doRequest(t, http.MethodPost, fmt.Sprintf("%s/questions", baseURL), map[string]interface{}{
		"question":   text,
		"answer":     "integration",
		"category":   category,
		"difficulty": difficulty,
	})
	if status != http.StatusOK {
		t.Fatalf("create question: unexpected status %d: %v", status, out)
	}
	created, ok := out["created"].(float64)
	if !ok {
		t.Fatalf("create question: missing created id: %v", out)
	}

	id := int(created)
	t.Cleanup(func() {
		doRequest(t, http.MethodDelete, fmt.Sprintf("%s/questions/%d", baseURL, id), nil)
	})
	return id
}

func expectError(t *testing.T, status int, out map[string]interface{}, wantStatus int, wantMessage string) {
	t.Helper()

	if status != wantStatus {
		t.Fatalf("expected %d, got %d: %v", wantStatus, status, out)
	}
	if out["success"] != false {
		t.Fatalf("expected success=false: %v", out)
	}
	if out["error"] != float64(wantStatus) {
		t.Fatalf("expected error=%d: %v", wantStatus, out)
	}
	if out["message"] != wantMessage {
		t.Fatalf("expected message %q, got %v", wantMessage, out["message"])
	}
}
