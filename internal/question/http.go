package question

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-bank/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-bank/pkg/http/errors"
)

// HTTPHandler exposes the question bank over REST.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs the question bank HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

// flexString accepts a JSON string or number. Trivia clients send ids and
// difficulties either way.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

type questionsRequest struct {
	SearchTerm *string    `json:"searchTerm"`
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	Category   flexString `json:"category"`
	Difficulty flexString `json:"difficulty"`
}

type quizRequest struct {
	PreviousQuestions []int `json:"previous_questions"`
	QuizCategory      *struct {
		ID   flexString `json:"id"`
		Type string     `json:"type"`
	} `json:"quiz_category"`
}

// HandleCategories serves GET /categories.
func (h *HTTPHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.respondServiceError(r.Context(), w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": CategoryLabels(categories),
	})
}

// HandleQuestions serves GET /questions?page=N and POST /questions. The POST form
// searches when searchTerm is present and creates a question otherwise.
func (h *HTTPHandler) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listQuestions(w, r)
	case http.MethodPost:
		var req questionsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httperrors.RespondBadRequest(w, "invalid JSON payload")
			return
		}
		if req.SearchTerm != nil {
			h.search(w, r, *req.SearchTerm)
			return
		}
		h.create(w, r, req)
	default:
		httperrors.RespondMethodNotAllowed(w)
	}
}

// HandleSearch serves POST /questions/search.
func (h *HTTPHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	var req questionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, "invalid JSON payload")
		return
	}
	if req.SearchTerm == nil {
		httperrors.RespondBadRequest(w, "searchTerm is required")
		return
	}
	h.search(w, r, *req.SearchTerm)
}

// HandleQuestion serves GET and DELETE /questions/{id}.
func (h *HTTPHandler) HandleQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w, "question id must be an integer")
		return
	}

	switch r.Method {
	case http.MethodGet:
		q, err := h.svc.GetQuestion(r.Context(), id)
		if err != nil {
			h.respondServiceError(r.Context(), w, err)
			return
		}
		h.respondJSON(w, http.StatusOK, map[string]interface{}{
			"success":  true,
			"question": q,
		})
	case http.MethodDelete:
		deleted, err := h.svc.DeleteQuestion(r.Context(), id)
		if err != nil {
			h.respondServiceError(r.Context(), w, err)
			return
		}
		h.respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"deleted": deleted,
		})
	default:
		httperrors.RespondMethodNotAllowed(w)
	}
}

// HandleCategoryQuestions serves GET /categories/{id}/questions.
func (h *HTTPHandler) HandleCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	result, err := h.svc.QuestionsByCategory(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondServiceError(r.Context(), w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.TotalQuestions,
		"current_category": result.CurrentCategory,
	})
}

// HandleQuiz serves POST /quizzes. Once the pool is used up it answers with a null
// question and exhausted=true so clients can end the round.
func (h *HTTPHandler) HandleQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, "invalid JSON payload")
		return
	}
	if req.QuizCategory == nil {
		httperrors.RespondBadRequest(w, "quiz_category is required")
		return
	}
	categoryID, err := strconv.Atoi(string(req.QuizCategory.ID))
	if err != nil {
		httperrors.RespondBadRequest(w, "quiz_category.id must be an integer")
		return
	}

	q, err := h.svc.DrawQuizQuestion(r.Context(), QuizRequest{
		CategoryID:  categoryID,
		PreviousIDs: req.PreviousQuestions,
	})
	if errors.Is(err, ErrPoolExhausted) {
		h.respondJSON(w, http.StatusOK, map[string]interface{}{
			"success":   true,
			"question":  nil,
			"exhausted": true,
		})
		return
	}
	if err != nil {
		h.respondServiceError(r.Context(), w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": q,
	})
}

// HandleNotFound answers unknown routes with the JSON 404 envelope.
func (h *HTTPHandler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	httperrors.RespondNotFound(w, "")
}

func (h *HTTPHandler) listQuestions(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}

	result, err := h.svc.ListQuestions(r.Context(), page)
	if err != nil {
		h.respondServiceError(r.Context(), w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.TotalQuestions,
		"categories":       result.Categories,
		"current_category": nil,
	})
}

func (h *HTTPHandler) search(w http.ResponseWriter, r *http.Request, term string) {
	result, err := h.svc.SearchQuestions(r.Context(), term)
	if err != nil {
		h.respondServiceError(r.Context(), w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.TotalQuestions,
		"current_category": nil,
	})
}

func (h *HTTPHandler) create(w http.ResponseWriter, r *http.Request, req questionsRequest) {
	id, err := h.svc.CreateQuestion(r.Context(), NewQuestion{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   string(req.Category),
		Difficulty: string(req.Difficulty),
	})
	if err != nil {
		h.respondServiceError(r.Context(), w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"created": id,
	})
}

func (h *HTTPHandler) respondServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrBadRequest):
		httperrors.RespondBadRequest(w, err.Error())
	case errors.Is(err, ErrNotFound):
		httperrors.RespondNotFound(w, err.Error())
	case errors.Is(err, ErrUnprocessable):
		httperrors.RespondUnprocessable(w, err.Error())
	default:
		logging.FromContext(ctx, h.logger).Error().Err(err).Msg("request failed")
		httperrors.RespondInternalError(w)
	}
}

func (h *HTTPHandler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn().Err(err).Msg("failed to encode response")
	}
}
