package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the envelope every failed request returns.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// RespondError writes the standard envelope for status.
func RespondError(w http.ResponseWriter, status int) {
	RespondErrorWithDetail(w, status, "")
}

// RespondErrorWithDetail writes the standard envelope plus a request-specific detail.
func RespondErrorWithDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   status,
		Message: StatusMessage(status),
		Detail:  detail,
	})
}

// RespondBadRequest writes a 400 envelope.
func RespondBadRequest(w http.ResponseWriter, detail string) {
	RespondErrorWithDetail(w, http.StatusBadRequest, detail)
}

// RespondNotFound writes a 404 envelope.
func RespondNotFound(w http.ResponseWriter, detail string) {
	RespondErrorWithDetail(w, http.StatusNotFound, detail)
}

// RespondMethodNotAllowed writes a 405 envelope.
func RespondMethodNotAllowed(w http.ResponseWriter) {
	RespondError(w, http.StatusMethodNotAllowed)
}

// RespondUnprocessable writes a 422 envelope.
func RespondUnprocessable(w http.ResponseWriter, detail string) {
	RespondErrorWithDetail(w, http.StatusUnprocessableEntity, detail)
}

// RespondInternalError writes a 500 envelope. Internal details are never echoed.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError)
}
