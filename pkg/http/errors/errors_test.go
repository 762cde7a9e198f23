package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorEnvelope(t *testing.T) {
	cases := []struct {
		name    string
		write   func(w http.ResponseWriter)
		status  int
		message string
		detail  string
	}{
		{"bad request", func(w http.ResponseWriter) { RespondBadRequest(w, "question is required") }, 400, MsgBadRequest, "question is required"},
		{"not found", func(w http.ResponseWriter) { RespondNotFound(w, "") }, 404, MsgNotFound, ""},
		{"method", RespondMethodNotAllowed, 405, MsgMethodNotAllowed, ""},
		{"unprocessable", func(w http.ResponseWriter) { RespondUnprocessable(w, "store rejected") }, 422, MsgUnprocessable, "store rejected"},
		{"internal", RespondInternalError, 500, MsgInternalServerError, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.write(rec)

			require.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.status, body.Error)
			assert.Equal(t, tc.message, body.Message)
			assert.Equal(t, tc.detail, body.Detail)
		})
	}
}

func TestStatusMessageFallsBackToStatusText(t *testing.T) {
	assert.Equal(t, http.StatusText(http.StatusTeapot), StatusMessage(http.StatusTeapot))
}
