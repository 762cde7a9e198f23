package errors

import "net/http"

// Standard messages per status, kept stable for existing trivia clients.
const (
	MsgBadRequest          = "Bad Request"
	MsgNotFound            = "Resource not found"
	MsgMethodNotAllowed    = "Method not allowed"
	MsgUnprocessable       = "Unprocessable"
	MsgInternalServerError = "Internal Server Error"
)

// StatusMessage returns the standard message for the statuses the API emits.
func StatusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return MsgBadRequest
	case http.StatusNotFound:
		return MsgNotFound
	case http.StatusMethodNotAllowed:
		return MsgMethodNotAllowed
	case http.StatusUnprocessableEntity:
		return MsgUnprocessable
	case http.StatusInternalServerError:
		return MsgInternalServerError
	default:
		return http.StatusText(status)
	}
}
