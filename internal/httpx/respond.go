package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody carries the human-readable error message.
type ErrorBody struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON error envelope: {"error":{"message":"..."}}.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent at this point, so the response can't change.
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes a JSON error response in the ErrorResponse envelope.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: ErrorBody{Message: message}})
}

// WriteNoContent writes an empty 204 response.
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
