package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// JSON writes v as the whole response body.
func JSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// Success acknowledges a mutation with {"success": true}.
func Success(w http.ResponseWriter) {
	JSON(w, http.StatusOK, APIResponse{Success: true})
}

// Error writes a failure status with a short, generic message. Internal error
// details are logged by the caller, never sent to the client.
func Error(w http.ResponseWriter, statusCode int, message string) {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	JSON(w, statusCode, APIResponse{
		Success: false,
		Message: message,
	})
}
