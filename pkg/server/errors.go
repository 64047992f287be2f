package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// statusMessage is the message shown to users for an HTTP error status.
func statusMessage(code int) string {
	switch code {
	case http.StatusNotFound:
		return "The page you are looking for cannot be found"
	case http.StatusForbidden:
		return "You do not have permission to access this page"
	case http.StatusInternalServerError:
		return "Internal server error occurred"
	default:
		return "An unexpected error occurred"
	}
}

func writeJSONError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: msg}); err != nil {
		slog.Warn("failed to write error response", slog.Any("error", err))
		panic(http.ErrAbortHandler)
	}
}

// writeStatusError writes the standard message for code.
func writeStatusError(w http.ResponseWriter, code int) {
	writeJSONError(w, statusMessage(code), code)
}
