// Package http provides chi-compatible handler helpers and the server loop.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/chainsafe/jackpot-middleware/pkg/app/errors"
)

// HandlerFunc defines a function that returns an error for clean error handling
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// HandleError wraps an error-returning HandlerFunc into a standard http.HandlerFunc.
//
// Usage with chi:
//
//	r.Post("/guess/commit", http.HandleError(h.commitGuess))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, err)
		}
	}
}

// DefaultErrorHandler renders err as an ErrorResponse. Errors that are not
// ServiceErrors are classified by apperrors.FromGame first.
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	var svcErr *apperrors.ServiceError
	if !errors.As(apperrors.FromGame(err), &svcErr) {
		WriteJSON(w, http.StatusInternalServerError, &ErrorResponse{
			Error: "Unexpected Service Error",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	WriteJSON(w, svcErr.StatusCode(), &ErrorResponse{
		Error: svcErr.Message,
		Code:  svcErr.StatusCode(),
	})
}

// WriteJSON writes data as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
