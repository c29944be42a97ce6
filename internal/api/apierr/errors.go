package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/pebbles-game/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeDecodeFailure          = "DECODE_FAILURE"
	CodeInvalidConfig          = "INVALID_CONFIG"
	CodeIllegalMove            = "ILLEGAL_MOVE"
	CodeGameNotInitialized     = "GAME_NOT_INITIALIZED"
	CodeGameAlreadyInitialized = "GAME_ALREADY_INITIALIZED"
	CodeGameOver               = "GAME_OVER"
	CodeInternalError          = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status err is reported with
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Request errors carry their detail to the client
	switch {
	case errors.Is(err, model.ErrDecodeFailure):
		return &httpError{http.StatusBadRequest, APIError{CodeDecodeFailure, err.Error()}}
	case errors.Is(err, model.ErrInvalidConfig):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidConfig, err.Error()}}
	case errors.Is(err, model.ErrIllegalMove):
		return &httpError{http.StatusBadRequest, APIError{CodeIllegalMove, err.Error()}}

	case errors.Is(err, model.ErrGameNotInitialized):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotInitialized, "No game has been started"}}
	case errors.Is(err, model.ErrGameAlreadyInitialized):
		return &httpError{http.StatusConflict, APIError{CodeGameAlreadyInitialized, "A game has already been started, restart it instead"}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "The game is over, restart to play again"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

// PanicHandler writes a JSON internal error after a recovered panic
func PanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	WriteError(w, NewInternalError())
}
