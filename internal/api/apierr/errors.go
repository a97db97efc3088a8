package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mverv/manyscore/internal/model"
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
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidPlayerCount  = "INVALID_PLAYER_COUNT"
	CodeIncompleteSelection = "INCOMPLETE_PLAYER_SELECTION"
	CodeDuplicateSelection  = "DUPLICATE_PLAYER_SELECTION"
	CodeEmptyPlayerName     = "EMPTY_PLAYER_NAME"
	CodeInvalidScoringSide  = "INVALID_SCORING_SIDE"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeRoundNotFound       = "ROUND_NOT_FOUND"
	CodeGameAlreadyEnded    = "GAME_ALREADY_ENDED"
	CodeOpenRoundIncomplete = "OPEN_ROUND_INCOMPLETE"
	CodePersistenceFailure  = "PERSISTENCE_FAILURE"
	CodeInternalError       = "INTERNAL_ERROR"
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

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidPlayerCount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPlayerCount, "Player count must be 2, 3 or 4"}}
	case errors.Is(err, model.ErrIncompletePlayerSelection):
		return &httpError{http.StatusBadRequest, APIError{CodeIncompleteSelection, "A player must be selected for every seat"}}
	case errors.Is(err, model.ErrDuplicatePlayerSelection):
		return &httpError{http.StatusBadRequest, APIError{CodeDuplicateSelection, "The same player cannot take two seats"}}
	case errors.Is(err, model.ErrEmptyPlayerName):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyPlayerName, "Player name cannot be empty"}}
	case errors.Is(err, model.ErrInvalidScoringSide):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidScoringSide, "Scoring side must be 1 or 2"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrRoundNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoundNotFound, "Round not found"}}
	case errors.Is(err, model.ErrGameAlreadyEnded):
		return &httpError{http.StatusConflict, APIError{CodeGameAlreadyEnded, "Game has already ended"}}
	case errors.Is(err, model.ErrOpenRoundIncomplete):
		return &httpError{http.StatusConflict, APIError{CodeOpenRoundIncomplete, "The open round has no points recorded"}}
	case errors.Is(err, model.ErrPersistenceFailure):
		return &httpError{http.StatusServiceUnavailable, APIError{CodePersistenceFailure, "Could not persist the change, please retry"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
