package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tvasilyev/rosterbook/internal/model"
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
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodePlayerNotFound   = "PLAYER_NOT_FOUND"
	CodeCommentNotFound  = "COMMENT_NOT_FOUND"
	CodePlayerExists     = "PLAYER_EXISTS"
	CodeRevisionConflict = "REVISION_CONFLICT"
	CodeInternalError    = "INTERNAL_ERROR"
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
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, ve.Error()}}
	}

	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrCommentNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeCommentNotFound, "Comment not found"}}
	case errors.Is(err, model.ErrPlayerExists):
		return &httpError{http.StatusConflict, APIError{CodePlayerExists, "Player with this id already exists"}}
	case errors.Is(err, model.ErrRevisionConflict):
		// The in-memory mutation has been applied; the client should
		// reload and retry the save explicitly.
		return &httpError{http.StatusConflict, APIError{CodeRevisionConflict, "Stored roster changed underneath this write"}}
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
