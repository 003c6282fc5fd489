package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated is returned when no valid caller identity exists.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrUnauthorized is returned when the caller's role is insufficient.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrLandmarkNotFound is returned when a landmark is not found.
	ErrLandmarkNotFound = errors.New("landmark not found")
	// ErrIncidentNotFound is returned when an incident is not found.
	ErrIncidentNotFound = errors.New("incident not found")
	// ErrIncidentNotActive is returned when resolving an incident that is
	// already resolved or past its expiry.
	ErrIncidentNotActive = errors.New("incident is not active")
	// ErrInvalidSubmission is returned when a submission fails validation.
	ErrInvalidSubmission = errors.New("invalid submission")
	// ErrInvalidCoordinates is returned when latitude/longitude do not parse
	// as finite numbers.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Authorization failures
// map to 401/403 and abort the whole operation; the rest are business-level
// results the presentation layer can show inline.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusForbidden, err.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrProfileNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROFILE_NOT_FOUND")
	case errors.Is(err, ErrLandmarkNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "LANDMARK_NOT_FOUND")
	case errors.Is(err, ErrIncidentNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "INCIDENT_NOT_FOUND")
	case errors.Is(err, ErrIncidentNotActive):
		return NewHTTPError(http.StatusConflict, err.Error(), "INCIDENT_NOT_ACTIVE")
	case errors.Is(err, ErrInvalidSubmission):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_SUBMISSION")
	case errors.Is(err, ErrInvalidCoordinates):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_COORDINATES")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
