package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNameEmailRequired is returned when name or email is missing.
	ErrNameEmailRequired = errors.New("name and email are required")
	// ErrInvalidEmail is returned when the email does not look like local@domain.tld.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrInvalidPhone is returned when the phone is not an optional +39 followed by 10 digits.
	ErrInvalidPhone = errors.New("invalid phone format")
	// ErrMemberExists is returned when the email already belongs to a member.
	ErrMemberExists = errors.New("member already exists")
	// ErrMemberNotFound is returned when no member has the given id.
	ErrMemberNotFound = errors.New("member not found")
	// ErrInvalidBody is returned when a request body is not valid JSON.
	ErrInvalidBody = errors.New("invalid JSON in request body")
	// ErrMissingID is returned when a delete path carries no member id.
	ErrMissingID = errors.New("member id is required")
	// ErrInvalidRequest is returned when an event has no method or path.
	ErrInvalidRequest = errors.New("invalid request")
)

// ErrorResponse represents a standardized error envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Details    string
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
		Success: false,
		Error:   e.Message,
		Code:    e.Code,
		Details: e.Details,
	}
}

// IsClientError reports whether the error is caused by the caller's input.
func (e *HTTPError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors become a
// 500 whose details carry the underlying fault text.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrNameEmailRequired):
		return NewHTTPError(http.StatusBadRequest, ErrNameEmailRequired.Error(), "FIELDS_REQUIRED")
	case errors.Is(err, ErrInvalidEmail):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidEmail.Error(), "INVALID_EMAIL")
	case errors.Is(err, ErrInvalidPhone):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidPhone.Error(), "INVALID_PHONE")
	case errors.Is(err, ErrInvalidBody):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidBody.Error(), "INVALID_BODY")
	case errors.Is(err, ErrMissingID):
		return NewHTTPError(http.StatusBadRequest, ErrMissingID.Error(), "MISSING_ID")
	case errors.Is(err, ErrInvalidRequest):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidRequest.Error(), "INVALID_REQUEST")
	case errors.Is(err, ErrMemberExists):
		return NewHTTPError(http.StatusConflict, ErrMemberExists.Error(), "MEMBER_EXISTS")
	case errors.Is(err, ErrMemberNotFound):
		return NewHTTPError(http.StatusNotFound, ErrMemberNotFound.Error(), "MEMBER_NOT_FOUND")
	default:
		httpErr := NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
		if err != nil {
			httpErr.Details = err.Error()
		}
		return httpErr
	}
}
