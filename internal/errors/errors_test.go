package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"required", ErrNameEmailRequired, http.StatusBadRequest, "FIELDS_REQUIRED"},
		{"email", ErrInvalidEmail, http.StatusBadRequest, "INVALID_EMAIL"},
		{"phone", ErrInvalidPhone, http.StatusBadRequest, "INVALID_PHONE"},
		{"body", ErrInvalidBody, http.StatusBadRequest, "INVALID_BODY"},
		{"conflict", ErrMemberExists, http.StatusConflict, "MEMBER_EXISTS"},
		{"wrapped not found", fmt.Errorf("delete member: %w", ErrMemberNotFound), http.StatusNotFound, "MEMBER_NOT_FOUND"},
		{"unknown", fmt.Errorf("connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.code, httpErr.Code)
		})
	}
}

func TestMapErrorToHTTP_InternalCarriesDetails(t *testing.T) {
	httpErr := MapErrorToHTTP(fmt.Errorf("scan members: %w", fmt.Errorf("timeout")))

	resp := httpErr.ToErrorResponse()
	assert.False(t, resp.Success)
	assert.Equal(t, "internal server error", resp.Error)
	assert.Equal(t, "scan members: timeout", resp.Details)
	assert.False(t, httpErr.IsClientError())
}
