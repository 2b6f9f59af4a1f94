package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{ErrCourseNotFound, http.StatusNotFound},
		{ErrContentCourseNotFound, http.StatusNotFound},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrAlreadyEnrolled, http.StatusConflict},
		{ErrUserExists, http.StatusConflict},
		{ErrNotEnrolled, http.StatusForbidden},
		{ErrProgressNotEnrolled, http.StatusBadRequest},
		{ErrSectionMismatch, http.StatusBadRequest},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{errors.New("driver: bad connection"), http.StatusInternalServerError},
		{fmt.Errorf("find course: %w", ErrCourseNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, HTTPStatus(tt.err), "status for %v", tt.err)
	}
}

func TestFailHidesInternalDetail(t *testing.T) {
	resp := Fail(errors.New("dial tcp 10.0.0.3:3306: connection refused"))
	assert.False(t, resp.Success)
	assert.Equal(t, "Internal server error", resp.Message)

	resp = Fail(ErrAlreadyEnrolled)
	assert.False(t, resp.Success)
	assert.Equal(t, ErrAlreadyEnrolled.Error(), resp.Message)
}
