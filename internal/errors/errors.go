package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrCourseNotFound is returned when a referenced course does not exist.
	ErrCourseNotFound = errors.New("Course Not Found!")
	// ErrContentCourseNotFound is the content route's variant of the same
	// condition; the two routes report it with different wording.
	ErrContentCourseNotFound = errors.New("No such course found")
	// ErrAlreadyEnrolled is returned on a duplicate enrollment attempt.
	ErrAlreadyEnrolled = errors.New("You are already enrolled in this Course!")
	// ErrNotEnrolled is returned when content is requested without an enrollment.
	ErrNotEnrolled = errors.New("User not enrolled in this course")
	// ErrProgressNotEnrolled is returned when progress is reported without an enrollment.
	ErrProgressNotEnrolled = errors.New("User is not enrolled in the course")
	// ErrSectionMismatch is returned when the parallel section arrays differ in length.
	ErrSectionMismatch = errors.New("Section titles, descriptions and files must have the same length")
	// ErrUserExists is returned when registering an already-known email.
	ErrUserExists = errors.New("User already exists")
	// ErrUserNotFound is returned when logging in with an unknown email.
	ErrUserNotFound = errors.New("User not found")
	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// Response is the envelope every failure returns. Storage-layer detail
// never crosses this boundary.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HTTPStatus maps domain errors to HTTP status codes. Anything unknown is
// reported as an internal error.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrCourseNotFound), errors.Is(err, ErrContentCourseNotFound), errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyEnrolled), errors.Is(err, ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, ErrNotEnrolled):
		return http.StatusForbidden
	case errors.Is(err, ErrProgressNotEnrolled), errors.Is(err, ErrSectionMismatch):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidRefreshToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Fail builds the error envelope for err. Unexpected errors get a generic
// message instead of their internal detail.
func Fail(err error) Response {
	msg := err.Error()
	if HTTPStatus(err) == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	return Response{Success: false, Message: msg}
}
