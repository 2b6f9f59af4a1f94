package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/errors"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/service"
)

// EnrollmentHandler handles the enrollment endpoint.
type EnrollmentHandler struct {
	enrollmentService service.EnrollmentService
}

// NewEnrollmentHandler creates a new enrollment handler.
func NewEnrollmentHandler(enrollmentService service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// EnrollResponse represents a successful enrollment.
type EnrollResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Course  interface{} `json:"course"`
}

// Enroll godoc
// @Summary Enroll the given user in a course
// @Description The body carries userId plus arbitrary payment fields that
// @Description are recorded verbatim alongside the enrollment.
// @Tags enrollment
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} EnrollResponse
// @Failure 404 {object} errors.Response
// @Failure 409 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /enroll/{courseId} [post]
func (h *EnrollmentHandler) Enroll(c echo.Context) error {
	courseID, err := strconv.ParseUint(c.Param("courseId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, apperrors.Fail(apperrors.ErrCourseNotFound))
	}

	// The payment fields are free-form, so the body is decoded as a map
	// rather than a fixed struct.
	fields := map[string]interface{}{}
	if c.Request().Body != nil {
		if err := json.NewDecoder(c.Request().Body).Decode(&fields); err != nil {
			return c.JSON(http.StatusBadRequest, apperrors.Response{Success: false, Message: "invalid request body"})
		}
	}

	userID, ok := numericField(fields, "userId")
	if !ok {
		return c.JSON(http.StatusBadRequest, apperrors.Response{Success: false, Message: "userId is required"})
	}
	delete(fields, "userId")

	course, err := h.enrollmentService.Enroll(c.Request().Context(), userID, uint(courseID), fields)
	if err != nil {
		return c.JSON(apperrors.HTTPStatus(err), apperrors.Fail(err))
	}

	return c.JSON(http.StatusOK, EnrollResponse{
		Success: true,
		Message: "Enroll Successfully",
		Course:  echo.Map{"id": course.ID, "Title": course.Title},
	})
}

// numericField reads a uint field that clients may send as a JSON number
// or a numeric string.
func numericField(fields map[string]interface{}, key string) (uint, bool) {
	switch v := fields[key].(type) {
	case float64:
		if v > 0 {
			return uint(v), true
		}
	case string:
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil && parsed > 0 {
			return uint(parsed), true
		}
	}
	return 0, false
}
