package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/errors"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/service"
)

// ProgressHandler handles content access and progress endpoints.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new progress handler.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// ContentRequest identifies the user requesting course content.
type ContentRequest struct {
	UserID uint `json:"userId" query:"userId" validate:"required"`
}

// CompleteSectionRequest marks one section as completed.
type CompleteSectionRequest struct {
	UserID    uint `json:"userId" validate:"required"`
	CourseID  uint `json:"courseId" validate:"required"`
	SectionID uint `json:"sectionId" validate:"required"`
}

// ContentResponse is the combined content-and-progress view.
type ContentResponse struct {
	Success         bool        `json:"success"`
	CourseContent   interface{} `json:"courseContent"`
	CompleteModule  interface{} `json:"completeModule"`
	CertificateData interface{} `json:"certificateData"`
}

// GetContent godoc
// @Summary Serve course content to an enrolled user
// @Tags progress
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} ContentResponse
// @Failure 403 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /course/{courseId}/content [post]
func (h *ProgressHandler) GetContent(c echo.Context) error {
	courseID, err := strconv.ParseUint(c.Param("courseId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, apperrors.Fail(apperrors.ErrContentCourseNotFound))
	}

	var req ContentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Response{Success: false, Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Response{Success: false, Message: err.Error()})
	}

	content, err := h.progressService.GetContent(c.Request().Context(), req.UserID, uint(courseID))
	if err != nil {
		return c.JSON(apperrors.HTTPStatus(err), apperrors.Fail(err))
	}

	return c.JSON(http.StatusOK, ContentResponse{
		Success:         true,
		CourseContent:   content.Sections,
		CompleteModule:  content.Progress,
		CertificateData: content.Enrollment,
	})
}

// CompleteSection godoc
// @Summary Mark a section as completed
// @Tags progress
// @Accept json
// @Produce json
// @Param request body CompleteSectionRequest true "Completion marker"
// @Success 200 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /section/complete [post]
func (h *ProgressHandler) CompleteSection(c echo.Context) error {
	var req CompleteSectionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Response{Success: false, Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Response{Success: false, Message: err.Error()})
	}

	if err := h.progressService.CompleteSection(c.Request().Context(), req.UserID, req.CourseID, req.SectionID); err != nil {
		return c.JSON(apperrors.HTTPStatus(err), apperrors.Fail(err))
	}
	return c.JSON(http.StatusOK, apperrors.Response{Success: true, Message: "Section completed successfully"})
}

// ListEnrolledCourses godoc
// @Summary List the courses a user is enrolled in
// @Description Courses deleted after enrollment appear as null entries.
// @Tags progress
// @Accept json
// @Produce json
// @Param request body ContentRequest true "User id"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.Response
// @Router /courses/enrolled [post]
func (h *ProgressHandler) ListEnrolledCourses(c echo.Context) error {
	var req ContentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Response{Success: false, Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Response{Success: false, Message: err.Error()})
	}

	courses, err := h.progressService.ListEnrolledCourses(c.Request().Context(), req.UserID)
	if err != nil {
		return c.JSON(apperrors.HTTPStatus(err), apperrors.Fail(err))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": courses})
}
