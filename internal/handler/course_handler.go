package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/errors"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/service"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/storage"
)

// CourseHandler handles course catalog endpoints.
type CourseHandler struct {
	courseService service.CourseService
	fileStore     storage.FileStore
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(courseService service.CourseService, fileStore storage.FileStore) *CourseHandler {
	return &CourseHandler{courseService: courseService, fileStore: fileStore}
}

// OwnerCoursesRequest identifies the educator whose courses to list.
type OwnerCoursesRequest struct {
	UserID uint `json:"userId" query:"userId" validate:"required"`
}

// ListCourses godoc
// @Summary List all courses
// @Tags courses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.Response
// @Router /courses [get]
func (h *CourseHandler) ListCourses(c echo.Context) error {
	courses, err := h.courseService.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(apperrors.HTTPStatus(err), apperrors.Fail(err))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": courses})
}

// ListMyCourses godoc
// @Summary List courses published by the given educator
// @Tags courses
// @Accept json
// @Produce json
// @Param request body OwnerCoursesRequest true "Educator user id"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.Response
// @Router /courses/mine [post]
func (h *CourseHandler) ListMyCourses(c echo.Context) error {
	var req OwnerCoursesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Response{Success: false, Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Response{Success: false, Message: err.Error()})
	}

	courses, err := h.courseService.ListForOwner(c.Request().Context(), req.UserID)
	if err != nil {
		return c.JSON(apperrors.HTTPStatus(err), apperrors.Fail(err))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "All Courses Fetched Successfully",
		"data":    courses,
	})
}

// CreateCourse godoc
// @Summary Publish a course with uploaded section content
// @Tags courses
// @Accept mpfd
// @Produce json
// @Param C_title formData string true "Course title"
// @Param C_price formData string false "Price, 0 becomes free"
// @Param S_title formData string true "Section titles, repeated"
// @Param S_content formData file true "Section content files, repeated"
// @Success 201 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /courses [post]
func (h *CourseHandler) CreateCourse(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Response{Success: false, Message: "invalid multipart form"})
	}

	ownerID, err := strconv.ParseUint(c.FormValue("userId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Response{Success: false, Message: "invalid userId"})
	}

	filenames := make([]string, 0, len(form.File["S_content"]))
	for _, fh := range form.File["S_content"] {
		name, err := h.fileStore.Save(fh)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, apperrors.Fail(err))
		}
		filenames = append(filenames, name)
	}

	input := service.CreateCourseInput{
		OwnerID:             uint(ownerID),
		Educator:            c.FormValue("C_educator"),
		Title:               c.FormValue("C_title"),
		Categories:          categoriesFromForm(form.Value["C_categories"]),
		Price:               c.FormValue("C_price"),
		Description:         c.FormValue("C_description"),
		SectionTitles:       form.Value["S_title"],
		SectionDescriptions: form.Value["S_description"],
		SectionFiles:        filenames,
	}

	if _, err := h.courseService.Create(c.Request().Context(), input); err != nil {
		return c.JSON(apperrors.HTTPStatus(err), apperrors.Fail(err))
	}
	return c.JSON(http.StatusCreated, apperrors.Response{Success: true, Message: "Course created successfully"})
}

// DeleteCourse godoc
// @Summary Delete a course by id
// @Tags courses
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /courses/{courseId} [delete]
func (h *CourseHandler) DeleteCourse(c echo.Context) error {
	courseID, err := strconv.ParseUint(c.Param("courseId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, apperrors.Fail(apperrors.ErrCourseNotFound))
	}

	if err := h.courseService.Delete(c.Request().Context(), uint(courseID)); err != nil {
		return c.JSON(apperrors.HTTPStatus(err), apperrors.Fail(err))
	}
	return c.JSON(http.StatusOK, apperrors.Response{Success: true, Message: "Course deleted successfully"})
}

// categoriesFromForm accepts either repeated C_categories fields or a
// single comma-separated value.
func categoriesFromForm(values []string) []string {
	if len(values) == 1 && strings.Contains(values[0], ",") {
		parts := strings.Split(values[0], ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	}
	return values
}
