package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/config"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	courseHandler *handler.CourseHandler,
	enrollmentHandler *handler.EnrollmentHandler,
	progressHandler *handler.ProgressHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded section content is served as static files; the application
	// only ever stores the reference.
	e.Static("/uploads", cfg.UploadDir)

	// Auth routes
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh", authHandler.Refresh)
	e.POST("/auth/logout", authHandler.Logout)

	// Course catalog routes
	e.GET("/courses", courseHandler.ListCourses)
	e.POST("/courses", courseHandler.CreateCourse)
	e.GET("/courses/mine", courseHandler.ListMyCourses)
	e.POST("/courses/mine", courseHandler.ListMyCourses)
	e.POST("/courses/enrolled", progressHandler.ListEnrolledCourses)
	e.DELETE("/courses/:courseId", courseHandler.DeleteCourse)

	// Enrollment and progress routes
	e.POST("/enroll/:courseId", enrollmentHandler.Enroll)
	e.GET("/course/:courseId/content", progressHandler.GetContent)
	e.POST("/course/:courseId/content", progressHandler.GetContent)
	e.POST("/section/complete", progressHandler.CompleteSection)

	// Secured routes (require JWT authentication)
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/me", authHandler.Me)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
