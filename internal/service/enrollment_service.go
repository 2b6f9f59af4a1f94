package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/cache"
	apperrors "github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/errors"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/model"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/repository"
)

// EnrollmentService records enrollments together with their payment and
// the course counter update.
type EnrollmentService interface {
	Enroll(ctx context.Context, userID, courseID uint, paymentFields map[string]interface{}) (*model.Course, error)
}

type enrollmentService struct {
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
	transactor     repository.Transactor
	cache          *cache.Client
}

// NewEnrollmentService creates a new enrollment service.
func NewEnrollmentService(
	courseRepo repository.CourseRepository,
	enrollmentRepo repository.EnrollmentRepository,
	transactor repository.Transactor,
	cache *cache.Client,
) EnrollmentService {
	return &enrollmentService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		transactor:     transactor,
		cache:          cache,
	}
}

// Enroll enrolls a user in a course. The existence and duplicate checks
// run before any write; the payment record, enrollment record and counter
// increment are then applied in a single transaction, so a failure at any
// step leaves no partial state. The unique index on (user_id, course_id)
// catches duplicate requests that race past the pre-check.
func (s *enrollmentService) Enroll(ctx context.Context, userID, courseID uint, paymentFields map[string]interface{}) (*model.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	exists, err := s.enrollmentRepo.ExistsForUserCourse(ctx, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("check enrollment: %w", err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyEnrolled
	}

	details, err := json.Marshal(paymentFields)
	if err != nil {
		return nil, fmt.Errorf("marshal payment fields: %w", err)
	}

	err = s.transactor.WithTransaction(ctx, func(ctx context.Context, repos repository.TxRepositories) error {
		payment := &model.Payment{
			UserID:   userID,
			CourseID: courseID,
			Details:  details,
		}
		if err := repos.Payments.Create(ctx, payment); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}

		enrollment := &model.Enrollment{
			UserID:       userID,
			CourseID:     courseID,
			CourseLength: len(course.Sections),
		}
		if err := repos.Enrollments.Create(ctx, enrollment); err != nil {
			return fmt.Errorf("create enrollment: %w", err)
		}

		if err := repos.Courses.IncrementEnrolled(ctx, courseID); err != nil {
			return fmt.Errorf("increment enrolled: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyEnrolled
		}
		return nil, err
	}

	_ = s.cache.Delete(ctx, courseListCacheKey)
	return course, nil
}
