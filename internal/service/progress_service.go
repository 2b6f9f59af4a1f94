package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/errors"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/model"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/repository"
)

// CourseContent is the combined content-and-progress view served to an
// enrolled user. The enrollment record doubles as certificate data.
type CourseContent struct {
	Sections   []model.Section
	Progress   []model.ProgressEntry
	Enrollment *model.Enrollment
}

// ProgressService tracks section completion for enrolled users.
type ProgressService interface {
	GetContent(ctx context.Context, userID, courseID uint) (*CourseContent, error)
	CompleteSection(ctx context.Context, userID, courseID, sectionID uint) error
	ListEnrolledCourses(ctx context.Context, userID uint) ([]*model.Course, error)
}

type progressService struct {
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
}

// NewProgressService creates a new progress service.
func NewProgressService(courseRepo repository.CourseRepository, enrollmentRepo repository.EnrollmentRepository) ProgressService {
	return &progressService{courseRepo: courseRepo, enrollmentRepo: enrollmentRepo}
}

// GetContent returns the course sections and the caller's progress. Only
// users with an enrollment record for the course may see its content.
func (s *progressService) GetContent(ctx context.Context, userID, courseID uint) (*CourseContent, error) {
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContentCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	enrollment, err := s.enrollmentRepo.FindByUserCourse(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotEnrolled
		}
		return nil, fmt.Errorf("find enrollment: %w", err)
	}

	return &CourseContent{
		Sections:   course.Sections,
		Progress:   enrollment.Progress,
		Enrollment: enrollment,
	}, nil
}

// CompleteSection appends one completed-section marker to the user's
// progress. Completing the same section twice appends two entries.
func (s *progressService) CompleteSection(ctx context.Context, userID, courseID, sectionID uint) error {
	enrollment, err := s.enrollmentRepo.FindByUserCourse(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProgressNotEnrolled
		}
		return fmt.Errorf("find enrollment: %w", err)
	}

	if err := s.enrollmentRepo.AppendProgress(ctx, enrollment.ID, sectionID); err != nil {
		return fmt.Errorf("append progress: %w", err)
	}
	return nil
}

// ListEnrolledCourses resolves each enrollment of the user to its course,
// in enrollment order. A course deleted after enrollment leaves a nil
// slot; callers must tolerate the hole.
func (s *progressService) ListEnrolledCourses(ctx context.Context, userID uint) ([]*model.Course, error) {
	enrollments, err := s.enrollmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}

	courses := make([]*model.Course, 0, len(enrollments))
	for _, enrollment := range enrollments {
		course, err := s.courseRepo.FindByID(ctx, enrollment.CourseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				courses = append(courses, nil)
				continue
			}
			return nil, fmt.Errorf("find course %d: %w", enrollment.CourseID, err)
		}
		courses = append(courses, course)
	}
	return courses, nil
}
