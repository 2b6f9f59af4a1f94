package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/model"
)

// EnrollmentRepository defines enrollment persistence operations.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *model.Enrollment) error
	FindByUserCourse(ctx context.Context, userID, courseID uint) (*model.Enrollment, error)
	ExistsForUserCourse(ctx context.Context, userID, courseID uint) (bool, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Enrollment, error)
	AppendProgress(ctx context.Context, enrollmentID, sectionID uint) error
}

type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository creates a new enrollment repository.
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

// Create inserts a new enrollment record.
func (r *enrollmentRepository) Create(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

// FindByUserCourse finds the enrollment for a (user, course) pair with its
// progress entries in insertion order.
func (r *enrollmentRepository) FindByUserCourse(ctx context.Context, userID, courseID uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Progress", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// ExistsForUserCourse reports whether an enrollment exists for the pair.
func (r *enrollmentRepository) ExistsForUserCourse(ctx context.Context, userID, courseID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUser returns all enrollments of a user in creation order.
func (r *enrollmentRepository) ListByUser(ctx context.Context, userID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Progress", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

// AppendProgress adds one completed-section marker. Appends are plain
// inserts, so repeated completions of the same section produce repeated
// entries.
func (r *enrollmentRepository) AppendProgress(ctx context.Context, enrollmentID, sectionID uint) error {
	entry := model.ProgressEntry{
		EnrollmentID: enrollmentID,
		SectionID:    sectionID,
	}
	return r.db.WithContext(ctx).Create(&entry).Error
}
