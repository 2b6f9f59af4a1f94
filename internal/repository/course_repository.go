package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/model"
)

// CourseRepository defines course persistence operations.
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	FindByID(ctx context.Context, id uint) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Course, error)
	Delete(ctx context.Context, id uint) error
	IncrementEnrolled(ctx context.Context, id uint) error
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

// Create inserts a course together with its section rows.
func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

// FindByID finds a course by ID with its sections in order.
func (r *courseRepository) FindByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("id = ?", id).First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// List returns all courses with their sections.
func (r *courseRepository) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// ListByOwner returns the courses published by one educator.
func (r *courseRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("owner_id = ?", ownerID).Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// Delete removes a course and its sections. Enrollments and payments
// referencing the course are intentionally left in place.
func (r *courseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&model.Course{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("course_id = ?", id).Delete(&model.Section{}).Error
	})
}

// IncrementEnrolled bumps the enrollment counter in place so concurrent
// enrollments never lose an update.
func (r *courseRepository) IncrementEnrolled(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Course{}).
		Where("id = ?", id).
		Update("enrolled", gorm.Expr("enrolled + ?", 1)).Error
}
