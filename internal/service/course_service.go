package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/cache"
	apperrors "github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/errors"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/model"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/repository"
)

const (
	courseListCacheKey = "courses:all"
	courseListCacheTTL = 5 * time.Minute
)

// CreateCourseInput carries the course fields plus the parallel section
// arrays as submitted by the multipart form.
type CreateCourseInput struct {
	OwnerID             uint
	Educator            string
	Title               string
	Categories          []string
	Price               string
	Description         string
	SectionTitles       []string
	SectionDescriptions []string
	SectionFiles        []string
}

// CourseService handles the course catalog.
type CourseService interface {
	ListAll(ctx context.Context) ([]model.Course, error)
	ListForOwner(ctx context.Context, ownerID uint) ([]model.Course, error)
	Create(ctx context.Context, input CreateCourseInput) (uint, error)
	Delete(ctx context.Context, courseID uint) error
}

type courseService struct {
	courseRepo repository.CourseRepository
	cache      *cache.Client
}

// NewCourseService creates a new course service.
func NewCourseService(courseRepo repository.CourseRepository, cache *cache.Client) CourseService {
	return &courseService{courseRepo: courseRepo, cache: cache}
}

// ListAll returns every published course, served from cache when possible.
func (s *courseService) ListAll(ctx context.Context) ([]model.Course, error) {
	if data, _ := s.cache.Get(ctx, courseListCacheKey); data != nil {
		var cached []model.Course
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	if payload, err := json.Marshal(courses); err == nil {
		_ = s.cache.Set(ctx, courseListCacheKey, payload, courseListCacheTTL)
	}
	return courses, nil
}

// ListForOwner returns the courses published by one educator.
func (s *courseService) ListForOwner(ctx context.Context, ownerID uint) ([]model.Course, error) {
	courses, err := s.courseRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list owner courses: %w", err)
	}
	return courses, nil
}

// Create publishes a course, zipping the parallel section arrays into
// ordered section rows. The arrays must have equal, non-zero length.
func (s *courseService) Create(ctx context.Context, input CreateCourseInput) (uint, error) {
	n := len(input.SectionTitles)
	if n == 0 || len(input.SectionDescriptions) != n || len(input.SectionFiles) != n {
		return 0, apperrors.ErrSectionMismatch
	}

	sections := make([]model.Section, 0, n)
	for i := 0; i < n; i++ {
		sections = append(sections, model.Section{
			Position:        i,
			Title:           input.SectionTitles[i],
			Description:     input.SectionDescriptions[i],
			ContentFilename: input.SectionFiles[i],
			ContentPath:     "/uploads/" + input.SectionFiles[i],
		})
	}

	price := strings.TrimSpace(input.Price)
	if price == "" || price == "0" {
		price = model.PriceFree
	}

	categories, err := json.Marshal(input.Categories)
	if err != nil {
		return 0, fmt.Errorf("marshal categories: %w", err)
	}

	course := &model.Course{
		OwnerID:     input.OwnerID,
		Educator:    input.Educator,
		Title:       input.Title,
		Categories:  categories,
		Price:       price,
		Description: input.Description,
		Sections:    sections,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return 0, fmt.Errorf("create course: %w", err)
	}

	_ = s.cache.Delete(ctx, courseListCacheKey)
	return course.ID, nil
}

// Delete removes a course by ID. Enrollments and payments that reference
// it are kept as historical records.
func (s *courseService) Delete(ctx context.Context, courseID uint) error {
	if err := s.courseRepo.Delete(ctx, courseID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("delete course: %w", err)
	}
	_ = s.cache.Delete(ctx, courseListCacheKey)
	return nil
}
