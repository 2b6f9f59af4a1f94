package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/errors"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/model"
)

func TestCourseService_Create(t *testing.T) {
	tests := []struct {
		name          string
		input         CreateCourseInput
		setupMock     func(*MockCourseRepository)
		expectedError error
		checkCourse   func(*testing.T, *model.Course)
	}{
		{
			name: "zips parallel section arrays positionally",
			input: CreateCourseInput{
				OwnerID:             3,
				Title:               "Intro to Go",
				Price:               "25",
				SectionTitles:       []string{"one", "two"},
				SectionDescriptions: []string{"first", "second"},
				SectionFiles:        []string{"a.pdf", "b.pdf"},
			},
			setupMock: func(m *MockCourseRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Course")).Return(nil)
			},
			checkCourse: func(t *testing.T, course *model.Course) {
				assert.Len(t, course.Sections, 2)
				assert.Equal(t, 0, course.Sections[0].Position)
				assert.Equal(t, "one", course.Sections[0].Title)
				assert.Equal(t, "first", course.Sections[0].Description)
				assert.Equal(t, "/uploads/a.pdf", course.Sections[0].ContentPath)
				assert.Equal(t, 1, course.Sections[1].Position)
				assert.Equal(t, "b.pdf", course.Sections[1].ContentFilename)
				assert.Equal(t, "25", course.Price)
			},
		},
		{
			name: "single section wraps as one-element sequence",
			input: CreateCourseInput{
				OwnerID:             3,
				Title:               "One Lesson Wonder",
				Price:               "0",
				SectionTitles:       []string{"only"},
				SectionDescriptions: []string{"the only one"},
				SectionFiles:        []string{"only.mp4"},
			},
			setupMock: func(m *MockCourseRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Course")).Return(nil)
			},
			checkCourse: func(t *testing.T, course *model.Course) {
				assert.Len(t, course.Sections, 1)
				assert.Equal(t, model.PriceFree, course.Price)
			},
		},
		{
			name: "mismatched section arrays are rejected before any write",
			input: CreateCourseInput{
				OwnerID:             3,
				Title:               "Broken",
				SectionTitles:       []string{"one", "two"},
				SectionDescriptions: []string{"first"},
				SectionFiles:        []string{"a.pdf", "b.pdf"},
			},
			setupMock:     func(m *MockCourseRepository) {},
			expectedError: apperrors.ErrSectionMismatch,
		},
		{
			name: "no sections at all is rejected",
			input: CreateCourseInput{
				OwnerID: 3,
				Title:   "Empty",
			},
			setupMock:     func(m *MockCourseRepository) {},
			expectedError: apperrors.ErrSectionMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCourseRepository)
			tt.setupMock(mockRepo)

			service := NewCourseService(mockRepo, nil)
			_, err := service.Create(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				created := mockRepo.Calls[0].Arguments.Get(1).(*model.Course)
				tt.checkCourse(t, created)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCourseService_Delete(t *testing.T) {
	t.Run("deletes an existing course", func(t *testing.T) {
		mockRepo := new(MockCourseRepository)
		mockRepo.On("Delete", mock.Anything, uint(7)).Return(nil)

		service := NewCourseService(mockRepo, nil)
		assert.NoError(t, service.Delete(context.Background(), 7))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing course maps to not found", func(t *testing.T) {
		mockRepo := new(MockCourseRepository)
		mockRepo.On("Delete", mock.Anything, uint(999)).Return(gorm.ErrRecordNotFound)

		service := NewCourseService(mockRepo, nil)
		err := service.Delete(context.Background(), 999)
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})
}

func TestCourseService_ListForOwner(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	mockRepo.On("ListByOwner", mock.Anything, uint(3)).Return([]model.Course{
		{ID: 7, OwnerID: 3, Title: "Intro to Go"},
	}, nil)

	service := NewCourseService(mockRepo, nil)
	courses, err := service.ListForOwner(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, courses, 1)
	assert.Equal(t, uint(3), courses[0].OwnerID)
}
