package model

import "time"

// Enrollment links a learner to a course. The composite unique index on
// (user_id, course_id) is the authoritative duplicate guard; the
// service-level existence check is only a fast path for a friendly 409.
type Enrollment struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	UserID       uint            `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID     uint            `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseLength int             `json:"course_length" gorm:"not null"` // section count at enroll time
	Progress     []ProgressEntry `json:"progress" gorm:"foreignKey:EnrollmentID"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProgressEntry marks one completed section. Entries are append-only,
// ordered by insertion, and may repeat for the same section.
type ProgressEntry struct {
	ID           uint `json:"-" gorm:"primaryKey"`
	EnrollmentID uint `json:"-" gorm:"not null;index"`
	SectionID    uint `json:"sectionId" gorm:"not null"`
}
