package model

import (
	"time"

	"gorm.io/datatypes"
)

// PriceFree is the sentinel stored for zero-priced courses. Any other
// submitted price is stored verbatim, without currency validation.
const PriceFree = "free"

// Course is a published course with its ordered sections and a running
// enrollment counter. Enrolled is maintained incrementally by the
// enrollment flow, never recomputed from enrollment rows.
type Course struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	OwnerID     uint           `json:"owner_id" gorm:"not null;index"`
	Educator    string         `json:"educator" gorm:"size:255"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	Categories  datatypes.JSON `json:"categories"`
	Price       string         `json:"price" gorm:"size:64"`
	Description string         `json:"description" gorm:"type:text"`
	Enrolled    int            `json:"enrolled" gorm:"not null;default:0"`
	Sections    []Section      `json:"sections" gorm:"foreignKey:CourseID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Section is one unit of course content. Uploaded content is referenced
// by filename only; the bytes are served statically under /uploads.
type Section struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	CourseID        uint   `json:"course_id" gorm:"not null;index"`
	Position        int    `json:"position" gorm:"not null"`
	Title           string `json:"title" gorm:"size:255;not null"`
	Description     string `json:"description" gorm:"type:text"`
	ContentFilename string `json:"content_filename" gorm:"size:255;not null"`
	ContentPath     string `json:"content_path" gorm:"size:512;not null"`
}
