package model

import (
	"time"

	"gorm.io/datatypes"
)

// Payment records whatever transaction fields the client sent when
// enrolling. Details is stored unvalidated and is never read back by the
// enrollment or progress flows.
type Payment struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	CourseID  uint           `json:"course_id" gorm:"not null;index"`
	Details   datatypes.JSON `json:"details"`
	CreatedAt time.Time      `json:"created_at"`
}
