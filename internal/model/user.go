package model

import (
	"time"
	"unicode"
	"unicode/utf8"

	"gorm.io/gorm"
)

// User roles as sent by the frontend in the registration "type" field.
const (
	RoleLearner  = "learner"
	RoleEducator = "educator"
)

// User represents a registered learner or educator.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"type" gorm:"size:20;not null;default:'learner'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeSave capitalizes the display name on every write. The first rune
// is upper-cased as a rune, not a byte, so multi-byte names stay valid.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Name != "" {
		r, size := utf8.DecodeRuneInString(u.Name)
		u.Name = string(unicode.ToUpper(r)) + u.Name[size:]
	}
	return nil
}
