package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User account for the credentials sign-in flow. Password holds a bcrypt hash.
type User struct {
	ID        string `gorm:"primaryKey;size:36"`
	Email     string `gorm:"not null;uniqueIndex"`
	Password  string `gorm:"not null"`
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
