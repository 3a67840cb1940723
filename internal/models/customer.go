package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer entity referenced by invoices.
type Customer struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"not null;index"`
	Email     string `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
