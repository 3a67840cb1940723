package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice statuses
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// InvoiceStatuses lists the accepted status literals in display order.
var InvoiceStatuses = []string{StatusPending, StatusPaid}

// Invoice row. Amount is stored in integer minor units (cents) to avoid
// floating-point currency errors; Date is an ISO calendar date set once
// at creation and never touched by updates.
type Invoice struct {
	ID          string `gorm:"primaryKey;size:36"`
	CustomerID  string `gorm:"not null;index"`
	Customer    Customer
	AmountCents int64  `gorm:"column:amount;not null"`
	Status      string `gorm:"not null"`
	Date        string `gorm:"not null;size:10"` // YYYY-MM-DD
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BeforeCreate assigns the id at the storage layer; clients never supply one.
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
