package store

import (
	"context"

	"github.com/diewo77/invoice-dashboard/internal/models"
	"gorm.io/gorm"
)

// CustomerStore serves the customer list backing the invoice form select.
type CustomerStore struct {
	DB *gorm.DB
}

func NewCustomerStore(db *gorm.DB) *CustomerStore { return &CustomerStore{DB: db} }

func (s *CustomerStore) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.DB.WithContext(ctx).Order("name asc").Find(&customers).Error; err != nil {
		return nil, &Error{Op: OpList, Err: err}
	}
	return customers, nil
}
