package store

import (
	"context"
	"regexp"
	"strings"

	"github.com/diewo77/invoice-dashboard/internal/models"
	"gorm.io/gorm"
)

// InvoiceUpdate carries the mutable invoice columns. Date and ID are
// immutable after creation and deliberately absent.
type InvoiceUpdate struct {
	CustomerID  string
	AmountCents int64
	Status      string
}

// ListQuery mirrors the list filters exposed by the HTTP layer.
type ListQuery struct {
	Query  string
	Limit  int
	Offset int
}

// InvoiceStore persists invoices through a shared gorm connection.
type InvoiceStore struct {
	DB *gorm.DB
}

func NewInvoiceStore(db *gorm.DB) *InvoiceStore { return &InvoiceStore{DB: db} }

func (s *InvoiceStore) Insert(ctx context.Context, inv *models.Invoice) error {
	if err := s.DB.WithContext(ctx).Create(inv).Error; err != nil {
		return &Error{Op: OpCreate, Err: err}
	}
	return nil
}

// Update touches customer_id, amount and status only; the date column is
// left as written at creation.
func (s *InvoiceStore) Update(ctx context.Context, id string, upd InvoiceUpdate) error {
	err := s.DB.WithContext(ctx).Model(&models.Invoice{}).Where("id = ?", id).Updates(map[string]any{
		"customer_id": upd.CustomerID,
		"amount":      upd.AmountCents,
		"status":      upd.Status,
	}).Error
	if err != nil {
		return &Error{Op: OpUpdate, Err: err}
	}
	return nil
}

func (s *InvoiceStore) Delete(ctx context.Context, id string) error {
	if err := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Invoice{}).Error; err != nil {
		return &Error{Op: OpDelete, Err: err}
	}
	return nil
}

var safeQueryRe = regexp.MustCompile(`[^a-zA-Z0-9 \-_@.]`)

// List returns a page of invoices plus the unpaginated total. The free-text
// filter matches status or customer name, stripped to a safe character set
// before being used in a LIKE pattern.
func (s *InvoiceStore) List(ctx context.Context, q ListQuery) ([]models.Invoice, int64, error) {
	limit := q.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	dbq := s.DB.WithContext(ctx).Model(&models.Invoice{})
	if t := strings.TrimSpace(q.Query); t != "" {
		safe := safeQueryRe.ReplaceAllString(t, "")
		like := "%" + strings.ToLower(safe) + "%"
		dbq = dbq.Joins("JOIN customers ON customers.id = invoices.customer_id").
			Where("lower(invoices.status) LIKE ? OR lower(customers.name) LIKE ?", like, like)
	}
	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return nil, 0, &Error{Op: OpList, Err: err}
	}
	var invs []models.Invoice
	if err := dbq.Preload("Customer").Order("date desc, invoices.id desc").Limit(limit).Offset(q.Offset).Find(&invs).Error; err != nil {
		return nil, 0, &Error{Op: OpList, Err: err}
	}
	return invs, total, nil
}
