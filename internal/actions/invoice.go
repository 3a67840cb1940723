// Package actions implements the form-submission entry points of the
// invoice dashboard: validate the raw fields, run a single storage
// mutation, mark the cached list view stale, and tell the caller where
// to navigate. Handlers stay thin; everything testable lives here.
package actions

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/diewo77/invoice-dashboard/internal/models"
	"github.com/diewo77/invoice-dashboard/internal/store"
)

// InvoiceListPath is the logical path of the cached invoice list view;
// mutations revalidate it and successful form posts navigate back to it.
const InvoiceListPath = "/dashboard/invoices"

// Mutation failure copy. The storage detail is appended after the prefix.
const (
	msgFillRequired = "Please fill out all required fields."
	msgCheckFields  = "Please check your input fields."
	msgCreateFailed = "Database Error: Failed to Create Invoice."
	msgUpdateFailed = "Database Error: Failed to Update Invoice."
	msgDeleteFailed = "Database Error: Failed to Delete Invoice."
)

// InvoiceStore is the storage dependency of the mutation actions.
type InvoiceStore interface {
	Insert(ctx context.Context, inv *models.Invoice) error
	Update(ctx context.Context, id string, upd store.InvoiceUpdate) error
	Delete(ctx context.Context, id string) error
}

// Revalidator marks cached output for a logical path stale.
type Revalidator interface {
	Revalidate(path string)
}

// SignInFunc verifies a credential submission via the named provider.
type SignInFunc func(ctx context.Context, provider string, data url.Values) (*models.User, error)

// Actions bundles the injected dependencies of every form handler.
type Actions struct {
	Invoices InvoiceStore
	Cache    Revalidator
	SignIn   SignInFunc
}

func New(invoices InvoiceStore, cache Revalidator, signIn SignInFunc) *Actions {
	return &Actions{Invoices: invoices, Cache: cache, SignIn: signIn}
}

// CreateInvoice validates the submission and inserts a new row. The date
// is stamped with today's UTC calendar date and the id is generated by
// the storage layer. prev is the previous form state; it only exists for
// call-shape continuity and is not consulted.
func (a *Actions) CreateInvoice(ctx context.Context, prev *State, data url.Values) Outcome {
	f, v := parseInvoiceForm(data)
	if !v.Empty() {
		return invalid(v, msgFillRequired)
	}
	inv := models.Invoice{
		CustomerID:  f.CustomerID,
		AmountCents: f.AmountCents,
		Status:      f.Status,
		Date:        time.Now().UTC().Format("2006-01-02"),
	}
	if err := a.Invoices.Insert(ctx, &inv); err != nil {
		return failed(msgCreateFailed+" "+detail(err), err)
	}
	a.Cache.Revalidate(InvoiceListPath)
	return redirect(InvoiceListPath)
}

// UpdateInvoice validates the submission and rewrites customer, amount
// and status for the row matching id. The date column keeps its value
// from creation.
func (a *Actions) UpdateInvoice(ctx context.Context, id string, prev *State, data url.Values) Outcome {
	f, v := parseInvoiceForm(data)
	if !v.Empty() {
		return invalid(v, msgCheckFields)
	}
	upd := store.InvoiceUpdate{
		CustomerID:  f.CustomerID,
		AmountCents: f.AmountCents,
		Status:      f.Status,
	}
	if err := a.Invoices.Update(ctx, id, upd); err != nil {
		return failed(msgUpdateFailed+" "+detail(err), err)
	}
	a.Cache.Revalidate(InvoiceListPath)
	return redirect(InvoiceListPath)
}

// DeleteInvoice removes the row matching id. It is invoked from within
// the list view, so success revalidates the list but does not redirect.
func (a *Actions) DeleteInvoice(ctx context.Context, id string) Outcome {
	if err := a.Invoices.Delete(ctx, id); err != nil {
		return failed(msgDeleteFailed+" "+detail(err), err)
	}
	a.Cache.Revalidate(InvoiceListPath)
	return Outcome{}
}

// detail extracts the underlying database error from a typed store error
// so the user-facing message carries the original cause.
func detail(err error) string {
	var se *store.Error
	if errors.As(err, &se) && se.Err != nil {
		return se.Err.Error()
	}
	return err.Error()
}
