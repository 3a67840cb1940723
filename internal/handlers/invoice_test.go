package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/diewo77/invoice-dashboard/internal/actions"
	"github.com/diewo77/invoice-dashboard/internal/cache"
	"github.com/diewo77/invoice-dashboard/internal/models"
	"github.com/diewo77/invoice-dashboard/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHandlerDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Customer{}, &models.Invoice{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newInvoiceHandler(db *gorm.DB) (*InvoiceHandler, *cache.PathCache) {
	pathCache := cache.New()
	invoices := store.NewInvoiceStore(db)
	acts := actions.New(invoices, pathCache, nil)
	return NewInvoiceHandler(acts, invoices, pathCache), pathCache
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestCreateRedirectsAfterSuccess(t *testing.T) {
	db := setupHandlerDB(t)
	c := models.Customer{Name: "Acme"}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("customer: %v", err)
	}
	h, _ := newInvoiceHandler(db)

	form := url.Values{"customerId": {c.ID}, "amount": {"25.50"}, "status": {"pending"}}
	rec := httptest.NewRecorder()
	h.Create(rec, postForm("/dashboard/invoices", form))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("code = %d body=%s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != actions.InvoiceListPath {
		t.Fatalf("location = %q", loc)
	}
	var inv models.Invoice
	if err := db.First(&inv).Error; err != nil {
		t.Fatalf("row missing: %v", err)
	}
	if inv.AmountCents != 2550 {
		t.Fatalf("amount = %d", inv.AmountCents)
	}
}

func TestCreateReturnsFormStateOnValidationFailure(t *testing.T) {
	db := setupHandlerDB(t)
	h, _ := newInvoiceHandler(db)

	form := url.Values{"amount": {"-1"}, "status": {"draft"}}
	rec := httptest.NewRecorder()
	h.Create(rec, postForm("/dashboard/invoices", form))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d", rec.Code)
	}
	var state actions.State
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if state.Message != "Please fill out all required fields." {
		t.Fatalf("message = %q", state.Message)
	}
	for _, field := range []string{"customerId", "amount", "status"} {
		if len(state.Errors[field]) == 0 {
			t.Errorf("missing field error for %s: %v", field, state.Errors)
		}
	}
	var count int64
	db.Model(&models.Invoice{}).Count(&count)
	if count != 0 {
		t.Fatalf("no write expected, count = %d", count)
	}
}

func TestUpdateKeepsDate(t *testing.T) {
	db := setupHandlerDB(t)
	c := models.Customer{Name: "Acme"}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("customer: %v", err)
	}
	inv := models.Invoice{CustomerID: c.ID, AmountCents: 100, Status: models.StatusPending, Date: "2024-05-05"}
	if err := db.Create(&inv).Error; err != nil {
		t.Fatalf("invoice: %v", err)
	}
	h, _ := newInvoiceHandler(db)

	form := url.Values{"customerId": {c.ID}, "amount": {"42"}, "status": {"paid"}}
	rec := httptest.NewRecorder()
	h.Update(rec, postForm("/dashboard/invoices/update?id="+inv.ID, form))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("code = %d body=%s", rec.Code, rec.Body.String())
	}
	var got models.Invoice
	if err := db.First(&got, "id = ?", inv.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.AmountCents != 4200 || got.Status != models.StatusPaid || got.Date != "2024-05-05" {
		t.Fatalf("row: %+v", got)
	}
}

func TestUpdateRequiresID(t *testing.T) {
	db := setupHandlerDB(t)
	h, _ := newInvoiceHandler(db)
	rec := httptest.NewRecorder()
	h.Update(rec, postForm("/dashboard/invoices/update", url.Values{}))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d", rec.Code)
	}
}

func TestDeleteAnswersInPlace(t *testing.T) {
	db := setupHandlerDB(t)
	c := models.Customer{Name: "Acme"}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("customer: %v", err)
	}
	inv := models.Invoice{CustomerID: c.ID, AmountCents: 100, Status: models.StatusPaid, Date: "2024-05-05"}
	if err := db.Create(&inv).Error; err != nil {
		t.Fatalf("invoice: %v", err)
	}
	h, _ := newInvoiceHandler(db)

	rec := httptest.NewRecorder()
	h.Delete(rec, httptest.NewRequest(http.MethodPost, "/dashboard/invoices/delete?id="+inv.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d body=%s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "" {
		t.Fatalf("delete must not redirect, location = %q", loc)
	}
	var count int64
	db.Model(&models.Invoice{}).Count(&count)
	if count != 0 {
		t.Fatalf("count = %d", count)
	}
}

func TestListIsCachedUntilMutation(t *testing.T) {
	db := setupHandlerDB(t)
	c := models.Customer{Name: "Acme"}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("customer: %v", err)
	}
	h, pathCache := newInvoiceHandler(db)

	list := func() map[string]any {
		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("list code = %d", rec.Code)
		}
		var payload map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return payload
	}

	if got := list()["total"].(float64); got != 0 {
		t.Fatalf("total = %v", got)
	}
	if _, ok := pathCache.Get(actions.InvoiceListPath); !ok {
		t.Fatal("default list view should be cached after first read")
	}

	// A create through the action layer revalidates the cached view.
	form := url.Values{"customerId": {c.ID}, "amount": {"10"}, "status": {"pending"}}
	rec := httptest.NewRecorder()
	h.Create(rec, postForm("/dashboard/invoices", form))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("create code = %d", rec.Code)
	}
	if _, ok := pathCache.Get(actions.InvoiceListPath); ok {
		t.Fatal("mutation should have dropped the cached view")
	}
	if got := list()["total"].(float64); got != 1 {
		t.Fatalf("total after create = %v", got)
	}
}

func TestListFilteredVariantBypassesCache(t *testing.T) {
	db := setupHandlerDB(t)
	h, pathCache := newInvoiceHandler(db)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/dashboard/invoices?q=paid", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	if pathCache.Len() != 0 {
		t.Fatal("filtered list must not populate the path cache")
	}
}
