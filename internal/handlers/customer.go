package handlers

import (
	"net/http"

	"github.com/diewo77/invoice-dashboard/internal/httpx"
	"github.com/diewo77/invoice-dashboard/internal/store"
)

// CustomerHandler serves the customer list that fills the invoice form select.
type CustomerHandler struct {
	Customers *store.CustomerStore
}

func NewCustomerHandler(cs *store.CustomerStore) *CustomerHandler {
	return &CustomerHandler{Customers: cs}
}

// List: GET /dashboard/customers
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Customers.List(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_customers", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": customers})
}
