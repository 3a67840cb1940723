package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/diewo77/invoice-dashboard/internal/actions"
	"github.com/diewo77/invoice-dashboard/internal/cache"
	"github.com/diewo77/invoice-dashboard/internal/httpx"
	"github.com/diewo77/invoice-dashboard/internal/store"
)

// InvoiceHandler glues the HTTP form surface to the invoice actions.
// Mutations go through Actions; reads go straight to the store, with the
// default list view served from the path cache until revalidated.
type InvoiceHandler struct {
	Actions  *actions.Actions
	Invoices *store.InvoiceStore
	Cache    *cache.PathCache
}

func NewInvoiceHandler(a *actions.Actions, inv *store.InvoiceStore, c *cache.PathCache) *InvoiceHandler {
	return &InvoiceHandler{Actions: a, Invoices: inv, Cache: c}
}

// List: GET /dashboard/invoices
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	offset := 0
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 1 {
			offset = (n - 1) * limit
		}
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))

	// Only the default view is cached under its logical path; filtered and
	// paged variants are recomputed every time.
	cacheable := q == "" && offset == 0 && limit == 50
	if cacheable {
		if payload, ok := h.Cache.Get(actions.InvoiceListPath); ok {
			httpx.JSON(w, http.StatusOK, payload)
			return
		}
	}
	invs, total, err := h.Invoices.List(r.Context(), store.ListQuery{Query: q, Limit: limit, Offset: offset})
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_invoices", nil)
		return
	}
	payload := map[string]any{"items": invs, "total": total, "limit": limit, "offset": offset}
	if cacheable {
		h.Cache.Put(actions.InvoiceListPath, payload)
	}
	httpx.JSON(w, http.StatusOK, payload)
}

// Create: POST /dashboard/invoices – form fields customerId, amount, status
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	out := h.Actions.CreateInvoice(r.Context(), nil, r.PostForm)
	h.respond(w, r, out)
}

// Update: POST /dashboard/invoices/update?id=...
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		id = r.PostForm.Get("id")
	}
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	out := h.Actions.UpdateInvoice(r.Context(), id, nil, r.PostForm)
	h.respond(w, r, out)
}

// Delete: POST /dashboard/invoices/delete?id=...
// Invoked from within the list view, so success answers in place instead
// of redirecting.
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		id = r.FormValue("id")
	}
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	out := h.Actions.DeleteInvoice(r.Context(), id)
	if !out.OK() {
		httpx.JSON(w, http.StatusInternalServerError, out.State)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
}

// respond maps a mutation outcome onto the wire: PRG redirect on success,
// 400 with the form state on validation failure, 500 when storage failed.
func (h *InvoiceHandler) respond(w http.ResponseWriter, r *http.Request, out actions.Outcome) {
	if out.OK() {
		http.Redirect(w, r, out.RedirectTo, http.StatusSeeOther)
		return
	}
	status := http.StatusBadRequest
	if out.Err != nil {
		status = http.StatusInternalServerError
	}
	httpx.JSON(w, status, out.State)
}
