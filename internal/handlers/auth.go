package handlers

import (
	"net/http"

	"github.com/diewo77/invoice-dashboard/internal/actions"
	"github.com/diewo77/invoice-dashboard/internal/auth"
	"github.com/diewo77/invoice-dashboard/internal/httpx"
)

type AuthHandler struct {
	Actions *actions.Actions
}

func NewAuthHandler(a *actions.Actions) *AuthHandler { return &AuthHandler{Actions: a} }

func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/login", h.login)
	mux.HandleFunc("/logout", h.logout)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	user, msg, err := h.Actions.Authenticate(r.Context(), "", r.PostForm)
	if err != nil {
		// Uncategorized failure: not a sign-in problem, let the outer
		// layer report it as a server error.
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	if msg != "" {
		httpx.JSON(w, http.StatusUnauthorized, map[string]string{"message": msg})
		return
	}
	auth.CreateSession(w, user.ID)
	// PRG redirect (303)
	http.Redirect(w, r, actions.InvoiceListPath, http.StatusSeeOther)
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	auth.ClearSession(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
