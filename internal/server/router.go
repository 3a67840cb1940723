package server

import (
	"log"
	"net/http"
	"time"

	"github.com/diewo77/invoice-dashboard/internal/actions"
	"github.com/diewo77/invoice-dashboard/internal/auth"
	"github.com/diewo77/invoice-dashboard/internal/cache"
	"github.com/diewo77/invoice-dashboard/internal/handlers"
	"github.com/diewo77/invoice-dashboard/internal/httpx"
	"github.com/diewo77/invoice-dashboard/internal/store"
	"gorm.io/gorm"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(db *gorm.DB) http.Handler {
	pathCache := cache.New()
	invoices := store.NewInvoiceStore(db)
	customers := store.NewCustomerStore(db)

	signer := auth.NewService()
	signer.Register(auth.ProviderCredentials, auth.NewCredentialsProvider(db))

	acts := actions.New(invoices, pathCache, signer.SignIn)

	mux := http.NewServeMux()

	// --- Health endpoints ---
	//revive:disable:unused-parameter simple handlers intentionally ignore *http.Request
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		// Lightweight DB check (SELECT 1) – ignore detailed errors in body
		if err := db.Exec("SELECT 1").Error; err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			if _, werr := w.Write([]byte(`{"status":"degraded"}`)); werr != nil {
				_ = werr
			}
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	//revive:enable:unused-parameter

	// Auth endpoints
	handlers.NewAuthHandler(acts).Register(mux)

	// Invoice endpoints
	ih := handlers.NewInvoiceHandler(acts, invoices, pathCache)
	mux.Handle(actions.InvoiceListPath, auth.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			ih.List(w, r)
		case http.MethodPost:
			ih.Create(w, r)
		default:
			w.Header().Set("Allow", "GET,POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		}
	})))
	mux.Handle(actions.InvoiceListPath+"/update", auth.RequireAuth(postOnly(ih.Update)))
	mux.Handle(actions.InvoiceListPath+"/delete", auth.RequireAuth(postOnly(ih.Delete)))

	// Customer list for the invoice form select
	ch := handlers.NewCustomerHandler(customers)
	mux.Handle("/dashboard/customers", auth.RequireAuth(http.HandlerFunc(ch.List)))

	return auth.Middleware(withRecover(withLogging(mux)))
}

func postOnly(h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", "POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			return
		}
		h(w, r)
	})
}

// Simple middleware logging & recovery kept private to this package.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
