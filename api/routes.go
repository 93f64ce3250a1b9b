package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/coreybb/subscan/webutil"
)

const (
	apiBasePath   = "/api"
	scansBasePath = "/scans"
)

func SetupRoutes(scanHandler *ScanHandler) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)                                                 // Log every request
	r.Use(middleware.Recoverer)                                              // Recover from panics
	r.Use(middleware.Timeout(60 * time.Second)) // Set a timeout context for requests

	r.Route(apiBasePath, func(r chi.Router) {
		r.Post(scansBasePath, webutil.MakeHandler(scanHandler.HandleCreateScan))
	})

	// Health check endpoint
	r.Get("/healthz", handleHealthCheck)

	return r
}

// handleHealthCheck responds to a health check request.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(webutil.HeaderContentType, webutil.ContentTypeTextPlainUTF8)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
