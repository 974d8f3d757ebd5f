package server

import (
	"log"
	"net/http"
	"time"

	"github.com/kimyoungjin06/MRC-running-bingo/internal/httpmw"
)

// NewHandler assembles the full HTTP surface: the JSON API, the health
// probes, and the middleware chain around everything.
func NewHandler(app *App, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}

	mux := http.NewServeMux()
	rr := &RouteRegistry{}
	RegisterAPIRoutes(mux, rr, app)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "mrc-bingo",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		// The engine is memory-resident; ready means the catalog loaded.
		if app.Catalog == nil || app.Catalog.Len() == 0 {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "card catalog not loaded",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "mrc-bingo",
			"cards":   app.Catalog.Len(),
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(logger),
	)
}
