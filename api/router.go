package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/raushankrgupta/virtual-tryon-api/utils"
)

// NewRouter mounts the try-on API. resultsDir, when non-empty, is also
// served directly under /static/results/ for deployments that keep
// result files on local disk.
func NewRouter(h *Handler, corsOrigin, resultsDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		utils.CORSMiddleware(corsOrigin),
		utils.LatencyMiddleware,
	)

	r.Get("/healthz", h.Health)

	r.Route("/api/v1/image", func(r chi.Router) {
		r.Post("/virtual-tryon", h.CreateTryOn)
		r.Get("/virtual-tryon", h.ListTryOns)
		r.Get("/virtual-tryon/{id}", h.GetTryOn)
		r.Delete("/virtual-tryon/{id}", h.DeleteTryOn)
		r.Get("/result/{id}", h.GetResultImage)
	})

	if resultsDir != "" {
		r.Handle("/static/results/*", http.StripPrefix("/static/results/", http.FileServer(http.Dir(resultsDir))))
	}

	return r
}
