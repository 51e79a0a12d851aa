package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"courier-dispatch/internal/http/handlers"
	"courier-dispatch/internal/http/middleware"
	"courier-dispatch/internal/http/middleware/ratelimit"
	"courier-dispatch/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(
	logger logx.Logger,
	h *handlers.Handlers,
	dispatch *handlers.DispatchHandler,
	reports *handlers.ReportsHandler,
	limiter *ratelimit.Middleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Observability(logger))
	if limiter != nil {
		r.Use(limiter.Handler())
	}

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/couriers", func(r chi.Router) {
		r.Post("/add", dispatch.Create)
		r.Put("/update-status/{id}", dispatch.UpdateStatus)
		r.Get("/status/{id}", dispatch.GetStatus)
		r.Get("/{id}/logs", dispatch.Logs)
		r.Get("/", dispatch.List)
		r.Get("/data/users", dispatch.ListUsers)
		r.Get("/data/admins", dispatch.ListAdmins)
		r.Delete("/{id}", dispatch.Delete)
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/join", reports.Join)
		r.Get("/nested", reports.Membership)
		r.Get("/aggregate", reports.Aggregate)
		r.Get("/admin-performance", reports.AdminPerformance)
		r.Get("/customer-activity", reports.CustomerActivity)
	})

	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
