package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter wires the account routes. The customer is always addressed by
// the {cpf} path segment.
func NewRouter(h *Handler, logger *zap.Logger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/accounts", func(ar chi.Router) {
		ar.Post("/", h.CreateAccount)

		ar.Route("/{cpf}", func(cr chi.Router) {
			cr.Get("/", h.GetAccount)
			cr.Put("/", h.UpdateAccount)
			cr.Delete("/", h.DeleteAccount)

			cr.Get("/balance", h.GetBalance)
			cr.Get("/statement", h.GetStatement)
			cr.Get("/statement/date", h.GetStatementByDate)

			cr.Post("/deposit", h.Deposit)
			cr.Post("/withdraw", h.Withdraw)
		})
	})

	return r
}
