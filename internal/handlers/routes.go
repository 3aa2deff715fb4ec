package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mariocampos1028/bankinc/internal/config"
	"github.com/mariocampos1028/bankinc/internal/middleware"
	"github.com/mariocampos1028/bankinc/internal/repository"
	"github.com/mariocampos1028/bankinc/internal/service"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	store repository.Store,
	healthChecker service.HealthChecker,
	cfg *config.Config,
	logger *slog.Logger,
) http.Handler {
	// Both engines share the per-card locks so a top-up and a purchase on
	// the same card cannot interleave.
	locks := service.NewKeyedMutex()
	cardService := service.NewCardService(store, locks, cfg.App.CardLifetimeYears)
	transactionService := service.NewTransactionService(store, locks, cfg.App.VoidWindow)

	handler := NewHandler(cardService, transactionService, healthChecker, logger)

	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", handler.GetHealth)

	r.Route("/card", func(r chi.Router) {
		r.Get("/{productId}/number", handler.IssueCard)
		r.Post("/enroll", handler.EnrollCard)
		r.Delete("/", handler.BlockCard)
		r.Post("/balance", handler.TopUpCard)
		r.Get("/balance/{cardId}", handler.GetBalance)
	})

	r.Route("/transaction", func(r chi.Router) {
		r.Post("/create", handler.CreateTransaction)
		r.Get("/{transactionId}", handler.GetTransaction)
		r.Post("/anulation", handler.VoidTransaction)
		r.Get("/card/{cardId}", handler.ListCardTransactions)
	})

	return r
}
