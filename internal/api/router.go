package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mverv/manyscore/internal/api/apierr"
	"github.com/mverv/manyscore/internal/api/handler"
	"github.com/mverv/manyscore/internal/middleware"
	"github.com/mverv/manyscore/internal/services/game"
	"github.com/mverv/manyscore/internal/services/stats"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
	StatsService   *stats.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.GameController)
	gameHandler := handler.NewGameHandler(cfg.GameController)
	statsHandler := handler.NewStatsHandler(cfg.StatsService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, apiPanicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	// Player registry
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)

	// Game lifecycle
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/rounds", gameHandler.AdvanceRound).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/rounds/{seq}/points", gameHandler.RecordPoints).Methods(http.MethodPut)
	api.HandleFunc("/games/{id}/end", gameHandler.End).Methods(http.MethodPost)

	// Statistics
	api.HandleFunc("/stats/players/{id}", statsHandler.PlayerStats).Methods(http.MethodGet)
	api.HandleFunc("/stats/distribution", statsHandler.Distribution).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
