package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pebbles-game/internal/api/apierr"
	"github.com/mcoot/pebbles-game/internal/api/handler"
	"github.com/mcoot/pebbles-game/internal/api/response"
	"github.com/mcoot/pebbles-game/internal/api/stream"
	"github.com/mcoot/pebbles-game/internal/middleware"
	"github.com/mcoot/pebbles-game/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController game.ControllerInterface
	// Hub serves the event stream. If nil, the stream endpoint is not registered.
	Hub *stream.Hub
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RequestID)
	api.Use(middleware.Recovery(cfg.Logger, apierr.PanicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	api.HandleFunc("/game", gameHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/game", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/game/actions", gameHandler.Act).Methods(http.MethodPost)

	if cfg.Hub != nil {
		api.HandleFunc("/game/events", cfg.Hub.ServeWS).Methods(http.MethodGet)
	}

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}
