package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/pebbles-game/internal/api/apierr"
	"github.com/mcoot/pebbles-game/internal/api/request"
	"github.com/mcoot/pebbles-game/internal/api/response"
	"github.com/mcoot/pebbles-game/internal/middleware"
	"github.com/mcoot/pebbles-game/internal/services/game"
)

// Request bodies are a handful of small fields
const maxBodyBytes = 4 << 10

// GameHandler handles game endpoints
type GameHandler struct {
	controller game.ControllerInterface
	logger     *slog.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller game.ControllerInterface, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		controller: controller,
		logger:     logger.With(slog.String("component", "game-handler")),
	}
}

// Start handles POST /api/v1/game
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	cfg, err := request.DecodeStart(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	event, state, err := h.controller.Init(r.Context(), cfg)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Action(w, http.StatusCreated, event, state)
}

// Act handles POST /api/v1/game/actions
func (h *GameHandler) Act(w http.ResponseWriter, r *http.Request) {
	action, err := request.DecodeAction(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	event, state, err := h.controller.Handle(r.Context(), action)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Action(w, http.StatusOK, event, state)
}

// Get handles GET /api/v1/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	state, err := h.controller.GetState(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.State(w, state)
}

// writeError logs server-side failures before writing the error response
func (h *GameHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if apierr.Status(err) >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	apierr.WriteError(w, err)
}
