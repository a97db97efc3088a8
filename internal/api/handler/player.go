package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mverv/manyscore/internal/api/request"
	"github.com/mverv/manyscore/internal/api/response"
	"github.com/mverv/manyscore/internal/services/game"
)

// PlayerHandler handles player registry endpoints
type PlayerHandler struct {
	gameController game.ControllerInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(gameController game.ControllerInterface) *PlayerHandler {
	return &PlayerHandler{
		gameController: gameController,
	}
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.gameController.RegisterPlayer(r.Context(), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.gameController.ListPlayers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Player, len(players))
	for i, p := range players {
		out[i] = response.PlayerFromModel(p)
	}
	response.JSON(w, http.StatusOK, out)
}
