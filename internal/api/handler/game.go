package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mverv/manyscore/internal/api/request"
	"github.com/mverv/manyscore/internal/api/response"
	"github.com/mverv/manyscore/internal/model"
	"github.com/mverv/manyscore/internal/services/game"
)

// GameHandler handles game lifecycle endpoints
type GameHandler struct {
	gameController game.ControllerInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController game.ControllerInterface) *GameHandler {
	return &GameHandler{
		gameController: gameController,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	playerIDs := make([]model.PlayerID, len(req.PlayerIDs))
	for i, id := range req.PlayerIDs {
		playerIDs[i] = model.PlayerID(id)
	}

	g, err := h.gameController.CreateGame(r.Context(), playerIDs, req.PlayerCount)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameController.ListGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameListFromModel(games))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	if err := h.gameController.DeleteGame(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// RecordPoints handles PUT /api/v1/games/{id}/rounds/{seq}/points
func (h *GameHandler) RecordPoints(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.GameID(vars["id"])
	sequence, err := strconv.Atoi(vars["seq"])
	if err != nil {
		WriteError(w, NewInvalidRequestError("round sequence must be a number"))
		return
	}

	var req request.RecordPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Points < 0 {
		WriteError(w, NewInvalidRequestError("points cannot be negative"))
		return
	}

	g, err := h.gameController.RecordRoundPoints(r.Context(), id, sequence, model.Side(req.Side), req.Points)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// AdvanceRound handles POST /api/v1/games/{id}/rounds
func (h *GameHandler) AdvanceRound(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.AdvanceRound(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// End handles POST /api/v1/games/{id}/end
func (h *GameHandler) End(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.EndGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}
