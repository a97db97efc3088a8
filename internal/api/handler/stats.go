package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mverv/manyscore/internal/api/response"
	"github.com/mverv/manyscore/internal/model"
	"github.com/mverv/manyscore/internal/services/stats"
)

// StatsHandler handles statistics endpoints
type StatsHandler struct {
	statsService stats.ServiceInterface
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService stats.ServiceInterface) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// PlayerStats handles GET /api/v1/stats/players/{id}
func (h *StatsHandler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	st, err := h.statsService.PlayerStats(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerStatsFromModel(st))
}

// Distribution handles GET /api/v1/stats/distribution
func (h *StatsHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	counts, err := h.statsService.Distribution(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Distribution{Counts: counts})
}
