package response

import (
	"time"

	"github.com/mverv/manyscore/internal/model"
	"github.com/mverv/manyscore/internal/services/topology"
)

// Player represents a player in API responses
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:   string(p.ID),
		Name: p.Name,
	}
}

// Round represents a scored or open round
type Round struct {
	Sequence    int  `json:"sequence"`
	ScoringSide *int `json:"scoring_side"`
	Points      int  `json:"points"`
	Open        bool `json:"open"`
}

// RoundFromModel converts a model.Round
func RoundFromModel(r model.Round) Round {
	round := Round{
		Sequence: r.Sequence,
		Open:     r.IsOpen(),
	}
	if r.ScoringSide != model.SideNone {
		side := int(r.ScoringSide)
		round.ScoringSide = &side
		round.Points = r.ScoredPoints()
	}
	return round
}

// TeamTotals holds the combined team scores of a four-player game
type TeamTotals struct {
	TeamA int `json:"team_a"`
	TeamB int `json:"team_b"`
}

// CurrentRound describes the open round: its side partition and whose
// input is expected next. Indices refer to the game's players slice.
type CurrentRound struct {
	Sequence int   `json:"sequence"`
	SideA    []int `json:"side_a"`
	SideB    []int `json:"side_b"`
	Turn     []int `json:"turn"`
}

// Game represents a game in API responses
type Game struct {
	ID           string        `json:"id"`
	Type         string        `json:"type"`
	Players      []Player      `json:"players"`
	Scores       []int         `json:"scores"`
	TeamTotals   *TeamTotals   `json:"team_totals,omitempty"`
	Rounds       []Round       `json:"rounds"`
	CurrentRound *CurrentRound `json:"current_round"`
	IsEnded      bool          `json:"is_ended"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// GameFromModel converts a model.Game
func GameFromModel(g *model.Game) Game {
	players := make([]Player, len(g.Players))
	for i := range g.Players {
		players[i] = PlayerFromModel(&g.Players[i])
	}

	rounds := make([]Round, len(g.Rounds))
	for i, r := range g.Rounds {
		rounds[i] = RoundFromModel(r)
	}

	resp := Game{
		ID:        string(g.ID),
		Type:      string(g.Type),
		Players:   players,
		Scores:    g.Scores,
		Rounds:    rounds,
		IsEnded:   g.IsEnded,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}

	if len(g.Scores) == 4 {
		resp.TeamTotals = &TeamTotals{
			TeamA: g.Scores[0] + g.Scores[2],
			TeamB: g.Scores[1] + g.Scores[3],
		}
	}

	if open := g.OpenRound(); open != nil {
		sides, err := topology.Resolve(g.PlayerCount(), open.Sequence)
		turn, turnErr := topology.CurrentTurn(g.PlayerCount(), open.Sequence)
		if err == nil && turnErr == nil {
			resp.CurrentRound = &CurrentRound{
				Sequence: open.Sequence,
				SideA:    sides.Members(model.SideA),
				SideB:    sides.Members(model.SideB),
				Turn:     turn,
			}
		}
	}

	return resp
}

// GameListFromModel converts a slice of games
func GameListFromModel(games []*model.Game) []Game {
	out := make([]Game, len(games))
	for i, g := range games {
		out[i] = GameFromModel(g)
	}
	return out
}

// PlayerStats represents aggregate player statistics
type PlayerStats struct {
	PlayerID    string  `json:"player_id"`
	GamesPlayed int     `json:"games_played"`
	Wins        int     `json:"wins"`
	WinRate     float64 `json:"win_rate"`
	ScoreSeries []int   `json:"score_series"`
}

// PlayerStatsFromModel converts model.PlayerStats
func PlayerStatsFromModel(s *model.PlayerStats) PlayerStats {
	return PlayerStats{
		PlayerID:    string(s.PlayerID),
		GamesPlayed: s.GamesPlayed,
		Wins:        s.Wins,
		WinRate:     s.WinRate,
		ScoreSeries: s.ScoreSeries,
	}
}

// Distribution is the breakdown of stored games by player count
type Distribution struct {
	Counts map[int]int `json:"counts"`
}
