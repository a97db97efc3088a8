package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameType names the scoring ruleset for a game
type GameType string

const GameTypeManillen GameType = "manillen"

// Game is a single score-card game. Players is a fixed-length snapshot
// ({2,3,4} entries) taken at creation; Scores is a cache of the score
// fold over Rounds and is recomputed, never hand-edited, whenever the
// ledger changes. Once IsEnded is set the rounds and scores are frozen
// and only deletion is permitted.
type Game struct {
	ID      GameID   `json:"id"`
	Type    GameType `json:"type"`
	Players []Player `json:"players"`
	Scores  []int    `json:"scores"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Rounds []Round `json:"rounds"`

	IsEnded bool `json:"isEnded"`
}

// PlayerCount returns the number of players; fixed for the lifetime
// of the game.
func (g *Game) PlayerCount() int {
	return len(g.Players)
}

// PlayerIndex returns the index of the given player in the game's
// snapshot, or -1 if the player is not in this game.
func (g *Game) PlayerIndex(id PlayerID) int {
	for i, p := range g.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// HasPlayer reports whether the player appears in this game
func (g *Game) HasPlayer(id PlayerID) bool {
	return g.PlayerIndex(id) >= 0
}

// OpenRound returns the trailing round if it has no points recorded
// yet, or nil when every round is scored.
func (g *Game) OpenRound() *Round {
	if len(g.Rounds) == 0 {
		return nil
	}
	last := &g.Rounds[len(g.Rounds)-1]
	if last.IsOpen() {
		return last
	}
	return nil
}

// ClosedRounds returns the rounds that contribute to scores, i.e.
// every round except a trailing open one.
func (g *Game) ClosedRounds() []Round {
	closed := make([]Round, 0, len(g.Rounds))
	for _, r := range g.Rounds {
		if !r.IsOpen() {
			closed = append(closed, r)
		}
	}
	return closed
}

// RoundBySequence returns the round with the given sequence number,
// or nil if no such round exists.
func (g *Game) RoundBySequence(seq int) *Round {
	if seq < 1 || seq > len(g.Rounds) {
		return nil
	}
	return &g.Rounds[seq-1]
}
