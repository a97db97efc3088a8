package model

import (
	"encoding/json"
	"strconv"
)

// Side identifies which participant(s) of a round scored its points
type Side int

const (
	SideNone Side = 0 // open round, no points recorded yet
	SideA    Side = 1
	SideB    Side = 2
)

// MarshalJSON preserves the persisted scoringTeam encoding:
// 1 for side A, 2 for side B, null for an unscored round.
func (s Side) MarshalJSON() ([]byte, error) {
	if s == SideNone {
		return []byte("null"), nil
	}
	return json.Marshal(int(s))
}

// UnmarshalJSON accepts the persisted encoding; anything other than
// 1 or 2 reads as SideNone.
func (s *Side) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = SideNone
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	switch n {
	case 1:
		*s = SideA
	case 2:
		*s = SideB
	default:
		*s = SideNone
	}
	return nil
}

// Other returns the opposing side; SideNone has no opposite.
func (s Side) Other() Side {
	switch s {
	case SideA:
		return SideB
	case SideB:
		return SideA
	}
	return SideNone
}

// Round is one entry in a game's round ledger. Point values are kept
// as strings for compatibility with existing persisted data; reads go
// through Points, which parses defensively. At most one side's points
// are set per round, reflected by ScoringSide.
type Round struct {
	// Sequence is 1-based and equals the round's position in the
	// ledger. It is the sole input to topology resolution.
	Sequence int `json:"id"`

	SideAPoints string `json:"team1Points"`
	SideBPoints string `json:"team2Points"`

	ScoringSide Side `json:"scoringTeam"`
}

// IsOpen reports whether the round has no points recorded yet. Open
// rounds are excluded from score folds and round history.
func (r *Round) IsOpen() bool {
	return r.ScoringSide == SideNone
}

// Points returns the recorded point value for the given side.
// Missing or malformed values fold to 0 rather than failing.
func (r *Round) Points(side Side) int {
	var raw string
	switch side {
	case SideA:
		raw = r.SideAPoints
	case SideB:
		raw = r.SideBPoints
	default:
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ScoredPoints returns the points of the scoring side, or 0 for an
// open round.
func (r *Round) ScoredPoints() int {
	return r.Points(r.ScoringSide)
}
