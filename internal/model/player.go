package model

// PlayerID uniquely identifies a player
type PlayerID string

// Player is an entry in the player registry. Immutable once created;
// identity is ID. Games hold an {id,name} snapshot taken at creation,
// so a later rename does not retroactively change historical games.
type Player struct {
	ID   PlayerID `json:"id"`
	Name string   `json:"name"`
}

// PlayerStats is the aggregated cross-game view for one player
type PlayerStats struct {
	PlayerID    PlayerID
	GamesPlayed int
	Wins        int

	// WinRate is a fraction in [0,1]; 0 when no games have been played
	WinRate float64

	// ScoreSeries holds the player's effective score per game they
	// appeared in, ordered by game creation time
	ScoreSeries []int
}
