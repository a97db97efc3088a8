package request

// CreatePlayerRequest is the request body for registering a player
type CreatePlayerRequest struct {
	Name string `json:"name"`
}

// CreateGameRequest is the request body for starting a game
type CreateGameRequest struct {
	PlayerIDs   []string `json:"player_ids"`
	PlayerCount int      `json:"player_count"`
}

// RecordPointsRequest is the request body for recording round points.
// Side is 1 or 2, matching the numbering on a physical score card.
type RecordPointsRequest struct {
	Side   int `json:"side"`
	Points int `json:"points"`
}
