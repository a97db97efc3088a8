package redis

import (
	"fmt"

	"github.com/mverv/manyscore/internal/model"
)

// Key prefix for all persisted data
const keyPrefix = "manyscore"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the SET of player keys
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// gamesIndexKey returns the Redis key for the SET of game keys
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}
