package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound  = errors.New("player not found")
	ErrEmptyPlayerName = errors.New("player name must not be empty")

	// Game setup errors
	ErrInvalidPlayerCount        = errors.New("player count must be 2, 3 or 4")
	ErrIncompletePlayerSelection = errors.New("a player must be selected for every seat")
	ErrDuplicatePlayerSelection  = errors.New("the same player cannot be selected twice")

	// Game lifecycle errors
	ErrGameNotFound        = errors.New("game not found")
	ErrGameAlreadyEnded    = errors.New("game has already ended")
	ErrOpenRoundIncomplete = errors.New("current round has no points recorded")
	ErrRoundNotFound       = errors.New("round not found")
	ErrInvalidScoringSide  = errors.New("scoring side must be A or B")

	// Persistence errors; the only category eligible for caller retry
	ErrPersistenceFailure = errors.New("failed to persist changes")
)
