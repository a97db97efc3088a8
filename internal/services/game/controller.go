package game

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/mverv/manyscore/internal/dependencies/clock"
	"github.com/mverv/manyscore/internal/dependencies/random"
	"github.com/mverv/manyscore/internal/model"
	"github.com/mverv/manyscore/internal/services/scoring"
	"github.com/mverv/manyscore/internal/storage"
)

// Controller owns the game lifecycle: player registration, game
// creation, round recording and the end/delete transitions. Every
// mutation re-folds the cached scores from the full round ledger
// before persisting, so the cache can never drift from the rounds.
type Controller struct {
	storage storage.Storage
	scoring *scoring.Service
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	scoring *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		scoring: scoring,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// RegisterPlayer adds a named player to the registry
func (c *Controller) RegisterPlayer(ctx context.Context, name string) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrEmptyPlayerName
	}

	player := &model.Player{
		ID:   model.PlayerID(c.random.ID()),
		Name: name,
	}

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, persistErr(err)
	}

	c.logger.Info("player registered",
		slog.String("player_id", string(player.ID)),
		slog.String("name", player.Name),
	)

	return player, nil
}

// ListPlayers returns every registered player, sorted by name
func (c *Controller) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	players, err := c.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(players, func(i, j int) bool {
		if players[i].Name != players[j].Name {
			return players[i].Name < players[j].Name
		}
		return players[i].ID < players[j].ID
	})
	return players, nil
}

// CreateGame starts a new game for exactly playerCount distinct
// registered players. The game begins with one open round and zeroed
// scores; the player count is fixed for the game's lifetime.
func (c *Controller) CreateGame(ctx context.Context, playerIDs []model.PlayerID, playerCount int) (*model.Game, error) {
	if playerCount < 2 || playerCount > 4 {
		return nil, model.ErrInvalidPlayerCount
	}
	if len(playerIDs) != playerCount {
		return nil, model.ErrIncompletePlayerSelection
	}

	seen := make(map[model.PlayerID]bool, len(playerIDs))
	for _, id := range playerIDs {
		if seen[id] {
			return nil, model.ErrDuplicatePlayerSelection
		}
		seen[id] = true
	}

	// Snapshot id and name from the registry; later renames do not
	// retroactively change this game.
	players := make([]model.Player, len(playerIDs))
	for i, id := range playerIDs {
		player, err := c.storage.GetPlayer(ctx, id)
		if err != nil {
			return nil, err
		}
		players[i] = *player
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:        model.GameID(c.random.ID()),
		Type:      model.GameTypeManillen,
		Players:   players,
		Scores:    make([]int, playerCount),
		Rounds:    []model.Round{{Sequence: 1}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, persistErr(err)
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("player_count", playerCount),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// ListGames returns all games, most recently created first
func (c *Controller) ListGames(ctx context.Context) ([]*model.Game, error) {
	games, err := c.storage.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(games, func(i, j int) bool {
		if !games[i].CreatedAt.Equal(games[j].CreatedAt) {
			return games[i].CreatedAt.After(games[j].CreatedAt)
		}
		return games[i].ID < games[j].ID
	})
	return games, nil
}

// RecordRoundPoints records points for one side of a round and
// re-folds the game's scores. The round keeps exactly one scoring
// side: recording for a side clears the other side's points. Editing
// a past round ripples into the cumulative scores via the re-fold.
func (c *Controller) RecordRoundPoints(ctx context.Context, gameID model.GameID, sequence int, side model.Side, points int) (*model.Game, error) {
	if side != model.SideA && side != model.SideB {
		return nil, model.ErrInvalidScoringSide
	}
	if points < 0 {
		points = 0
	}

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsEnded {
		return nil, model.ErrGameAlreadyEnded
	}

	round := game.RoundBySequence(sequence)
	if round == nil {
		// The open round normally already exists; tolerate recording
		// into the next slot directly after it was closed out.
		if sequence != len(game.Rounds)+1 {
			return nil, model.ErrRoundNotFound
		}
		game.Rounds = append(game.Rounds, model.Round{Sequence: sequence})
		round = &game.Rounds[len(game.Rounds)-1]
	}

	value := strconv.Itoa(points)
	if side == model.SideA {
		round.SideAPoints = value
		round.SideBPoints = ""
	} else {
		round.SideBPoints = value
		round.SideAPoints = ""
	}
	round.ScoringSide = side

	if err := c.refold(game); err != nil {
		return nil, err
	}
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, persistErr(err)
	}

	return game, nil
}

// AdvanceRound appends a new open round. The current trailing round
// must have a scoring side recorded first.
func (c *Controller) AdvanceRound(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsEnded {
		return nil, model.ErrGameAlreadyEnded
	}
	if len(game.Rounds) > 0 && game.Rounds[len(game.Rounds)-1].IsOpen() {
		return nil, model.ErrOpenRoundIncomplete
	}

	game.Rounds = append(game.Rounds, model.Round{Sequence: len(game.Rounds) + 1})

	if err := c.refold(game); err != nil {
		return nil, err
	}
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, persistErr(err)
	}

	c.logger.Info("round advanced",
		slog.String("game_id", string(game.ID)),
		slog.Int("round", len(game.Rounds)),
	)

	return game, nil
}

// EndGame freezes a game. A trailing open round with no points is
// discarded rather than counted; final scores are re-folded from the
// remaining rounds.
func (c *Controller) EndGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsEnded {
		return nil, model.ErrGameAlreadyEnded
	}

	if open := game.OpenRound(); open != nil {
		game.Rounds = game.Rounds[:len(game.Rounds)-1]
	}

	if err := c.refold(game); err != nil {
		return nil, err
	}
	game.IsEnded = true
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, persistErr(err)
	}

	c.logger.Info("game ended",
		slog.String("game_id", string(game.ID)),
		slog.Int("rounds", len(game.Rounds)),
	)

	return game, nil
}

// DeleteGame removes a game; deleting a non-existent id is not an error
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return persistErr(err)
	}

	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

// refold recomputes the cached scores from the full round ledger
func (c *Controller) refold(game *model.Game) error {
	scores, err := c.scoring.FoldScores(game.PlayerCount(), game.Rounds)
	if err != nil {
		return err
	}
	game.Scores = scores
	return nil
}

// persistErr marks a failed storage write as retryable for callers
func persistErr(err error) error {
	return fmt.Errorf("%w: %v", model.ErrPersistenceFailure, err)
}

// Interface for dependency injection
type ControllerInterface interface {
	RegisterPlayer(ctx context.Context, name string) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	CreateGame(ctx context.Context, playerIDs []model.PlayerID, playerCount int) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
	RecordRoundPoints(ctx context.Context, gameID model.GameID, sequence int, side model.Side, points int) (*model.Game, error)
	AdvanceRound(ctx context.Context, gameID model.GameID) (*model.Game, error)
	EndGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, gameID model.GameID) error
}

var _ ControllerInterface = (*Controller)(nil)
