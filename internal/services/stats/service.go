package stats

import (
	"context"
	"sort"

	"github.com/mverv/manyscore/internal/model"
	"github.com/mverv/manyscore/internal/services/scoring"
	"github.com/mverv/manyscore/internal/storage"
)

// Service derives per-player statistics and format distribution from
// the stored game history. Open games count in the totals; nothing is
// precomputed, every call reads the ledger fresh.
type Service struct {
	storage storage.Storage
	scoring *scoring.Service
}

// NewService creates a new stats Service
func NewService(storage storage.Storage, scoring *scoring.Service) *Service {
	return &Service{
		storage: storage,
		scoring: scoring,
	}
}

// PlayerStats computes aggregate statistics for a single player
func (s *Service) PlayerStats(ctx context.Context, playerID model.PlayerID) (*model.PlayerStats, error) {
	if _, err := s.storage.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	games, err := s.storage.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(games, func(i, j int) bool {
		if !games[i].CreatedAt.Equal(games[j].CreatedAt) {
			return games[i].CreatedAt.Before(games[j].CreatedAt)
		}
		return games[i].ID < games[j].ID
	})

	stats := &model.PlayerStats{
		PlayerID:    playerID,
		ScoreSeries: []int{},
	}
	for _, game := range games {
		idx := game.PlayerIndex(playerID)
		if idx < 0 {
			continue
		}
		stats.GamesPlayed++
		if s.scoring.IsWinner(game, idx) {
			stats.Wins++
		}
		stats.ScoreSeries = append(stats.ScoreSeries, s.scoring.EffectiveScore(game, idx))
	}

	if stats.GamesPlayed > 0 {
		stats.WinRate = float64(stats.Wins) / float64(stats.GamesPlayed)
	}

	return stats, nil
}

// Distribution counts stored games by player count
func (s *Service) Distribution(ctx context.Context) (map[int]int, error) {
	games, err := s.storage.ListGames(ctx)
	if err != nil {
		return nil, err
	}

	dist := make(map[int]int)
	for _, game := range games {
		dist[game.PlayerCount()]++
	}
	return dist, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	PlayerStats(ctx context.Context, playerID model.PlayerID) (*model.PlayerStats, error)
	Distribution(ctx context.Context) (map[int]int, error)
}

var _ ServiceInterface = (*Service)(nil)
