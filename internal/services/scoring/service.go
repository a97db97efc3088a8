package scoring

import (
	"github.com/mverv/manyscore/internal/model"
	"github.com/mverv/manyscore/internal/services/topology"
)

// Service computes per-player scores from a game's round ledger.
//
// Scores are always derived by folding the full ledger; nothing here
// patches a running total. Edits to any past round therefore ripple
// into the cumulative scores without drift.
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// FoldScores folds the rounds into per-player cumulative scores.
//
// For each round with a scoring side, the side membership for that
// round's sequence number is resolved and the round's full point value
// is credited to every member of the scoring side: in a 3-player game
// a pair win credits both pair members, in a 4-player game both
// teammates are credited (team score, not split). Open rounds are
// skipped. The result always has one entry per player, even when no
// rounds have been scored.
func (s *Service) FoldScores(playerCount int, rounds []model.Round) ([]int, error) {
	scores := make([]int, playerCount)

	for _, round := range rounds {
		if round.IsOpen() {
			continue
		}

		sides, err := topology.Resolve(playerCount, round.Sequence)
		if err != nil {
			return nil, err
		}

		points := round.ScoredPoints()
		for _, idx := range sides.Members(round.ScoringSide) {
			scores[idx] += points
		}
	}

	return scores, nil
}

// TeamTotals derives the 4-player display totals from per-player
// scores. Per-player values stay the stored representation so that
// individual breakdowns remain available.
func (s *Service) TeamTotals(scores []int) (teamA, teamB int) {
	if len(scores) != 4 {
		return 0, 0
	}
	return scores[0] + scores[2], scores[1] + scores[3]
}

// EffectiveScore returns the value used for win and ranking
// comparisons: the player's own score in 2- and 3-player games, the
// summed team score in 4-player games.
func (s *Service) EffectiveScore(game *model.Game, playerIdx int) int {
	if playerIdx < 0 || playerIdx >= len(game.Scores) {
		return 0
	}
	if game.PlayerCount() == 4 {
		teamA, teamB := s.TeamTotals(game.Scores)
		if playerIdx%2 == 0 {
			return teamA
		}
		return teamB
	}
	return game.Scores[playerIdx]
}

// IsWinner reports whether the player's effective score strictly
// exceeds the best opposing effective score. Ties are not wins.
func (s *Service) IsWinner(game *model.Game, playerIdx int) bool {
	if playerIdx < 0 || playerIdx >= game.PlayerCount() {
		return false
	}

	own := s.EffectiveScore(game, playerIdx)

	if game.PlayerCount() == 4 {
		teamA, teamB := s.TeamTotals(game.Scores)
		if playerIdx%2 == 0 {
			return teamA > teamB
		}
		return teamB > teamA
	}

	for idx := range game.Players {
		if idx == playerIdx {
			continue
		}
		if game.Scores[idx] >= own {
			return false
		}
	}
	return true
}

// Interface for dependency injection
type ServiceInterface interface {
	FoldScores(playerCount int, rounds []model.Round) ([]int, error)
	TeamTotals(scores []int) (teamA, teamB int)
	EffectiveScore(game *model.Game, playerIdx int) int
	IsWinner(game *model.Game, playerIdx int) bool
}

var _ ServiceInterface = (*Service)(nil)
