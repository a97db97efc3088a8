package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mverv/manyscore/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{ID: "player-1", Name: "Alice"}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.Name, retrieved.Name)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayers() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", Name: "Alice"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-2", Name: "Bob"})

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 2)
}

func (s *StorageSuite) TestDeletePlayerRemovesFromIndex() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", Name: "Alice"})

	err := s.storage.DeletePlayer(s.ctx, "player-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

// Game tests

func testGame(id model.GameID) *model.Game {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &model.Game{
		ID:   id,
		Type: model.GameTypeManillen,
		Players: []model.Player{
			{ID: "player-1", Name: "Alice"},
			{ID: "player-2", Name: "Bob"},
		},
		Scores: []int{5, 3},
		Rounds: []model.Round{
			{Sequence: 1, SideAPoints: "5", ScoringSide: model.SideA},
			{Sequence: 2, SideBPoints: "3", ScoringSide: model.SideB},
			{Sequence: 3},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *StorageSuite) TestSaveAndGetGame() {
	game := testGame("game-1")

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(game.Players, retrieved.Players)
	s.Equal(game.Scores, retrieved.Scores)
	s.Equal(game.Rounds, retrieved.Rounds)
}

func (s *StorageSuite) TestGameWireFormat() {
	game := testGame("game-1")
	_ = s.storage.SaveGame(s.ctx, game)

	// The persisted JSON must match the original app's encoding:
	// rounds keyed by id/team1Points/team2Points, scoringTeam as
	// 1, 2 or null.
	raw, err := s.mini.Get(gameKey("game-1"))
	s.Require().NoError(err)
	s.Contains(raw, `"type":"manillen"`)
	s.Contains(raw, `"team1Points":"5"`)
	s.Contains(raw, `"scoringTeam":1`)
	s.Contains(raw, `"scoringTeam":2`)
	s.Contains(raw, `"scoringTeam":null`)
	s.Contains(raw, `"isEnded":false`)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestListGames() {
	_ = s.storage.SaveGame(s.ctx, testGame("game-1"))
	_ = s.storage.SaveGame(s.ctx, testGame("game-2"))

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Len(games, 2)
}

func (s *StorageSuite) TestListGamesSkipsDanglingIndexEntries() {
	_ = s.storage.SaveGame(s.ctx, testGame("game-1"))
	_ = s.storage.SaveGame(s.ctx, testGame("game-2"))

	// Remove a record without touching the index
	s.mini.Del(gameKey("game-2"))

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Len(games, 1)
	s.Equal(model.GameID("game-1"), games[0].ID)
}

func (s *StorageSuite) TestDeleteGameIdempotent() {
	_ = s.storage.SaveGame(s.ctx, testGame("game-1"))

	s.Require().NoError(s.storage.DeleteGame(s.ctx, "game-1"))
	s.NoError(s.storage.DeleteGame(s.ctx, "game-1"))
	s.NoError(s.storage.DeleteGame(s.ctx, "never-existed"))
}
