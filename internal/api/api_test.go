package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverv/manyscore/internal/api"
	"github.com/mverv/manyscore/internal/api/apierr"
	"github.com/mverv/manyscore/internal/api/response"
	"github.com/mverv/manyscore/internal/factory"
)

// testServer wraps the router with its wired application
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := factory.NewTestApp()

	handler := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		StatsService:   app.StatsService,
	})

	return &testServer{handler: handler, app: app}
}

// do performs a request against the test server
func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[apierr.ErrorResponse](t, rec).Error.Code
}

// createPlayers registers players and returns their ids
func (ts *testServer) createPlayers(t *testing.T, names ...string) []string {
	t.Helper()
	ids := make([]string, len(names))
	for i, name := range names {
		rec := ts.do(t, http.MethodPost, "/api/v1/players", map[string]string{"name": name})
		require.Equal(t, http.StatusCreated, rec.Code)
		ids[i] = decode[response.Player](t, rec).ID
	}
	return ids
}

// createGame starts a game for the given player ids
func (ts *testServer) createGame(t *testing.T, playerIDs []string) response.Game {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/api/v1/games", map[string]any{
		"player_ids":   playerIDs,
		"player_count": len(playerIDs),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decode[response.Game](t, rec)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCreatePlayer(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/players", map[string]string{"name": "Alice"})
	require.Equal(t, http.StatusCreated, rec.Code)

	player := decode[response.Player](t, rec)
	assert.Equal(t, "Alice", player.Name)
	assert.NotEmpty(t, player.ID)
}

func TestCreatePlayerEmptyName(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/players", map[string]string{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierr.CodeEmptyPlayerName, errorCode(t, rec))
}

func TestListPlayers(t *testing.T) {
	ts := newTestServer(t)
	ts.createPlayers(t, "Carol", "Alice", "Bob")

	rec := ts.do(t, http.MethodGet, "/api/v1/players", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	players := decode[[]response.Player](t, rec)
	require.Len(t, players, 3)
	assert.Equal(t, "Alice", players[0].Name)
	assert.Equal(t, "Carol", players[2].Name)
}

func TestCreateGame(t *testing.T) {
	ts := newTestServer(t)
	ids := ts.createPlayers(t, "Alice", "Bob")

	game := ts.createGame(t, ids)
	assert.Equal(t, "manillen", game.Type)
	assert.Equal(t, []int{0, 0}, game.Scores)
	assert.False(t, game.IsEnded)
	assert.Nil(t, game.TeamTotals)
	require.NotNil(t, game.CurrentRound)
	assert.Equal(t, 1, game.CurrentRound.Sequence)
	assert.Equal(t, []int{0}, game.CurrentRound.SideA)
	assert.Equal(t, []int{1}, game.CurrentRound.SideB)
	assert.Equal(t, []int{0}, game.CurrentRound.Turn)
}

func TestCreateGameValidation(t *testing.T) {
	ts := newTestServer(t)
	ids := ts.createPlayers(t, "Alice", "Bob")

	rec := ts.do(t, http.MethodPost, "/api/v1/games", map[string]any{
		"player_ids": append(ids, "x", "y", "z"), "player_count": 5,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierr.CodeInvalidPlayerCount, errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, "/api/v1/games", map[string]any{
		"player_ids": ids[:1], "player_count": 2,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierr.CodeIncompleteSelection, errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, "/api/v1/games", map[string]any{
		"player_ids": []string{ids[0], ids[0]}, "player_count": 2,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierr.CodeDuplicateSelection, errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, "/api/v1/games", map[string]any{
		"player_ids": []string{ids[0], "missing"}, "player_count": 2,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apierr.CodePlayerNotFound, errorCode(t, rec))
}

func TestRecordPoints(t *testing.T) {
	ts := newTestServer(t)
	ids := ts.createPlayers(t, "Alice", "Bob")
	game := ts.createGame(t, ids)

	rec := ts.do(t, http.MethodPut,
		fmt.Sprintf("/api/v1/games/%s/rounds/1/points", game.ID),
		map[string]int{"side": 1, "points": 5})
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decode[response.Game](t, rec)
	assert.Equal(t, []int{5, 0}, updated.Scores)
	require.Len(t, updated.Rounds, 1)
	require.NotNil(t, updated.Rounds[0].ScoringSide)
	assert.Equal(t, 1, *updated.Rounds[0].ScoringSide)
	assert.Equal(t, 5, updated.Rounds[0].Points)
	assert.False(t, updated.Rounds[0].Open)
}

func TestRecordPointsValidation(t *testing.T) {
	ts := newTestServer(t)
	ids := ts.createPlayers(t, "Alice", "Bob")
	game := ts.createGame(t, ids)

	rec := ts.do(t, http.MethodPut,
		fmt.Sprintf("/api/v1/games/%s/rounds/1/points", game.ID),
		map[string]int{"side": 3, "points": 5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierr.CodeInvalidScoringSide, errorCode(t, rec))

	rec = ts.do(t, http.MethodPut,
		fmt.Sprintf("/api/v1/games/%s/rounds/9/points", game.ID),
		map[string]int{"side": 1, "points": 5})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apierr.CodeRoundNotFound, errorCode(t, rec))

	rec = ts.do(t, http.MethodPut,
		fmt.Sprintf("/api/v1/games/%s/rounds/1/points", game.ID),
		map[string]int{"side": 1, "points": -2})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, errorCode(t, rec))
}

func TestAdvanceRound(t *testing.T) {
	ts := newTestServer(t)
	ids := ts.createPlayers(t, "Alice", "Bob")
	game := ts.createGame(t, ids)

	// Advancing past an unscored round is rejected
	rec := ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/games/%s/rounds", game.ID), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apierr.CodeOpenRoundIncomplete, errorCode(t, rec))

	ts.do(t, http.MethodPut,
		fmt.Sprintf("/api/v1/games/%s/rounds/1/points", game.ID),
		map[string]int{"side": 1, "points": 5})

	rec = ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/games/%s/rounds", game.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decode[response.Game](t, rec)
	require.NotNil(t, updated.CurrentRound)
	assert.Equal(t, 2, updated.CurrentRound.Sequence)
}

func TestThreePlayerRotation(t *testing.T) {
	ts := newTestServer(t)
	ids := ts.createPlayers(t, "Alice", "Bob", "Carol")
	game := ts.createGame(t, ids)

	// Round 1: player 0 plays alone against the pair
	require.NotNil(t, game.CurrentRound)
	assert.Equal(t, []int{0}, game.CurrentRound.SideA)
	assert.Equal(t, []int{1, 2}, game.CurrentRound.SideB)

	// Scoring the pair credits both its members
	rec := ts.do(t, http.MethodPut,
		fmt.Sprintf("/api/v1/games/%s/rounds/1/points", game.ID),
		map[string]int{"side": 2, "points": 4})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{0, 4, 4}, decode[response.Game](t, rec).Scores)

	// Round 2 rotates the solo seat to player 1
	rec = ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/games/%s/rounds", game.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[response.Game](t, rec)
	require.NotNil(t, updated.CurrentRound)
	assert.Equal(t, []int{1}, updated.CurrentRound.SideA)
	assert.Equal(t, []int{0, 2}, updated.CurrentRound.SideB)
	assert.Equal(t, []int{1}, updated.CurrentRound.Turn)
}

func TestFourPlayerTeamTotals(t *testing.T) {
	ts := newTestServer(t)
	ids := ts.createPlayers(t, "Alice", "Bob", "Carol", "Dave")
	game := ts.createGame(t, ids)

	rec := ts.do(t, http.MethodPut,
		fmt.Sprintf("/api/v1/games/%s/rounds/1/points", game.ID),
		map[string]int{"side": 1, "points": 10})
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decode[response.Game](t, rec)
	assert.Equal(t, []int{10, 0, 10, 0}, updated.Scores)
	require.NotNil(t, updated.TeamTotals)
	assert.Equal(t, 20, updated.TeamTotals.TeamA)
	assert.Equal(t, 0, updated.TeamTotals.TeamB)
}

func TestEndGame(t *testing.T) {
	ts := newTestServer(t)
	ids := ts.createPlayers(t, "Alice", "Bob")
	game := ts.createGame(t, ids)

	rec := ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/games/%s/end", game.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	ended := decode[response.Game](t, rec)
	assert.True(t, ended.IsEnded)
	assert.Nil(t, ended.CurrentRound)
	assert.Empty(t, ended.Rounds)

	rec = ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/games/%s/end", game.ID), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apierr.CodeGameAlreadyEnded, errorCode(t, rec))
}

func TestDeleteGame(t *testing.T) {
	ts := newTestServer(t)
	ids := ts.createPlayers(t, "Alice", "Bob")
	game := ts.createGame(t, ids)

	rec := ts.do(t, http.MethodDelete, "/api/v1/games/"+game.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/games/"+game.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apierr.CodeGameNotFound, errorCode(t, rec))
}

func TestListGames(t *testing.T) {
	ts := newTestServer(t)
	ids := ts.createPlayers(t, "Alice", "Bob")
	ts.createGame(t, ids)
	ts.createGame(t, ids)

	rec := ts.do(t, http.MethodGet, "/api/v1/games", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]response.Game](t, rec), 2)
}

func TestPlayerStats(t *testing.T) {
	ts := newTestServer(t)
	ids := ts.createPlayers(t, "Alice", "Bob")
	game := ts.createGame(t, ids)

	ts.do(t, http.MethodPut,
		fmt.Sprintf("/api/v1/games/%s/rounds/1/points", game.ID),
		map[string]int{"side": 1, "points": 8})
	ts.do(t, http.MethodPost, fmt.Sprintf("/api/v1/games/%s/end", game.ID), nil)

	rec := ts.do(t, http.MethodGet, "/api/v1/stats/players/"+ids[0], nil)
	require.Equal(t, http.StatusOK, rec.Code)

	st := decode[response.PlayerStats](t, rec)
	assert.Equal(t, 1, st.GamesPlayed)
	assert.Equal(t, 1, st.Wins)
	assert.Equal(t, 1.0, st.WinRate)
	assert.Equal(t, []int{8}, st.ScoreSeries)

	rec = ts.do(t, http.MethodGet, "/api/v1/stats/players/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDistribution(t *testing.T) {
	ts := newTestServer(t)
	two := ts.createPlayers(t, "Alice", "Bob")
	three := ts.createPlayers(t, "Carol", "Dave", "Erin")
	ts.createGame(t, two)
	ts.createGame(t, three)

	rec := ts.do(t, http.MethodGet, "/api/v1/stats/distribution", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	dist := decode[response.Distribution](t, rec)
	assert.Equal(t, map[int]int{2: 1, 3: 1}, dist.Counts)
}

func TestInvalidBody(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/players", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, errorCode(t, rec))
}
