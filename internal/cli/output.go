package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case Game:
		o.printGame(v)
	case []Game:
		o.printGames(v)
	case PlayerStats:
		o.printPlayerStats(v)
	case Distribution:
		o.printDistribution(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Round response type
type Round struct {
	Sequence    int  `json:"sequence"`
	ScoringSide *int `json:"scoring_side"`
	Points      int  `json:"points"`
	Open        bool `json:"open"`
}

// TeamTotals response type
type TeamTotals struct {
	TeamA int `json:"team_a"`
	TeamB int `json:"team_b"`
}

// CurrentRound response type
type CurrentRound struct {
	Sequence int   `json:"sequence"`
	SideA    []int `json:"side_a"`
	SideB    []int `json:"side_b"`
	Turn     []int `json:"turn"`
}

// Game response type
type Game struct {
	ID           string        `json:"id"`
	Type         string        `json:"type"`
	Players      []Player      `json:"players"`
	Scores       []int         `json:"scores"`
	TeamTotals   *TeamTotals   `json:"team_totals,omitempty"`
	Rounds       []Round       `json:"rounds"`
	CurrentRound *CurrentRound `json:"current_round"`
	IsEnded      bool          `json:"is_ended"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// PlayerStats response type
type PlayerStats struct {
	PlayerID    string  `json:"player_id"`
	GamesPlayed int     `json:"games_played"`
	Wins        int     `json:"wins"`
	WinRate     float64 `json:"win_rate"`
	ScoreSeries []int   `json:"score_series"`
}

// Distribution response type
type Distribution struct {
	Counts map[int]int `json:"counts"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
}

func (o *Output) printPlayers(players []Player) {
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		fmt.Printf("  - %s (%s)\n", p.Name, p.ID)
	}
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s\n", g.ID)

	names := make([]string, len(g.Players))
	for i, p := range g.Players {
		names[i] = p.Name
	}
	fmt.Printf("Players: %s\n", strings.Join(names, ", "))

	state := "in progress"
	if g.IsEnded {
		state = "ended"
	}
	fmt.Printf("State: %s\n", state)

	fmt.Println("Scores:")
	for i, score := range g.Scores {
		fmt.Printf("  %s: %d\n", g.Players[i].Name, score)
	}
	if g.TeamTotals != nil {
		fmt.Printf("Team totals: %d - %d\n", g.TeamTotals.TeamA, g.TeamTotals.TeamB)
	}

	if len(g.Rounds) > 0 {
		fmt.Printf("Rounds (%d):\n", len(g.Rounds))
		for _, r := range g.Rounds {
			if r.Open {
				fmt.Printf("  %d: open\n", r.Sequence)
				continue
			}
			side := "-"
			if r.ScoringSide != nil {
				side = fmt.Sprintf("side %d", *r.ScoringSide)
			}
			fmt.Printf("  %d: %s, %d points\n", r.Sequence, side, r.Points)
		}
	}

	if g.CurrentRound != nil {
		fmt.Printf("Current round: %d (side A seats %s vs side B seats %s)\n",
			g.CurrentRound.Sequence,
			joinInts(g.CurrentRound.SideA),
			joinInts(g.CurrentRound.SideB),
		)

		up := make([]string, 0, len(g.CurrentRound.Turn))
		for _, idx := range g.CurrentRound.Turn {
			if idx >= 0 && idx < len(g.Players) {
				up = append(up, g.Players[idx].Name)
			}
		}
		if len(up) > 0 {
			fmt.Printf("Up next: %s\n", strings.Join(up, ", "))
		}
	}
}

func (o *Output) printGames(games []Game) {
	fmt.Printf("Games (%d):\n", len(games))
	for _, g := range games {
		names := make([]string, len(g.Players))
		for i, p := range g.Players {
			names[i] = p.Name
		}
		state := "in progress"
		if g.IsEnded {
			state = "ended"
		}
		fmt.Printf("  - %s [%s] %s\n", g.ID, state, strings.Join(names, ", "))
	}
}

func (o *Output) printPlayerStats(s PlayerStats) {
	fmt.Printf("Player: %s\n", s.PlayerID)
	fmt.Printf("Games played: %d\n", s.GamesPlayed)
	fmt.Printf("Wins: %d\n", s.Wins)
	fmt.Printf("Win rate: %.1f%%\n", s.WinRate*100)
	if len(s.ScoreSeries) > 0 {
		fmt.Printf("Score series: %s\n", joinInts(s.ScoreSeries))
	}
}

func (o *Output) printDistribution(d Distribution) {
	fmt.Println("Games by player count:")
	for _, count := range []int{2, 3, 4} {
		if n, ok := d.Counts[count]; ok {
			fmt.Printf("  %d players: %d\n", count, n)
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}
