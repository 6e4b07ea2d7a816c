package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Session is the session payload returned by the server
type Session struct {
	ID          string   `json:"id"`
	Round       int      `json:"round"`
	Score       Score    `json:"score"`
	History     []string `json:"history"`
	LastAIMove  *string  `json:"last_ai_move"`
	LastOutcome *string  `json:"last_outcome"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// Score holds the running tallies of a session
type Score struct {
	PlayerWins int `json:"player_wins"`
	AIWins     int `json:"ai_wins"`
	Ties       int `json:"ties"`
}

// PlayResult is the payload returned after playing a round
type PlayResult struct {
	Round      int    `json:"round"`
	PlayerMove string `json:"player_move"`
	AIMove     string `json:"ai_move"`
	Outcome    string `json:"outcome"`
	Score      Score  `json:"score"`
}

// HealthResult is the health check payload
type HealthResult struct {
	Status string `json:"status"`
}

// printJSON prints any value as indented JSON
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printOutput prints v as JSON when --output json is set, otherwise calls
// the text printer
func printOutput(v any, text func()) error {
	if cfg.Output == "json" {
		return printJSON(v)
	}
	text()
	return nil
}

func printSession(s Session) {
	fmt.Printf("Session:  %s\n", s.ID)
	fmt.Printf("Round:    %d\n", s.Round)
	fmt.Printf("Score:    you %d / ai %d / ties %d\n", s.Score.PlayerWins, s.Score.AIWins, s.Score.Ties)
	if s.LastOutcome != nil {
		fmt.Printf("Last:     ai played %s (%s)\n", *s.LastAIMove, outcomeLabel(*s.LastOutcome))
	}
	if len(s.History) > 0 {
		fmt.Printf("History:  %s\n", strings.Join(s.History, " "))
	}
}

func printPlayResult(r PlayResult) {
	fmt.Printf("Round %d: you played %s, ai played %s\n", r.Round, r.PlayerMove, r.AIMove)
	fmt.Printf("Result:  %s\n", outcomeLabel(r.Outcome))
	fmt.Printf("Score:   you %d / ai %d / ties %d\n", r.Score.PlayerWins, r.Score.AIWins, r.Score.Ties)
}

func outcomeLabel(outcome string) string {
	switch outcome {
	case "player_wins":
		return "you win"
	case "ai_wins":
		return "ai wins"
	case "tie":
		return "tie"
	default:
		return outcome
	}
}
