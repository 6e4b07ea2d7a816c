package response

import (
	"time"

	"github.com/dkaye/rpsgame-go/internal/model"
)

// Score holds the running tallies of a session
type Score struct {
	PlayerWins int `json:"player_wins"`
	AIWins     int `json:"ai_wins"`
	Ties       int `json:"ties"`
}

// Session represents a session in API responses
type Session struct {
	ID          string    `json:"id"`
	Round       int       `json:"round"`
	Score       Score     `json:"score"`
	History     []string  `json:"history"`
	LastAIMove  *string   `json:"last_ai_move"`
	LastOutcome *string   `json:"last_outcome"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SessionFromModel converts a model.Session to a response Session
func SessionFromModel(s *model.Session) Session {
	history := make([]string, len(s.History))
	for i, m := range s.History {
		history[i] = m.String()
	}

	var lastAIMove, lastOutcome *string
	if s.LastOutcome != "" {
		mv := s.LastAIMove.String()
		out := string(s.LastOutcome)
		lastAIMove = &mv
		lastOutcome = &out
	}

	return Session{
		ID:          string(s.ID),
		Round:       s.Round,
		Score:       Score{PlayerWins: s.PlayerWins, AIWins: s.AIWins, Ties: s.Ties},
		History:     history,
		LastAIMove:  lastAIMove,
		LastOutcome: lastOutcome,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// PlayResponse is the response after playing a round
type PlayResponse struct {
	Round      int    `json:"round"`
	PlayerMove string `json:"player_move"`
	AIMove     string `json:"ai_move"`
	Outcome    string `json:"outcome"`
	Score      Score  `json:"score"`
}

// PlayResponseFromModel builds a PlayResponse from the updated session and
// the move the player just made
func PlayResponseFromModel(s *model.Session, playerMove model.Move) PlayResponse {
	return PlayResponse{
		Round:      s.Round,
		PlayerMove: playerMove.String(),
		AIMove:     s.LastAIMove.String(),
		Outcome:    string(s.LastOutcome),
		Score:      Score{PlayerWins: s.PlayerWins, AIWins: s.AIWins, Ties: s.Ties},
	}
}
