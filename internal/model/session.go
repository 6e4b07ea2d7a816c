package model

import "time"

// SessionID uniquely identifies a play session
type SessionID string

// Session holds the full state of one human-vs-computer game session.
// It is mutated only by playing rounds and by Reset, and is owned by a
// single logical caller at a time.
type Session struct {
	ID SessionID

	// History is the player's moves in order, one per round.
	// Invariant: len(History) == Round.
	History []Move

	// Round is the number of completed rounds
	Round int

	// Score tallies, each incremented at most once per round
	PlayerWins int
	AIWins     int
	Ties       int

	// Last round results; LastOutcome is empty until a round is played
	LastAIMove  Move
	LastOutcome Outcome

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reset returns the session to its initial state. Idempotent.
func (s *Session) Reset(now time.Time) {
	s.History = nil
	s.Round = 0
	s.PlayerWins = 0
	s.AIWins = 0
	s.Ties = 0
	s.LastAIMove = 0
	s.LastOutcome = ""
	s.UpdatedAt = now
}
