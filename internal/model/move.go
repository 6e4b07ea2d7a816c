package model

import "fmt"

// Move is one of the three throws, encoded so that (m+1) mod 3 beats m.
type Move int

const (
	MoveRock     Move = 0
	MovePaper    Move = 1
	MoveScissors Move = 2

	// MoveCount is the number of distinct moves
	MoveCount = 3
)

// Valid reports whether the move is one of the three throws
func (m Move) Valid() bool {
	return m >= MoveRock && m <= MoveScissors
}

// Validate returns ErrInvalidMove for values outside the enumeration
func (m Move) Validate() error {
	if !m.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMove, int(m))
	}
	return nil
}

// Counter returns the move that beats m
func (m Move) Counter() Move {
	return (m + 1) % MoveCount
}

// String returns the lowercase move name
func (m Move) String() string {
	switch m {
	case MoveRock:
		return "rock"
	case MovePaper:
		return "paper"
	case MoveScissors:
		return "scissors"
	default:
		return fmt.Sprintf("move(%d)", int(m))
	}
}

// ParseMove converts a move name to a Move
func ParseMove(s string) (Move, error) {
	switch s {
	case "rock", "r", "0":
		return MoveRock, nil
	case "paper", "p", "1":
		return MovePaper, nil
	case "scissors", "s", "2":
		return MoveScissors, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
}

// Outcome is the result of a single round from the player's perspective
type Outcome string

const (
	OutcomePlayerWins Outcome = "player_wins"
	OutcomeAIWins     Outcome = "ai_wins"
	OutcomeTie        Outcome = "tie"
)

// Judge applies the cyclic dominance relation to a pair of moves.
// It is pure and total over the 9 valid move pairs.
func Judge(playerMove, aiMove Move) Outcome {
	switch {
	case playerMove == aiMove:
		return OutcomeTie
	case playerMove.Counter() == aiMove:
		return OutcomeAIWins
	default:
		return OutcomePlayerWins
	}
}
