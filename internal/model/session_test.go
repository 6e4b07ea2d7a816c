package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dkaye/rpsgame-go/internal/model"
)

type SessionSuite struct {
	suite.Suite
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) TestReset() {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sess := &model.Session{
		ID:          "sess-1",
		History:     []model.Move{model.MoveRock, model.MovePaper, model.MoveRock},
		Round:       3,
		PlayerWins:  1,
		AIWins:      1,
		Ties:        1,
		LastAIMove:  model.MoveScissors,
		LastOutcome: model.OutcomeAIWins,
		CreatedAt:   now.Add(-time.Hour),
		UpdatedAt:   now.Add(-time.Minute),
	}

	sess.Reset(now)

	s.Empty(sess.History)
	s.Zero(sess.Round)
	s.Zero(sess.PlayerWins)
	s.Zero(sess.AIWins)
	s.Zero(sess.Ties)
	s.Equal(model.Outcome(""), sess.LastOutcome)
	s.Equal(now, sess.UpdatedAt)
	s.Equal(model.SessionID("sess-1"), sess.ID, "reset keeps the session identity")
}

func (s *SessionSuite) TestReset_Idempotent() {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sess := &model.Session{
		ID:      "sess-1",
		History: []model.Move{model.MoveScissors},
		Round:   1,
		AIWins:  1,
	}

	sess.Reset(now)
	once := *sess
	sess.Reset(now)

	s.Equal(once, *sess)
}
