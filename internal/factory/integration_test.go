package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dkaye/rpsgame-go/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: a full session in which the player cycles rock-paper-scissors and
// the predictor locks onto the repeat
func (s *IntegrationSuite) TestPredictorLocksOntoCyclingPlayer() {
	s.app.MockRandom.QueueString("SESSION00001")

	session, err := s.app.GameController.CreateSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.SessionID("SESSION00001"), session.ID)

	// Warm-up rounds are random; make the AI throw rock every time
	s.app.MockRandom.QueueIntn(0, 0, 0, 0, 0, 0)

	cycle := []model.Move{model.MoveRock, model.MovePaper, model.MoveScissors}
	for round := 1; round <= 12; round++ {
		playerMove := cycle[(round-1)%3]
		session, err = s.app.GameController.PlayRound(s.ctx, session.ID, playerMove)
		s.Require().NoError(err)
		s.Equal(round, session.Round)

		// Once a full cycle has repeated past the warm-up, the pattern scan
		// finds the earlier occurrence and counters the anchor every time
		if round >= 9 {
			s.Equal(model.OutcomeAIWins, session.LastOutcome, "round %d should be predicted", round)
			s.Equal(playerMove.Counter(), session.LastAIMove, "round %d", round)
		}
	}

	s.Equal(12, session.Round)
	s.Len(session.History, 12)
	s.Equal(session.Round, session.PlayerWins+session.AIWins+session.Ties)
	s.GreaterOrEqual(session.AIWins, 4)
}

// Test: reset mid-session returns the predictor to warm-up behavior
func (s *IntegrationSuite) TestResetRestartsWarmup() {
	s.app.MockRandom.QueueString("SESSION00001")
	session, err := s.app.GameController.CreateSession(s.ctx)
	s.Require().NoError(err)

	// Six random warm-up rounds; round 7 hits the all-rock pattern repeat
	// and consumes no randomness
	s.app.MockRandom.QueueIntn(0, 0, 0, 0, 0, 0)
	for i := 0; i < 7; i++ {
		session, err = s.app.GameController.PlayRound(s.ctx, session.ID, model.MoveRock)
		s.Require().NoError(err)
	}
	s.Equal(7, session.Round)

	session, err = s.app.GameController.ResetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Zero(session.Round)
	s.Empty(session.History)

	// First round after reset draws from random again
	s.app.MockRandom.QueueIntn(1)
	session, err = s.app.GameController.PlayRound(s.ctx, session.ID, model.MoveRock)
	s.Require().NoError(err)
	s.Equal(model.MovePaper, session.LastAIMove)
}
