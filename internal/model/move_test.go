package model_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dkaye/rpsgame-go/internal/model"
)

type MoveSuite struct {
	suite.Suite
}

func TestMoveSuite(t *testing.T) {
	suite.Run(t, new(MoveSuite))
}

func (s *MoveSuite) TestJudge_AllPairs() {
	// Tie iff equal, AIWins iff ai == (player+1) mod 3, PlayerWins otherwise
	for player := model.Move(0); player < model.MoveCount; player++ {
		for ai := model.Move(0); ai < model.MoveCount; ai++ {
			outcome := model.Judge(player, ai)
			switch {
			case player == ai:
				s.Equal(model.OutcomeTie, outcome, "judge(%v, %v)", player, ai)
			case ai == (player+1)%model.MoveCount:
				s.Equal(model.OutcomeAIWins, outcome, "judge(%v, %v)", player, ai)
			default:
				s.Equal(model.OutcomePlayerWins, outcome, "judge(%v, %v)", player, ai)
			}
		}
	}
}

func (s *MoveSuite) TestCounter() {
	s.Equal(model.MovePaper, model.MoveRock.Counter())
	s.Equal(model.MoveScissors, model.MovePaper.Counter())
	s.Equal(model.MoveRock, model.MoveScissors.Counter())
}

func (s *MoveSuite) TestValidate() {
	s.NoError(model.MoveRock.Validate())
	s.NoError(model.MovePaper.Validate())
	s.NoError(model.MoveScissors.Validate())

	s.ErrorIs(model.Move(3).Validate(), model.ErrInvalidMove)
	s.ErrorIs(model.Move(-1).Validate(), model.ErrInvalidMove)
}

func (s *MoveSuite) TestParseMove() {
	for _, tc := range []struct {
		input string
		want  model.Move
	}{
		{"rock", model.MoveRock},
		{"paper", model.MovePaper},
		{"scissors", model.MoveScissors},
		{"r", model.MoveRock},
		{"p", model.MovePaper},
		{"s", model.MoveScissors},
		{"0", model.MoveRock},
		{"1", model.MovePaper},
		{"2", model.MoveScissors},
	} {
		got, err := model.ParseMove(tc.input)
		s.Require().NoError(err, "parse %q", tc.input)
		s.Equal(tc.want, got, "parse %q", tc.input)
	}

	_, err := model.ParseMove("lizard")
	s.ErrorIs(err, model.ErrInvalidMove)
}

func (s *MoveSuite) TestString() {
	s.Equal("rock", model.MoveRock.String())
	s.Equal("paper", model.MovePaper.String())
	s.Equal("scissors", model.MoveScissors.String())
}
