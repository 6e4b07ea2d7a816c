// Package predictor chooses the computer's move by inspecting the player's
// move history for a repeating pattern, falling back to a classifier and
// finally to randomness.
package predictor

import (
	"context"
	"log/slog"

	"github.com/dkaye/rpsgame-go/internal/classifier"
	"github.com/dkaye/rpsgame-go/internal/dependencies/random"
	"github.com/dkaye/rpsgame-go/internal/model"
)

const (
	// PatternLength is the window length for the exact-repeat scan and the
	// classifier input
	PatternLength = classifier.SequenceLength

	// WarmupRounds is the number of initial rounds played purely at random;
	// there is too little history for a pattern or a classifier input
	WarmupRounds = 6
)

// Service predicts the player's next move and returns the move that beats it
type Service struct {
	trained   classifier.Classifier
	untrained classifier.Classifier
	random    random.Random
	logger    *slog.Logger
}

// New creates a predictor Service. The trained classifier is tried first;
// the untrained one is the backup when trained inference fails.
func New(trained, untrained classifier.Classifier, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		trained:   trained,
		untrained: untrained,
		random:    rnd,
		logger:    logger.With(slog.String("component", "predictor")),
	}
}

// Predict returns the computer's move for the given round. The history
// includes the player's move for the round being played, and round equals
// the history length. Predict always returns a valid move: every failure
// tier degrades to the next, ending in a uniformly random choice.
func (s *Service) Predict(ctx context.Context, history []model.Move, round int) model.Move {
	if round <= WarmupRounds || len(history) <= PatternLength {
		return s.randomMove()
	}

	if next, ok := findRepeat(history); ok {
		return next.Counter()
	}

	recent := history[len(history)-PatternLength:]

	predicted, err := s.trained.Predict(ctx, recent)
	if err == nil {
		return predicted.Counter()
	}
	s.logger.Debug("trained classifier unavailable", slog.String("error", err.Error()))

	predicted, err = s.untrained.Predict(ctx, recent)
	if err == nil {
		return predicted.Counter()
	}
	s.logger.Debug("untrained classifier unavailable", slog.String("error", err.Error()))

	return s.randomMove()
}

// findRepeat looks for an earlier occurrence of the current pattern. The
// last PatternLength+1 moves split into pattern P and anchor A (the most
// recent move). If some historical window equals P and was followed by A,
// the player is predicted to repeat A. The scan runs oldest-first and stops
// at the first match.
func findRepeat(history []model.Move) (model.Move, bool) {
	n := len(history)
	if n < PatternLength+2 {
		return 0, false
	}

	pattern := history[n-PatternLength-1 : n-1]
	anchor := history[n-1]

	for i := 0; i <= n-PatternLength-2; i++ {
		if windowEquals(history[i:i+PatternLength], pattern) && history[i+PatternLength] == anchor {
			return anchor, true
		}
	}
	return 0, false
}

func windowEquals(a, b []model.Move) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (s *Service) randomMove() model.Move {
	return model.Move(s.random.Intn(model.MoveCount))
}
