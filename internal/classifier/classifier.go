// Package classifier provides next-move prediction over a short sequence of
// player moves. The trained model is a fixed artifact consumed by this
// package; training it is out of scope.
package classifier

import (
	"context"
	"errors"

	"github.com/dkaye/rpsgame-go/internal/model"
)

// SequenceLength is the fixed input length every classifier accepts
const SequenceLength = 5

var (
	// ErrBadSequence indicates input that is not exactly SequenceLength valid moves
	ErrBadSequence = errors.New("sequence must be exactly 5 valid moves")

	// ErrBadWeights indicates a weight artifact with the wrong shape
	ErrBadWeights = errors.New("malformed weight data")
)

// Classifier maps a fixed-length move sequence to a predicted next player move.
// Implementations may fail; callers are expected to treat any error as
// "no prediction" and fall back.
type Classifier interface {
	Predict(ctx context.Context, sequence []model.Move) (model.Move, error)
}
