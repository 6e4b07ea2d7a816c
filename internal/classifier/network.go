package classifier

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"math"

	"github.com/dkaye/rpsgame-go/internal/model"
)

// Network dimensions: each of the 5 input moves is one-hot encoded
const (
	inputSize  = SequenceLength * model.MoveCount
	hiddenSize = 8
	outputSize = model.MoveCount
)

//go:embed weights.json
var pretrainedWeights []byte

// weightData is the on-disk layout of a weight artifact
type weightData struct {
	HiddenWeights [][]float64 `json:"hidden_weights"`
	HiddenBias    []float64   `json:"hidden_bias"`
	OutputWeights [][]float64 `json:"output_weights"`
	OutputBias    []float64   `json:"output_bias"`
}

// Network is a small feedforward classifier over one-hot encoded move
// sequences. Inference is deterministic; the weights are fixed at
// construction time.
type Network struct {
	weights weightData
}

// Ensure Network implements Classifier
var _ Classifier = (*Network)(nil)

// NewPretrained loads the network with the embedded pretrained weights
func NewPretrained() (*Network, error) {
	return NewFromWeights(pretrainedWeights)
}

// NewFromWeights loads a network from a JSON weight artifact
func NewFromWeights(data []byte) (*Network, error) {
	var w weightData
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadWeights, err)
	}
	if err := validateShape(w); err != nil {
		return nil, err
	}
	return &Network{weights: w}, nil
}

// NewUntrained returns a network with default (zero) weights. Its output is
// degenerate but well-formed, which is all the last-resort fallback needs.
func NewUntrained() *Network {
	w := weightData{
		HiddenWeights: make([][]float64, hiddenSize),
		HiddenBias:    make([]float64, hiddenSize),
		OutputWeights: make([][]float64, outputSize),
		OutputBias:    make([]float64, outputSize),
	}
	for i := range w.HiddenWeights {
		w.HiddenWeights[i] = make([]float64, inputSize)
	}
	for i := range w.OutputWeights {
		w.OutputWeights[i] = make([]float64, hiddenSize)
	}
	return &Network{weights: w}
}

func validateShape(w weightData) error {
	if len(w.HiddenWeights) != hiddenSize || len(w.HiddenBias) != hiddenSize ||
		len(w.OutputWeights) != outputSize || len(w.OutputBias) != outputSize {
		return fmt.Errorf("%w: wrong layer sizes", ErrBadWeights)
	}
	for _, row := range w.HiddenWeights {
		if len(row) != inputSize {
			return fmt.Errorf("%w: hidden row has %d inputs, want %d", ErrBadWeights, len(row), inputSize)
		}
	}
	for _, row := range w.OutputWeights {
		if len(row) != hiddenSize {
			return fmt.Errorf("%w: output row has %d inputs, want %d", ErrBadWeights, len(row), hiddenSize)
		}
	}
	return nil
}

// Predict runs a forward pass and returns the move with the highest logit
func (n *Network) Predict(ctx context.Context, sequence []model.Move) (model.Move, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	input, err := encode(sequence)
	if err != nil {
		return 0, err
	}

	hidden := make([]float64, hiddenSize)
	for i := range hidden {
		sum := n.weights.HiddenBias[i]
		for j, v := range input {
			sum += n.weights.HiddenWeights[i][j] * v
		}
		// ReLU
		hidden[i] = math.Max(0, sum)
	}

	best := model.MoveRock
	bestLogit := math.Inf(-1)
	for i := 0; i < outputSize; i++ {
		logit := n.weights.OutputBias[i]
		for j, v := range hidden {
			logit += n.weights.OutputWeights[i][j] * v
		}
		if logit > bestLogit {
			bestLogit = logit
			best = model.Move(i)
		}
	}

	return best, nil
}

// encode one-hot encodes a move sequence into the network input vector
func encode(sequence []model.Move) ([]float64, error) {
	if len(sequence) != SequenceLength {
		return nil, fmt.Errorf("%w: got %d moves", ErrBadSequence, len(sequence))
	}
	input := make([]float64, inputSize)
	for i, m := range sequence {
		if !m.Valid() {
			return nil, fmt.Errorf("%w: bad move at index %d", ErrBadSequence, i)
		}
		input[i*model.MoveCount+int(m)] = 1
	}
	return input, nil
}
