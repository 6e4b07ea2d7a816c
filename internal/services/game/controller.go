package game

import (
	"context"
	"log/slog"

	"github.com/dkaye/rpsgame-go/internal/dependencies/clock"
	"github.com/dkaye/rpsgame-go/internal/dependencies/random"
	"github.com/dkaye/rpsgame-go/internal/model"
	"github.com/dkaye/rpsgame-go/internal/services/predictor"
	"github.com/dkaye/rpsgame-go/internal/storage"
)

const (
	// SessionIDAlphabet is the character set for generated session IDs
	SessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// SessionIDLength is the length of generated session IDs
	SessionIDLength = 12
)

// Controller owns session state and round flow: it appends the player's
// move, obtains the computer's move from the predictor, judges the round
// and updates the score.
type Controller struct {
	storage   storage.Storage
	predictor *predictor.Service
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	store storage.Storage,
	pred *predictor.Service,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   store,
		predictor: pred,
		clock:     clk,
		random:    rnd,
		logger:    logger,
	}
}

// CreateSession initializes and persists a new empty session
func (c *Controller) CreateSession(ctx context.Context) (*model.Session, error) {
	now := c.clock.Now()
	session := &model.Session{
		ID:        model.SessionID(c.random.String(SessionIDLength, SessionIDAlphabet)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("session created", slog.String("session_id", string(session.ID)))
	return session, nil
}

// GetSession retrieves a session by ID
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// PlayRound plays one round with the given player move and returns the
// updated session. An invalid move is a contract violation and is rejected;
// prediction trouble never surfaces here, the predictor degrades internally.
func (c *Controller) PlayRound(ctx context.Context, id model.SessionID, playerMove model.Move) (*model.Session, error) {
	if err := playerMove.Validate(); err != nil {
		return nil, err
	}

	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	session.History = append(session.History, playerMove)
	session.Round++

	aiMove := c.predictor.Predict(ctx, session.History, session.Round)
	outcome := model.Judge(playerMove, aiMove)

	switch outcome {
	case model.OutcomePlayerWins:
		session.PlayerWins++
	case model.OutcomeAIWins:
		session.AIWins++
	case model.OutcomeTie:
		session.Ties++
	}

	session.LastAIMove = aiMove
	session.LastOutcome = outcome
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("round played",
		slog.String("session_id", string(id)),
		slog.Int("round", session.Round),
		slog.String("player_move", playerMove.String()),
		slog.String("ai_move", aiMove.String()),
		slog.String("outcome", string(outcome)),
	)

	return session, nil
}

// ResetSession clears history, counters and score. Idempotent.
func (c *Controller) ResetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Reset(c.clock.Now())

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session reset", slog.String("session_id", string(id)))
	return session, nil
}

// DeleteSession removes a session entirely
func (c *Controller) DeleteSession(ctx context.Context, id model.SessionID) error {
	exists, err := c.storage.SessionExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrSessionNotFound
	}
	return c.storage.DeleteSession(ctx, id)
}
