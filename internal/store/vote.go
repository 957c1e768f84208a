package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/campusqa/campusqa-api/internal/domain"
)

// VoteStore defines the interface for the vote ledger. The ledger holds at
// most one vote per (user, answer) pair; the schema enforces this with a
// unique constraint and the service re-checks it on every write path.
type VoteStore interface {
	// Create inserts a new vote.
	// Returns ErrDuplicateVote if a vote for the (user, answer) pair exists.
	// Returns ErrInvalidEntity if the user or answer does not exist.
	Create(ctx context.Context, vote *domain.Vote) error

	// GetByUserAndAnswer retrieves the vote a user has cast on an answer.
	// Returns ErrVoteNotFound if no such vote exists.
	GetByUserAndAnswer(ctx context.Context, userID, answerID uuid.UUID) (*domain.Vote, error)

	// UpdatePolarity switches an existing vote's polarity in place.
	// Returns ErrVoteNotFound if the vote does not exist.
	UpdatePolarity(ctx context.Context, id uuid.UUID, polarity domain.VotePolarity) error

	// Delete removes a vote (toggle-off).
	// Returns ErrVoteNotFound if the vote does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// Score returns the answer's net score: count of up votes minus count
	// of down votes. An answer with no votes scores zero.
	Score(ctx context.Context, answerID uuid.UUID) (int, error)

	// WithTx returns a new VoteStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) VoteStore
}
