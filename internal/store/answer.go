package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/campusqa/campusqa-api/internal/domain"
)

// AnswerWithScore is an answer joined with its live vote aggregate and,
// when listed for an authenticated caller, that caller's own vote
// (empty when the caller has not voted or is anonymous).
type AnswerWithScore struct {
	domain.Answer
	Author     string              `json:"author"`
	Score      int                 `json:"score"`
	CallerVote domain.VotePolarity `json:"caller_vote,omitempty"`
}

// AnswerStore defines the interface for answer data persistence.
type AnswerStore interface {
	// Create saves a new answer.
	// Returns ErrInvalidEntity if the user or question does not exist.
	Create(ctx context.Context, answer *domain.Answer) error

	// GetByID retrieves an answer by its unique ID.
	// Returns ErrAnswerNotFound if the answer does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error)

	// ListByQuestion returns a question's answers with scores, ordered by
	// score descending and then by creation time ascending. A non-nil
	// callerID populates each answer's CallerVote.
	ListByQuestion(ctx context.Context, questionID uuid.UUID, callerID *uuid.UUID) ([]*AnswerWithScore, error)

	// WithTx returns a new AnswerStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) AnswerStore
}
