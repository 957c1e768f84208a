package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/campusqa/campusqa-api/internal/domain"
)

// QuestionSummary is a question joined with the listing context a client
// needs: author username, topic name, and answer count.
type QuestionSummary struct {
	domain.Question
	Author      string `json:"author"`
	TopicName   string `json:"topic_name"`
	AnswerCount int    `json:"answer_count"`
}

// QuestionStore defines the interface for question data persistence.
type QuestionStore interface {
	// Create saves a new question.
	// Returns ErrInvalidEntity if the user or topic does not exist.
	Create(ctx context.Context, question *domain.Question) error

	// GetByID retrieves a question by its unique ID.
	// Returns ErrQuestionNotFound if the question does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)

	// GetSummaryByID retrieves a question joined with its listing context.
	// Returns ErrQuestionNotFound if the question does not exist.
	GetSummaryByID(ctx context.Context, id uuid.UUID) (*QuestionSummary, error)

	// List returns question summaries ordered newest-first by creation time.
	// A non-nil topicID restricts the listing to that topic.
	List(ctx context.Context, topicID *uuid.UUID) ([]*QuestionSummary, error)

	// Delete removes a question. The storage layer cascades the deletion to
	// the question's answers and those answers' votes.
	// Returns ErrQuestionNotFound if the question does not exist.
	// There is no HTTP route for this; it exists for operators and tests.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new QuestionStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) QuestionStore
}
