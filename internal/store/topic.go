package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/campusqa/campusqa-api/internal/domain"
)

// TopicStore defines the interface for topic data persistence.
// Topics form a fixed catalog: they are seeded by migration, and the API
// only reads them.
type TopicStore interface {
	// Create saves a new topic. Used by seeding and tests.
	// Returns ErrDuplicate if the name is already taken.
	Create(ctx context.Context, topic *domain.Topic) error

	// GetByID retrieves a topic by its unique ID.
	// Returns ErrTopicNotFound if the topic does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)

	// List returns the full topic catalog ordered by name.
	List(ctx context.Context) ([]*domain.Topic, error)

	// WithTx returns a new TopicStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TopicStore
}
