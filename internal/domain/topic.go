package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Common validation errors for Topic
var (
	ErrEmptyTopicID   = errors.New("topic ID cannot be empty")
	ErrEmptyTopicName = errors.New("topic name cannot be empty")
)

// Topic is a fixed category a question is filed under. Topics are seeded
// by migration and never created or deleted through the API.
type Topic struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

// NewTopic creates a new Topic with the given name and optional description.
func NewTopic(name, description string) (*Topic, error) {
	topic := &Topic{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
	}

	if err := topic.Validate(); err != nil {
		return nil, err
	}

	return topic, nil
}

// Validate checks if the Topic has valid data.
func (t *Topic) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTopicID
	}
	if t.Name == "" {
		return ErrEmptyTopicName
	}
	return nil
}
