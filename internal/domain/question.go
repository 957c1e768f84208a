package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// MaxQuestionTitleLength bounds question titles.
const MaxQuestionTitleLength = 200

// Common validation errors for Question
var (
	ErrEmptyQuestionID      = errors.New("question ID cannot be empty")
	ErrEmptyQuestionUserID  = errors.New("question user ID cannot be empty")
	ErrEmptyQuestionTopicID = errors.New("question topic ID cannot be empty")
	ErrEmptyQuestionTitle   = errors.New("question title cannot be empty")
	ErrQuestionTitleTooLong = errors.New("question title must be at most 200 characters long")
	ErrEmptyQuestionBody    = errors.New("question body cannot be empty")
)

// Question is a post asking for answers, filed under a topic and owned by
// the asking user. Deleting a question cascades to its answers and their
// votes at the storage layer.
type Question struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TopicID   uuid.UUID `json:"topic_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewQuestion creates a new Question owned by the given user under the
// given topic. Returns an error if validation fails.
func NewQuestion(userID, topicID uuid.UUID, title, body string) (*Question, error) {
	question := &Question{
		ID:        uuid.New(),
		UserID:    userID,
		TopicID:   topicID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := question.Validate(); err != nil {
		return nil, err
	}

	return question, nil
}

// Validate checks if the Question has valid data.
func (q *Question) Validate() error {
	if q.ID == uuid.Nil {
		return ErrEmptyQuestionID
	}
	if q.UserID == uuid.Nil {
		return ErrEmptyQuestionUserID
	}
	if q.TopicID == uuid.Nil {
		return ErrEmptyQuestionTopicID
	}
	if q.Title == "" {
		return ErrEmptyQuestionTitle
	}
	if len(q.Title) > MaxQuestionTitleLength {
		return ErrQuestionTitleTooLong
	}
	if q.Body == "" {
		return ErrEmptyQuestionBody
	}
	return nil
}
