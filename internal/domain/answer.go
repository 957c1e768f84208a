package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Answer
var (
	ErrEmptyAnswerID         = errors.New("answer ID cannot be empty")
	ErrEmptyAnswerUserID     = errors.New("answer user ID cannot be empty")
	ErrEmptyAnswerQuestionID = errors.New("answer question ID cannot be empty")
	ErrEmptyAnswerBody       = errors.New("answer body cannot be empty")
)

// Answer is a reply to a question. Its score is never stored: it is the
// live aggregate of the vote ledger (upvotes minus downvotes), so it
// cannot drift from the votes themselves.
type Answer struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	QuestionID uuid.UUID `json:"question_id"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewAnswer creates a new Answer to the given question, owned by the
// given user. Returns an error if validation fails.
func NewAnswer(userID, questionID uuid.UUID, body string) (*Answer, error) {
	answer := &Answer{
		ID:         uuid.New(),
		UserID:     userID,
		QuestionID: questionID,
		Body:       body,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	if err := answer.Validate(); err != nil {
		return nil, err
	}

	return answer, nil
}

// Validate checks if the Answer has valid data.
func (a *Answer) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAnswerID
	}
	if a.UserID == uuid.Nil {
		return ErrEmptyAnswerUserID
	}
	if a.QuestionID == uuid.Nil {
		return ErrEmptyAnswerQuestionID
	}
	if a.Body == "" {
		return ErrEmptyAnswerBody
	}
	return nil
}
