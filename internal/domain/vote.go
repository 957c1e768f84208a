package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// VotePolarity is the direction of a vote on an answer.
type VotePolarity string

// Possible vote polarities
const (
	VoteUp   VotePolarity = "up"
	VoteDown VotePolarity = "down"
)

// Common validation errors for Vote
var (
	ErrEmptyVoteID       = errors.New("vote ID cannot be empty")
	ErrEmptyVoteUserID   = errors.New("vote user ID cannot be empty")
	ErrEmptyVoteAnswerID = errors.New("vote answer ID cannot be empty")
	ErrInvalidPolarity   = errors.New("invalid vote polarity")
)

// Vote is one user's up or down vote on one answer. At most one vote
// exists per (user, answer) pair; casting the same polarity again removes
// the vote, casting the opposite polarity switches it in place.
type Vote struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"user_id"`
	AnswerID  uuid.UUID    `json:"answer_id"`
	Polarity  VotePolarity `json:"polarity"`
	CreatedAt time.Time    `json:"created_at"`
}

// NewVote creates a new Vote by the given user on the given answer.
// Returns an error if validation fails.
func NewVote(userID, answerID uuid.UUID, polarity VotePolarity) (*Vote, error) {
	vote := &Vote{
		ID:        uuid.New(),
		UserID:    userID,
		AnswerID:  answerID,
		Polarity:  polarity,
		CreatedAt: time.Now().UTC(),
	}

	if err := vote.Validate(); err != nil {
		return nil, err
	}

	return vote, nil
}

// Validate checks if the Vote has valid data.
func (v *Vote) Validate() error {
	if v.ID == uuid.Nil {
		return ErrEmptyVoteID
	}
	if v.UserID == uuid.Nil {
		return ErrEmptyVoteUserID
	}
	if v.AnswerID == uuid.Nil {
		return ErrEmptyVoteAnswerID
	}
	if !v.Polarity.Valid() {
		return ErrInvalidPolarity
	}
	return nil
}

// Valid reports whether the polarity is one of the known directions.
func (p VotePolarity) Valid() bool {
	return p == VoteUp || p == VoteDown
}

// Opposite returns the reversed polarity. Calling it on an invalid
// polarity returns the value unchanged.
func (p VotePolarity) Opposite() VotePolarity {
	switch p {
	case VoteUp:
		return VoteDown
	case VoteDown:
		return VoteUp
	default:
		return p
	}
}
