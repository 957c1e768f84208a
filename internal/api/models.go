package api

import (
	"time"

	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=64"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Major    string `json:"major,omitempty" validate:"omitempty,max=128"`
	Year     string `json:"year,omitempty"  validate:"omitempty,max=32"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"access_token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token"`

	// ExpiresAt is the ISO 8601 timestamp when the access token expires
	ExpiresAt string `json:"expires_at"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token
// refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// TopicResponse describes a single discussion topic.
type TopicResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

// CreateQuestionRequest defines the payload for posting a new question.
type CreateQuestionRequest struct {
	TopicID string `json:"topic_id" validate:"required,uuid"`
	Title   string `json:"title"    validate:"required,max=200"`
	Body    string `json:"body"     validate:"required"`
}

// QuestionResponse describes a question in listing and detail views.
type QuestionResponse struct {
	ID          uuid.UUID `json:"id"`
	TopicID     uuid.UUID `json:"topic_id"`
	TopicName   string    `json:"topic_name,omitempty"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Author      string    `json:"author,omitempty"`
	AnswerCount int       `json:"answer_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuestionDetailResponse bundles a question with its ranked answers.
type QuestionDetailResponse struct {
	Question QuestionResponse `json:"question"`
	Answers  []AnswerResponse `json:"answers"`
}

// CreateAnswerRequest defines the payload for posting a new answer.
type CreateAnswerRequest struct {
	Body string `json:"body" validate:"required"`
}

// AnswerResponse describes an answer with its live score. CallerVote is
// only present when the request carried a valid token and the caller has
// a vote on the answer.
type AnswerResponse struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"question_id"`
	Body       string    `json:"body"`
	Author     string    `json:"author,omitempty"`
	Score      int       `json:"score"`
	CallerVote string    `json:"caller_vote,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// VoteRequest defines the payload for casting a vote on an answer.
type VoteRequest struct {
	Polarity string `json:"polarity" validate:"required,oneof=up down"`
}

// VoteResponse reports the answer's score after a vote operation and the
// caller's resulting vote. An empty caller_vote means the operation
// removed the vote.
type VoteResponse struct {
	AnswerID   uuid.UUID `json:"answer_id"`
	Score      int       `json:"score"`
	CallerVote string    `json:"caller_vote"`
}
