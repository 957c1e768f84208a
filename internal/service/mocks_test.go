package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/campusqa/campusqa-api/internal/domain"
	"github.com/campusqa/campusqa-api/internal/store"
)

// MockUserStore mocks the store.UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	args := m.Called(tx)
	return args.Get(0).(store.UserStore)
}

// MockTopicStore mocks the store.TopicStore interface
type MockTopicStore struct {
	mock.Mock
}

func (m *MockTopicStore) Create(ctx context.Context, topic *domain.Topic) error {
	args := m.Called(ctx, topic)
	return args.Error(0)
}

func (m *MockTopicStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Topic), args.Error(1)
}

func (m *MockTopicStore) List(ctx context.Context) ([]*domain.Topic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Topic), args.Error(1)
}

func (m *MockTopicStore) WithTx(tx *sql.Tx) store.TopicStore {
	args := m.Called(tx)
	return args.Get(0).(store.TopicStore)
}

// MockQuestionStore mocks the store.QuestionStore interface
type MockQuestionStore struct {
	mock.Mock
}

func (m *MockQuestionStore) Create(ctx context.Context, question *domain.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionStore) GetSummaryByID(
	ctx context.Context,
	id uuid.UUID,
) (*store.QuestionSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.QuestionSummary), args.Error(1)
}

func (m *MockQuestionStore) List(
	ctx context.Context,
	topicID *uuid.UUID,
) ([]*store.QuestionSummary, error) {
	args := m.Called(ctx, topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.QuestionSummary), args.Error(1)
}

func (m *MockQuestionStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuestionStore) WithTx(tx *sql.Tx) store.QuestionStore {
	args := m.Called(tx)
	return args.Get(0).(store.QuestionStore)
}

// MockAnswerStore mocks the store.AnswerStore interface
type MockAnswerStore struct {
	mock.Mock
}

func (m *MockAnswerStore) Create(ctx context.Context, answer *domain.Answer) error {
	args := m.Called(ctx, answer)
	return args.Error(0)
}

func (m *MockAnswerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Answer), args.Error(1)
}

func (m *MockAnswerStore) ListByQuestion(
	ctx context.Context,
	questionID uuid.UUID,
	callerID *uuid.UUID,
) ([]*store.AnswerWithScore, error) {
	args := m.Called(ctx, questionID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.AnswerWithScore), args.Error(1)
}

func (m *MockAnswerStore) WithTx(tx *sql.Tx) store.AnswerStore {
	args := m.Called(tx)
	return args.Get(0).(store.AnswerStore)
}

// MockVoteStore mocks the store.VoteStore interface
type MockVoteStore struct {
	mock.Mock
}

func (m *MockVoteStore) Create(ctx context.Context, vote *domain.Vote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *MockVoteStore) GetByUserAndAnswer(
	ctx context.Context,
	userID, answerID uuid.UUID,
) (*domain.Vote, error) {
	args := m.Called(ctx, userID, answerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vote), args.Error(1)
}

func (m *MockVoteStore) UpdatePolarity(
	ctx context.Context,
	id uuid.UUID,
	polarity domain.VotePolarity,
) error {
	args := m.Called(ctx, id, polarity)
	return args.Error(0)
}

func (m *MockVoteStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVoteStore) Score(ctx context.Context, answerID uuid.UUID) (int, error) {
	args := m.Called(ctx, answerID)
	return args.Int(0), args.Error(1)
}

func (m *MockVoteStore) WithTx(tx *sql.Tx) store.VoteStore {
	args := m.Called(tx)
	return args.Get(0).(store.VoteStore)
}
