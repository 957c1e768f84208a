package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/campusqa/campusqa-api/internal/domain"
	"github.com/campusqa/campusqa-api/internal/service"
	"github.com/campusqa/campusqa-api/internal/store"
)

// MockUserService mocks the service.UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(
	ctx context.Context,
	username, email, password, major, year string,
) (*domain.User, error) {
	args := m.Called(ctx, username, email, password, major, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Authenticate(
	ctx context.Context,
	email, password string,
) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockTopicService mocks the service.TopicService interface
type MockTopicService struct {
	mock.Mock
}

func (m *MockTopicService) ListTopics(ctx context.Context) ([]*domain.Topic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Topic), args.Error(1)
}

// MockQuestionService mocks the service.QuestionService interface
type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) PostQuestion(
	ctx context.Context,
	userID, topicID uuid.UUID,
	title, body string,
) (*domain.Question, error) {
	args := m.Called(ctx, userID, topicID, title, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionService) ListQuestions(
	ctx context.Context,
	topicID *uuid.UUID,
) ([]*store.QuestionSummary, error) {
	args := m.Called(ctx, topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.QuestionSummary), args.Error(1)
}

func (m *MockQuestionService) GetQuestion(
	ctx context.Context,
	id uuid.UUID,
	callerID *uuid.UUID,
) (*service.QuestionDetail, error) {
	args := m.Called(ctx, id, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.QuestionDetail), args.Error(1)
}

// MockAnswerService mocks the service.AnswerService interface
type MockAnswerService struct {
	mock.Mock
}

func (m *MockAnswerService) PostAnswer(
	ctx context.Context,
	userID, questionID uuid.UUID,
	body string,
) (*domain.Answer, error) {
	args := m.Called(ctx, userID, questionID, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Answer), args.Error(1)
}

// MockVoteService mocks the service.VoteService interface
type MockVoteService struct {
	mock.Mock
}

func (m *MockVoteService) CastVote(
	ctx context.Context,
	userID, answerID uuid.UUID,
	polarity domain.VotePolarity,
) (*service.VoteResult, error) {
	args := m.Called(ctx, userID, answerID, polarity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.VoteResult), args.Error(1)
}
