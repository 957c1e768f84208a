package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campusqa/campusqa-api/internal/domain"
	"github.com/campusqa/campusqa-api/internal/store"
)

// QuestionDetail bundles a question with its answers for the detail view.
// Answers carry their live score and, when a caller is known, the caller's
// current vote on each answer.
type QuestionDetail struct {
	Question *store.QuestionSummary
	Answers  []*store.AnswerWithScore
}

// QuestionService provides question-related operations.
type QuestionService interface {
	// PostQuestion creates a new question under an existing topic.
	// Returns store.ErrTopicNotFound when the topic does not exist.
	PostQuestion(
		ctx context.Context,
		userID, topicID uuid.UUID,
		title, body string,
	) (*domain.Question, error)

	// ListQuestions returns question summaries newest-first. A non-nil
	// topicID restricts the listing to that topic.
	ListQuestions(ctx context.Context, topicID *uuid.UUID) ([]*store.QuestionSummary, error)

	// GetQuestion returns a question with its answers ordered by score.
	// A non-nil callerID fills in the caller's vote on each answer.
	// Returns store.ErrQuestionNotFound when the question does not exist.
	GetQuestion(ctx context.Context, id uuid.UUID, callerID *uuid.UUID) (*QuestionDetail, error)
}

// QuestionServiceImpl implements the QuestionService interface
type QuestionServiceImpl struct {
	questionStore store.QuestionStore
	answerStore   store.AnswerStore
	topicStore    store.TopicStore
	db            *sql.DB
	logger        *slog.Logger
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(
	questionStore store.QuestionStore,
	answerStore store.AnswerStore,
	topicStore store.TopicStore,
	db *sql.DB,
	logger *slog.Logger,
) QuestionService {
	return &QuestionServiceImpl{
		questionStore: questionStore,
		answerStore:   answerStore,
		topicStore:    topicStore,
		db:            db,
		logger:        logger.With("component", "question_service"),
	}
}

// PostQuestion creates a new question under an existing topic.
// Uses a transaction to ensure atomicity of the operation.
func (s *QuestionServiceImpl) PostQuestion(
	ctx context.Context,
	userID, topicID uuid.UUID,
	title, body string,
) (*domain.Question, error) {
	question, err := domain.NewQuestion(userID, topicID, title, body)
	if err != nil {
		s.logger.Debug("failed to create question object",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to post question: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.topicStore.WithTx(tx).GetByID(ctx, topicID); err != nil {
			return err
		}
		return s.questionStore.WithTx(tx).Create(ctx, question)
	})

	if err != nil {
		if errors.Is(err, store.ErrTopicNotFound) {
			s.logger.Debug("attempted to post question under missing topic",
				"topic_id", topicID)
		} else {
			s.logger.Error("failed to save question to database",
				"error", err,
				"user_id", userID)
		}
		return nil, fmt.Errorf("failed to post question: %w", err)
	}

	s.logger.Info("question posted successfully",
		"question_id", question.ID,
		"user_id", userID,
		"topic_id", topicID)

	return question, nil
}

// ListQuestions returns question summaries newest-first.
func (s *QuestionServiceImpl) ListQuestions(
	ctx context.Context,
	topicID *uuid.UUID,
) ([]*store.QuestionSummary, error) {
	questions, err := s.questionStore.List(ctx, topicID)
	if err != nil {
		s.logger.Error("failed to list questions",
			"error", err)
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	return questions, nil
}

// GetQuestion returns a question with its answers ordered by score.
func (s *QuestionServiceImpl) GetQuestion(
	ctx context.Context,
	id uuid.UUID,
	callerID *uuid.UUID,
) (*QuestionDetail, error) {
	question, err := s.questionStore.GetSummaryByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrQuestionNotFound) {
			s.logger.Debug("question not found",
				"question_id", id)
		} else {
			s.logger.Error("failed to retrieve question",
				"error", err,
				"question_id", id)
		}
		return nil, fmt.Errorf("failed to retrieve question: %w", err)
	}

	answers, err := s.answerStore.ListByQuestion(ctx, id, callerID)
	if err != nil {
		s.logger.Error("failed to list answers for question",
			"error", err,
			"question_id", id)
		return nil, fmt.Errorf("failed to retrieve question: %w", err)
	}

	return &QuestionDetail{Question: question, Answers: answers}, nil
}
