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

// AnswerService provides answer-related operations.
type AnswerService interface {
	// PostAnswer creates a new answer on an existing question.
	// Returns store.ErrQuestionNotFound when the question does not exist.
	PostAnswer(ctx context.Context, userID, questionID uuid.UUID, body string) (*domain.Answer, error)
}

// AnswerServiceImpl implements the AnswerService interface
type AnswerServiceImpl struct {
	answerStore   store.AnswerStore
	questionStore store.QuestionStore
	db            *sql.DB
	logger        *slog.Logger
}

// NewAnswerService creates a new AnswerService
func NewAnswerService(
	answerStore store.AnswerStore,
	questionStore store.QuestionStore,
	db *sql.DB,
	logger *slog.Logger,
) AnswerService {
	return &AnswerServiceImpl{
		answerStore:   answerStore,
		questionStore: questionStore,
		db:            db,
		logger:        logger.With("component", "answer_service"),
	}
}

// PostAnswer creates a new answer on an existing question.
// Uses a transaction to ensure atomicity of the operation.
func (s *AnswerServiceImpl) PostAnswer(
	ctx context.Context,
	userID, questionID uuid.UUID,
	body string,
) (*domain.Answer, error) {
	answer, err := domain.NewAnswer(userID, questionID, body)
	if err != nil {
		s.logger.Debug("failed to create answer object",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to post answer: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.questionStore.WithTx(tx).GetByID(ctx, questionID); err != nil {
			return err
		}
		return s.answerStore.WithTx(tx).Create(ctx, answer)
	})

	if err != nil {
		if errors.Is(err, store.ErrQuestionNotFound) {
			s.logger.Debug("attempted to answer missing question",
				"question_id", questionID)
		} else {
			s.logger.Error("failed to save answer to database",
				"error", err,
				"user_id", userID)
		}
		return nil, fmt.Errorf("failed to post answer: %w", err)
	}

	s.logger.Info("answer posted successfully",
		"answer_id", answer.ID,
		"question_id", questionID,
		"user_id", userID)

	return answer, nil
}
