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

// VoteResult reports the outcome of a vote operation: the answer's score
// after the operation and the caller's resulting vote. CallerVote is empty
// when the operation removed the caller's vote.
type VoteResult struct {
	AnswerID   uuid.UUID
	Score      int
	CallerVote domain.VotePolarity
}

// VoteService provides voting operations on answers.
type VoteService interface {
	// CastVote applies a vote from the user to the answer. Casting the
	// same polarity as an existing vote removes it; casting the opposite
	// polarity replaces the existing vote in place. A user therefore
	// holds at most one vote per answer at any time.
	// Returns store.ErrAnswerNotFound when the answer does not exist and
	// domain.ErrInvalidPolarity when the polarity is not up or down.
	CastVote(
		ctx context.Context,
		userID, answerID uuid.UUID,
		polarity domain.VotePolarity,
	) (*VoteResult, error)
}

// VoteServiceImpl implements the VoteService interface
type VoteServiceImpl struct {
	voteStore   store.VoteStore
	answerStore store.AnswerStore
	db          *sql.DB
	logger      *slog.Logger
}

// NewVoteService creates a new VoteService
func NewVoteService(
	voteStore store.VoteStore,
	answerStore store.AnswerStore,
	db *sql.DB,
	logger *slog.Logger,
) VoteService {
	return &VoteServiceImpl{
		voteStore:   voteStore,
		answerStore: answerStore,
		db:          db,
		logger:      logger.With("component", "vote_service"),
	}
}

// CastVote applies a vote from the user to the answer.
// The existence check, the vote mutation, and the score read all run in a
// single transaction so concurrent casts cannot leave a user with two
// votes on one answer.
func (s *VoteServiceImpl) CastVote(
	ctx context.Context,
	userID, answerID uuid.UUID,
	polarity domain.VotePolarity,
) (*VoteResult, error) {
	if !polarity.Valid() {
		s.logger.Debug("rejected vote with invalid polarity",
			"polarity", string(polarity),
			"user_id", userID)
		return nil, domain.ErrInvalidPolarity
	}

	result := &VoteResult{AnswerID: answerID}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txVotes := s.voteStore.WithTx(tx)
		txAnswers := s.answerStore.WithTx(tx)

		if _, err := txAnswers.GetByID(ctx, answerID); err != nil {
			return err
		}

		existing, err := txVotes.GetByUserAndAnswer(ctx, userID, answerID)
		switch {
		case errors.Is(err, store.ErrVoteNotFound):
			vote, err := domain.NewVote(userID, answerID, polarity)
			if err != nil {
				return err
			}
			if err := txVotes.Create(ctx, vote); err != nil {
				return err
			}
			result.CallerVote = polarity

		case err != nil:
			return err

		case existing.Polarity == polarity:
			// Re-casting the same polarity toggles the vote off.
			if err := txVotes.Delete(ctx, existing.ID); err != nil {
				return err
			}
			result.CallerVote = ""

		default:
			// Opposite polarity switches the vote in place.
			if err := txVotes.UpdatePolarity(ctx, existing.ID, polarity); err != nil {
				return err
			}
			result.CallerVote = polarity
		}

		score, err := txVotes.Score(ctx, answerID)
		if err != nil {
			return err
		}
		result.Score = score

		return nil
	})

	if err != nil {
		if errors.Is(err, store.ErrAnswerNotFound) {
			s.logger.Debug("attempted to vote on missing answer",
				"answer_id", answerID)
		} else if errors.Is(err, store.ErrDuplicateVote) {
			s.logger.Debug("concurrent duplicate vote rejected",
				"answer_id", answerID,
				"user_id", userID)
		} else {
			s.logger.Error("failed to cast vote",
				"error", err,
				"answer_id", answerID,
				"user_id", userID)
		}
		return nil, fmt.Errorf("failed to cast vote: %w", err)
	}

	s.logger.Info("vote cast successfully",
		"answer_id", answerID,
		"user_id", userID,
		"polarity", string(result.CallerVote),
		"score", result.Score)

	return result, nil
}
