package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campusqa/campusqa-api/internal/domain"
	"github.com/campusqa/campusqa-api/internal/platform/logger"
	"github.com/campusqa/campusqa-api/internal/store"
)

// votesUserAnswerKey is the unique constraint backing the one-vote-per-
// (user, answer) invariant.
const votesUserAnswerKey = "votes_user_id_answer_id_key"

// VoteStore implements the store.VoteStore interface using a PostgreSQL
// database as the storage backend.
type VoteStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewVoteStore creates a new PostgreSQL implementation of the VoteStore
// interface.
func NewVoteStore(db store.DBTX, logger *slog.Logger) *VoteStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &VoteStore{
		db:     db,
		logger: logger.With(slog.String("component", "vote_store")),
	}
}

// Ensure VoteStore implements store.VoteStore interface
var _ store.VoteStore = (*VoteStore)(nil)

// Create implements store.VoteStore.Create
func (s *VoteStore) Create(ctx context.Context, vote *domain.Vote) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := vote.Validate(); err != nil {
		log.Warn("vote validation failed during create",
			slog.String("error", err.Error()),
			slog.String("vote_id", vote.ID.String()))
		return err
	}

	query := `
		INSERT INTO votes (id, user_id, answer_id, polarity, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		vote.ID,
		vote.UserID,
		vote.AnswerID,
		vote.Polarity,
		vote.CreatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			// Concurrent double submission from the same user; the unique
			// constraint is the correctness boundary here.
			log.Debug("duplicate vote rejected",
				slog.String("user_id", vote.UserID.String()),
				slog.String("answer_id", vote.AnswerID.String()))
			return MapUniqueViolation(err, votesUserAnswerKey, store.ErrDuplicateVote)
		}
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during vote creation",
				slog.String("vote_id", vote.ID.String()),
				slog.String("answer_id", vote.AnswerID.String()))
		} else {
			log.Error("failed to create vote",
				slog.String("error", err.Error()),
				slog.String("vote_id", vote.ID.String()))
		}
		return MapError(err)
	}

	log.Info("vote created",
		slog.String("vote_id", vote.ID.String()),
		slog.String("answer_id", vote.AnswerID.String()),
		slog.String("polarity", string(vote.Polarity)))
	return nil
}

// GetByUserAndAnswer implements store.VoteStore.GetByUserAndAnswer
func (s *VoteStore) GetByUserAndAnswer(
	ctx context.Context,
	userID, answerID uuid.UUID,
) (*domain.Vote, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, answer_id, polarity, created_at
		FROM votes
		WHERE user_id = $1 AND answer_id = $2
	`

	var vote domain.Vote
	var polarity string
	err := s.db.QueryRowContext(ctx, query, userID, answerID).Scan(
		&vote.ID,
		&vote.UserID,
		&vote.AnswerID,
		&polarity,
		&vote.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrVoteNotFound
		}
		log.Error("failed to get vote",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("answer_id", answerID.String()))
		return nil, MapError(err)
	}

	vote.Polarity = domain.VotePolarity(polarity)
	return &vote, nil
}

// UpdatePolarity implements store.VoteStore.UpdatePolarity
func (s *VoteStore) UpdatePolarity(
	ctx context.Context,
	id uuid.UUID,
	polarity domain.VotePolarity,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !polarity.Valid() {
		return domain.ErrInvalidPolarity
	}

	result, err := s.db.ExecContext(
		ctx,
		`UPDATE votes SET polarity = $1 WHERE id = $2`,
		polarity,
		id,
	)
	if err != nil {
		log.Error("failed to update vote polarity",
			slog.String("error", err.Error()),
			slog.String("vote_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrVoteNotFound); err != nil {
		log.Debug("vote not found for polarity update", slog.String("vote_id", id.String()))
		return err
	}

	log.Info("vote polarity switched",
		slog.String("vote_id", id.String()),
		slog.String("polarity", string(polarity)))
	return nil
}

// Delete implements store.VoteStore.Delete
func (s *VoteStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM votes WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete vote",
			slog.String("error", err.Error()),
			slog.String("vote_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrVoteNotFound); err != nil {
		log.Debug("vote not found for delete", slog.String("vote_id", id.String()))
		return err
	}

	log.Info("vote removed", slog.String("vote_id", id.String()))
	return nil
}

// Score implements store.VoteStore.Score
// The score is always computed from the ledger, never cached, so it cannot
// drift from the votes themselves.
func (s *VoteStore) Score(ctx context.Context, answerID uuid.UUID) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT COALESCE(SUM(CASE polarity WHEN 'up' THEN 1 WHEN 'down' THEN -1 END), 0)
		FROM votes
		WHERE answer_id = $1
	`

	var score int
	if err := s.db.QueryRowContext(ctx, query, answerID).Scan(&score); err != nil {
		log.Error("failed to compute answer score",
			slog.String("error", err.Error()),
			slog.String("answer_id", answerID.String()))
		return 0, MapError(err)
	}

	return score, nil
}

// WithTx implements store.VoteStore.WithTx
func (s *VoteStore) WithTx(tx *sql.Tx) store.VoteStore {
	return &VoteStore{db: tx, logger: s.logger}
}
