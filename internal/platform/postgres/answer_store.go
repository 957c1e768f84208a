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

// AnswerStore implements the store.AnswerStore interface using a PostgreSQL
// database as the storage backend.
type AnswerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAnswerStore creates a new PostgreSQL implementation of the AnswerStore
// interface.
func NewAnswerStore(db store.DBTX, logger *slog.Logger) *AnswerStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AnswerStore{
		db:     db,
		logger: logger.With(slog.String("component", "answer_store")),
	}
}

// Ensure AnswerStore implements store.AnswerStore interface
var _ store.AnswerStore = (*AnswerStore)(nil)

// Create implements store.AnswerStore.Create
func (s *AnswerStore) Create(ctx context.Context, answer *domain.Answer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := answer.Validate(); err != nil {
		log.Warn("answer validation failed during create",
			slog.String("error", err.Error()),
			slog.String("answer_id", answer.ID.String()))
		return err
	}

	query := `
		INSERT INTO answers (id, user_id, question_id, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		answer.ID,
		answer.UserID,
		answer.QuestionID,
		answer.Body,
		answer.CreatedAt,
		answer.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during answer creation",
				slog.String("answer_id", answer.ID.String()),
				slog.String("question_id", answer.QuestionID.String()))
		} else {
			log.Error("failed to create answer",
				slog.String("error", err.Error()),
				slog.String("answer_id", answer.ID.String()))
		}
		return MapError(err)
	}

	log.Info("answer created successfully",
		slog.String("answer_id", answer.ID.String()),
		slog.String("question_id", answer.QuestionID.String()))
	return nil
}

// GetByID implements store.AnswerStore.GetByID
func (s *AnswerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, question_id, body, created_at, updated_at
		FROM answers
		WHERE id = $1
	`

	var answer domain.Answer
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&answer.ID,
		&answer.UserID,
		&answer.QuestionID,
		&answer.Body,
		&answer.CreatedAt,
		&answer.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("answer not found", slog.String("answer_id", id.String()))
			return nil, store.ErrAnswerNotFound
		}
		log.Error("failed to get answer by ID",
			slog.String("error", err.Error()),
			slog.String("answer_id", id.String()))
		return nil, MapError(err)
	}

	return &answer, nil
}

// ListByQuestion implements store.AnswerStore.ListByQuestion
// Answers come back best-first: score descending, ties broken by creation
// time ascending. The score is aggregated live from the vote ledger; a
// non-nil callerID also pulls that caller's own vote per answer.
func (s *AnswerStore) ListByQuestion(
	ctx context.Context,
	questionID uuid.UUID,
	callerID *uuid.UUID,
) ([]*store.AnswerWithScore, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var caller any
	if callerID != nil {
		caller = *callerID
	}

	query := `
		SELECT a.id, a.user_id, a.question_id, a.body, a.created_at, a.updated_at,
		       u.username,
		       COALESCE(SUM(CASE v.polarity WHEN 'up' THEN 1 WHEN 'down' THEN -1 END), 0) AS score,
		       COALESCE(MAX(CASE WHEN v.user_id = $2::uuid THEN v.polarity END), '') AS caller_vote
		FROM answers a
		JOIN users u ON u.id = a.user_id
		LEFT JOIN votes v ON v.answer_id = a.id
		WHERE a.question_id = $1
		GROUP BY a.id, u.username
		ORDER BY score DESC, a.created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, questionID, caller)
	if err != nil {
		log.Error("failed to query answers",
			slog.String("error", err.Error()),
			slog.String("question_id", questionID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var answers []*store.AnswerWithScore
	for rows.Next() {
		var a store.AnswerWithScore
		var callerVote string
		err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.QuestionID,
			&a.Body,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.Author,
			&a.Score,
			&callerVote,
		)
		if err != nil {
			log.Error("failed to scan answer row", slog.String("error", err.Error()))
			return nil, err
		}
		a.CallerVote = domain.VotePolarity(callerVote)
		answers = append(answers, &a)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if answers == nil {
		answers = []*store.AnswerWithScore{}
	}

	log.Debug("listed answers",
		slog.String("question_id", questionID.String()),
		slog.Int("count", len(answers)))
	return answers, nil
}

// WithTx implements store.AnswerStore.WithTx
func (s *AnswerStore) WithTx(tx *sql.Tx) store.AnswerStore {
	return &AnswerStore{db: tx, logger: s.logger}
}
