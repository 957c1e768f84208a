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

// QuestionStore implements the store.QuestionStore interface using a
// PostgreSQL database as the storage backend.
type QuestionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewQuestionStore creates a new PostgreSQL implementation of the
// QuestionStore interface.
func NewQuestionStore(db store.DBTX, logger *slog.Logger) *QuestionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &QuestionStore{
		db:     db,
		logger: logger.With(slog.String("component", "question_store")),
	}
}

// Ensure QuestionStore implements store.QuestionStore interface
var _ store.QuestionStore = (*QuestionStore)(nil)

// Create implements store.QuestionStore.Create
func (s *QuestionStore) Create(ctx context.Context, question *domain.Question) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := question.Validate(); err != nil {
		log.Warn("question validation failed during create",
			slog.String("error", err.Error()),
			slog.String("question_id", question.ID.String()))
		return err
	}

	query := `
		INSERT INTO questions (id, user_id, topic_id, title, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		question.ID,
		question.UserID,
		question.TopicID,
		question.Title,
		question.Body,
		question.CreatedAt,
		question.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during question creation",
				slog.String("question_id", question.ID.String()),
				slog.String("topic_id", question.TopicID.String()))
		} else {
			log.Error("failed to create question",
				slog.String("error", err.Error()),
				slog.String("question_id", question.ID.String()))
		}
		return MapError(err)
	}

	log.Info("question created successfully",
		slog.String("question_id", question.ID.String()),
		slog.String("user_id", question.UserID.String()),
		slog.String("topic_id", question.TopicID.String()))
	return nil
}

// GetByID implements store.QuestionStore.GetByID
func (s *QuestionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, topic_id, title, body, created_at, updated_at
		FROM questions
		WHERE id = $1
	`

	var question domain.Question
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&question.ID,
		&question.UserID,
		&question.TopicID,
		&question.Title,
		&question.Body,
		&question.CreatedAt,
		&question.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("question not found", slog.String("question_id", id.String()))
			return nil, store.ErrQuestionNotFound
		}
		log.Error("failed to get question by ID",
			slog.String("error", err.Error()),
			slog.String("question_id", id.String()))
		return nil, MapError(err)
	}

	return &question, nil
}

// GetSummaryByID implements store.QuestionStore.GetSummaryByID
func (s *QuestionStore) GetSummaryByID(ctx context.Context, id uuid.UUID) (*store.QuestionSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT q.id, q.user_id, q.topic_id, q.title, q.body, q.created_at, q.updated_at,
		       u.username, t.name,
		       (SELECT COUNT(*) FROM answers a WHERE a.question_id = q.id)
		FROM questions q
		JOIN users u ON u.id = q.user_id
		JOIN topics t ON t.id = q.topic_id
		WHERE q.id = $1
	`

	var q store.QuestionSummary
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&q.ID,
		&q.UserID,
		&q.TopicID,
		&q.Title,
		&q.Body,
		&q.CreatedAt,
		&q.UpdatedAt,
		&q.Author,
		&q.TopicName,
		&q.AnswerCount,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("question not found", slog.String("question_id", id.String()))
			return nil, store.ErrQuestionNotFound
		}
		log.Error("failed to get question summary",
			slog.String("error", err.Error()),
			slog.String("question_id", id.String()))
		return nil, MapError(err)
	}

	return &q, nil
}

// List implements store.QuestionStore.List
// Questions come back newest-first; a non-nil topicID filters the listing.
func (s *QuestionStore) List(ctx context.Context, topicID *uuid.UUID) ([]*store.QuestionSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT q.id, q.user_id, q.topic_id, q.title, q.body, q.created_at, q.updated_at,
		       u.username, t.name,
		       (SELECT COUNT(*) FROM answers a WHERE a.question_id = q.id)
		FROM questions q
		JOIN users u ON u.id = q.user_id
		JOIN topics t ON t.id = q.topic_id
	`
	args := []any{}
	if topicID != nil {
		query += ` WHERE q.topic_id = $1`
		args = append(args, *topicID)
	}
	query += ` ORDER BY q.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query questions", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var questions []*store.QuestionSummary
	for rows.Next() {
		var q store.QuestionSummary
		err := rows.Scan(
			&q.ID,
			&q.UserID,
			&q.TopicID,
			&q.Title,
			&q.Body,
			&q.CreatedAt,
			&q.UpdatedAt,
			&q.Author,
			&q.TopicName,
			&q.AnswerCount,
		)
		if err != nil {
			log.Error("failed to scan question row", slog.String("error", err.Error()))
			return nil, err
		}
		questions = append(questions, &q)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if questions == nil {
		questions = []*store.QuestionSummary{}
	}

	log.Debug("listed questions", slog.Int("count", len(questions)))
	return questions, nil
}

// Delete implements store.QuestionStore.Delete
// Answers and their votes are removed by the schema's ON DELETE CASCADE.
func (s *QuestionStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete question",
			slog.String("error", err.Error()),
			slog.String("question_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrQuestionNotFound); err != nil {
		log.Debug("question not found for delete", slog.String("question_id", id.String()))
		return err
	}

	log.Info("question deleted", slog.String("question_id", id.String()))
	return nil
}

// WithTx implements store.QuestionStore.WithTx
func (s *QuestionStore) WithTx(tx *sql.Tx) store.QuestionStore {
	return &QuestionStore{db: tx, logger: s.logger}
}
