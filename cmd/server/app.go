package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/campusqa/campusqa-api/internal/config"
	"github.com/campusqa/campusqa-api/internal/platform/postgres"
	"github.com/campusqa/campusqa-api/internal/service"
	"github.com/campusqa/campusqa-api/internal/service/auth"
)

// application holds the fully wired dependency graph for the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService      auth.JWTService
	userService     service.UserService
	topicService    service.TopicService
	questionService service.QuestionService
	answerService   service.AnswerService
	voteService     service.VoteService
}

// newApplication constructs stores and services on top of the given
// database connection.
func newApplication(cfg *config.Config, db *sql.DB, logger *slog.Logger) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := postgres.NewUserStore(db, logger)
	topicStore := postgres.NewTopicStore(db, logger)
	questionStore := postgres.NewQuestionStore(db, logger)
	answerStore := postgres.NewAnswerStore(db, logger)
	voteStore := postgres.NewVoteStore(db, logger)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	verifier := auth.NewBcryptVerifier()

	return &application{
		config:          cfg,
		logger:          logger,
		db:              db,
		jwtService:      jwtService,
		userService:     service.NewUserService(userStore, hasher, verifier, db, logger),
		topicService:    service.NewTopicService(topicStore, logger),
		questionService: service.NewQuestionService(questionStore, answerStore, topicStore, db, logger),
		answerService:   service.NewAnswerService(answerStore, questionStore, db, logger),
		voteService:     service.NewVoteService(voteStore, answerStore, db, logger),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("Failed to close database connection", "error", err)
	}
}
