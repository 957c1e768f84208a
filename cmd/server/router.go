package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/campusqa/campusqa-api/internal/api"
	apimiddleware "github.com/campusqa/campusqa-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	tokenLifetime := time.Duration(app.config.Auth.TokenLifetimeMinutes) * time.Minute
	authHandler := api.NewAuthHandler(app.userService, app.jwtService, tokenLifetime, app.logger)
	topicHandler := api.NewTopicHandler(app.topicService, app.logger)
	questionHandler := api.NewQuestionHandler(app.questionService, app.logger)
	answerHandler := api.NewAnswerHandler(app.answerService, app.voteService, app.logger)

	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Public browsing endpoints
		r.Get("/topics", topicHandler.List)
		r.Get("/questions", questionHandler.List)

		// Question detail accepts anonymous callers but surfaces the
		// caller's own votes when a valid token is presented.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.AuthenticateOptional)
			r.Get("/questions/{id}", questionHandler.Get)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/questions", questionHandler.Create)
			r.Post("/questions/{id}/answers", answerHandler.Create)
			r.Post("/answers/{id}/vote", answerHandler.CastVote)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
