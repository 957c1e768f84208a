package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/campusqa/campusqa-api/internal/api/shared"
	"github.com/campusqa/campusqa-api/internal/domain"
	"github.com/campusqa/campusqa-api/internal/service"
	"github.com/campusqa/campusqa-api/internal/store"
)

// QuestionHandler serves question listing, detail, and creation.
type QuestionHandler struct {
	questionService service.QuestionService
	logger          *slog.Logger
}

// NewQuestionHandler creates a new QuestionHandler with the given
// dependencies.
func NewQuestionHandler(
	questionService service.QuestionService,
	logger *slog.Logger,
) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		logger:          logger.With("component", "question_handler"),
	}
}

// List handles GET /questions. An optional topic query parameter filters
// the listing to a single topic.
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	var topicID *uuid.UUID
	if raw := r.URL.Query().Get("topic"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid topic filter")
			return
		}
		topicID = &id
	}

	questions, err := h.questionService.ListQuestions(r.Context(), topicID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list questions")
		return
	}

	resp := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		resp = append(resp, questionSummaryToResponse(q))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Get handles GET /questions/{id}. Authentication is optional; when a
// valid token is present each answer carries the caller's own vote.
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	questionID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "Invalid question ID")
		return
	}

	var callerID *uuid.UUID
	if userID, ok := getUserIDFromContext(r); ok {
		callerID = &userID
	}

	detail, err := h.questionService.GetQuestion(r.Context(), questionID, callerID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	answers := make([]AnswerResponse, 0, len(detail.Answers))
	for _, a := range detail.Answers {
		answers = append(answers, answerToResponse(a))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, QuestionDetailResponse{
		Question: questionSummaryToResponse(detail.Question),
		Answers:  answers,
	})
}

// Create handles POST /questions. Requires authentication.
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req CreateQuestionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	// Already shape-checked by the uuid validate tag.
	topicID, err := uuid.Parse(req.TopicID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid topic_id")
		return
	}

	question, err := h.questionService.PostQuestion(
		r.Context(), userID, topicID, req.Title, req.Body)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, QuestionResponse{
		ID:        question.ID,
		TopicID:   question.TopicID,
		Title:     question.Title,
		Body:      question.Body,
		CreatedAt: question.CreatedAt,
	})
}

func questionSummaryToResponse(q *store.QuestionSummary) QuestionResponse {
	return QuestionResponse{
		ID:          q.ID,
		TopicID:     q.TopicID,
		TopicName:   q.TopicName,
		Title:       q.Title,
		Body:        q.Body,
		Author:      q.Author,
		AnswerCount: q.AnswerCount,
		CreatedAt:   q.CreatedAt,
	}
}

func answerToResponse(a *store.AnswerWithScore) AnswerResponse {
	return AnswerResponse{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		Body:       a.Body,
		Author:     a.Author,
		Score:      a.Score,
		CallerVote: string(a.CallerVote),
		CreatedAt:  a.CreatedAt,
	}
}
