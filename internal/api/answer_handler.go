package api

import (
	"log/slog"
	"net/http"

	"github.com/campusqa/campusqa-api/internal/api/shared"
	"github.com/campusqa/campusqa-api/internal/domain"
	"github.com/campusqa/campusqa-api/internal/service"
)

// AnswerHandler serves answer creation and voting.
type AnswerHandler struct {
	answerService service.AnswerService
	voteService   service.VoteService
	logger        *slog.Logger
}

// NewAnswerHandler creates a new AnswerHandler with the given dependencies.
func NewAnswerHandler(
	answerService service.AnswerService,
	voteService service.VoteService,
	logger *slog.Logger,
) *AnswerHandler {
	return &AnswerHandler{
		answerService: answerService,
		voteService:   voteService,
		logger:        logger.With("component", "answer_handler"),
	}
}

// Create handles POST /questions/{id}/answers. Requires authentication.
func (h *AnswerHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, questionID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req CreateAnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	answer, err := h.answerService.PostAnswer(r.Context(), userID, questionID, req.Body)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AnswerResponse{
		ID:         answer.ID,
		QuestionID: answer.QuestionID,
		Body:       answer.Body,
		Score:      0,
		CreatedAt:  answer.CreatedAt,
	})
}

// CastVote handles POST /answers/{id}/vote. Requires authentication.
// Re-casting the caller's current polarity removes the vote; casting the
// opposite polarity switches it.
func (h *AnswerHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	userID, answerID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req VoteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	result, err := h.voteService.CastVote(
		r.Context(), userID, answerID, domain.VotePolarity(req.Polarity))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, VoteResponse{
		AnswerID:   result.AnswerID,
		Score:      result.Score,
		CallerVote: string(result.CallerVote),
	})
}
