package api

import (
	"log/slog"
	"net/http"

	"github.com/campusqa/campusqa-api/internal/api/shared"
	"github.com/campusqa/campusqa-api/internal/service"
)

// TopicHandler serves the topic catalog.
type TopicHandler struct {
	topicService service.TopicService
	logger       *slog.Logger
}

// NewTopicHandler creates a new TopicHandler with the given dependencies.
func NewTopicHandler(topicService service.TopicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{
		topicService: topicService,
		logger:       logger.With("component", "topic_handler"),
	}
}

// List handles GET /topics.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topicService.ListTopics(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list topics")
		return
	}

	resp := make([]TopicResponse, 0, len(topics))
	for _, topic := range topics {
		resp = append(resp, TopicResponse{
			ID:          topic.ID,
			Name:        topic.Name,
			Description: topic.Description,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
