package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campusqa/campusqa-api/internal/domain"
	"github.com/campusqa/campusqa-api/internal/store"
)

// TopicService provides read access to the discussion topic catalog.
type TopicService interface {
	// ListTopics returns all topics ordered by name.
	ListTopics(ctx context.Context) ([]*domain.Topic, error)
}

// TopicServiceImpl implements the TopicService interface
type TopicServiceImpl struct {
	topicStore store.TopicStore
	logger     *slog.Logger
}

// NewTopicService creates a new TopicService
func NewTopicService(topicStore store.TopicStore, logger *slog.Logger) TopicService {
	return &TopicServiceImpl{
		topicStore: topicStore,
		logger:     logger.With("component", "topic_service"),
	}
}

// ListTopics returns all topics ordered by name.
func (s *TopicServiceImpl) ListTopics(ctx context.Context) ([]*domain.Topic, error) {
	topics, err := s.topicStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list topics",
			"error", err)
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}

	return topics, nil
}
