package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campusqa/campusqa-api/internal/domain"
)

func TestTopicHandler_List(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		topics := []*domain.Topic{
			{ID: uuid.New(), Name: "Algorithms", Description: "Sorting, searching, graphs"},
			{ID: uuid.New(), Name: "Databases"},
		}

		topicService := new(MockTopicService)
		topicService.On("ListTopics", mock.Anything).Return(topics, nil)

		h := NewTopicHandler(topicService, testLogger())

		w := httptest.NewRecorder()
		h.List(w, httptest.NewRequest(http.MethodGet, "/api/topics", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp []TopicResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "Algorithms", resp[0].Name)
		assert.Equal(t, "Sorting, searching, graphs", resp[0].Description)
	})

	t.Run("service failure", func(t *testing.T) {
		topicService := new(MockTopicService)
		topicService.On("ListTopics", mock.Anything).Return(nil, errors.New("connection reset"))

		h := NewTopicHandler(topicService, testLogger())

		w := httptest.NewRecorder()
		h.List(w, httptest.NewRequest(http.MethodGet, "/api/topics", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}
