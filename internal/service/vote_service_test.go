package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/campusqa/campusqa-api/internal/domain"
)

func TestVoteService_CastVote_InvalidPolarity(t *testing.T) {
	ctx := context.Background()

	voteStore := new(MockVoteStore)
	answerStore := new(MockAnswerStore)
	svc := NewVoteService(voteStore, answerStore, nil, testLogger())

	for _, polarity := range []domain.VotePolarity{"", "sideways", "UP"} {
		result, err := svc.CastVote(ctx, uuid.New(), uuid.New(), polarity)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrInvalidPolarity)
	}

	// Rejected before any store access.
	voteStore.AssertNotCalled(t, "Create")
	answerStore.AssertNotCalled(t, "GetByID")
}
