package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusqa/campusqa-api/internal/domain"
	"github.com/campusqa/campusqa-api/internal/platform/postgres"
	"github.com/campusqa/campusqa-api/internal/store"
	"github.com/campusqa/campusqa-api/internal/testutils"
)

func TestVoteStore_Create_DuplicateRejected(t *testing.T) {
	ctx := context.Background()

	testutils.WithTx(t, requireDB(t), func(t *testing.T, tx *sql.Tx) {
		user := testutils.MustInsertUser(ctx, t, tx)
		topic := testutils.MustInsertTopic(ctx, t, tx)
		question := testutils.MustInsertQuestion(ctx, t, tx, user.ID, topic.ID)
		answer := testutils.MustInsertAnswer(ctx, t, tx, user.ID, question.ID)

		voteStore := postgres.NewVoteStore(tx, quietLogger())

		first, err := domain.NewVote(user.ID, answer.ID, domain.VoteUp)
		require.NoError(t, err)
		require.NoError(t, voteStore.Create(ctx, first))

		// A second row for the same user and answer violates the unique
		// constraint regardless of polarity.
		second, err := domain.NewVote(user.ID, answer.ID, domain.VoteDown)
		require.NoError(t, err)
		err = voteStore.Create(ctx, second)
		assert.ErrorIs(t, err, store.ErrDuplicateVote)
	})
}

func TestVoteStore_Score(t *testing.T) {
	ctx := context.Background()

	testutils.WithTx(t, requireDB(t), func(t *testing.T, tx *sql.Tx) {
		asker := testutils.MustInsertUser(ctx, t, tx)
		topic := testutils.MustInsertTopic(ctx, t, tx)
		question := testutils.MustInsertQuestion(ctx, t, tx, asker.ID, topic.ID)
		answer := testutils.MustInsertAnswer(ctx, t, tx, asker.ID, question.ID)

		voteStore := postgres.NewVoteStore(tx, quietLogger())

		score, err := voteStore.Score(ctx, answer.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, score, "answer with no votes scores zero")

		for _, polarity := range []domain.VotePolarity{
			domain.VoteUp, domain.VoteUp, domain.VoteDown,
		} {
			voter := testutils.MustInsertUser(ctx, t, tx)
			vote, err := domain.NewVote(voter.ID, answer.ID, polarity)
			require.NoError(t, err)
			require.NoError(t, voteStore.Create(ctx, vote))
		}

		score, err = voteStore.Score(ctx, answer.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, score, "two up and one down nets plus one")
	})
}

func TestVoteStore_UpdatePolarity(t *testing.T) {
	ctx := context.Background()

	testutils.WithTx(t, requireDB(t), func(t *testing.T, tx *sql.Tx) {
		user := testutils.MustInsertUser(ctx, t, tx)
		topic := testutils.MustInsertTopic(ctx, t, tx)
		question := testutils.MustInsertQuestion(ctx, t, tx, user.ID, topic.ID)
		answer := testutils.MustInsertAnswer(ctx, t, tx, user.ID, question.ID)

		voteStore := postgres.NewVoteStore(tx, quietLogger())

		vote, err := domain.NewVote(user.ID, answer.ID, domain.VoteUp)
		require.NoError(t, err)
		require.NoError(t, voteStore.Create(ctx, vote))

		require.NoError(t, voteStore.UpdatePolarity(ctx, vote.ID, domain.VoteDown))

		got, err := voteStore.GetByUserAndAnswer(ctx, user.ID, answer.ID)
		require.NoError(t, err)
		assert.Equal(t, vote.ID, got.ID, "switching polarity keeps the same row")
		assert.Equal(t, domain.VoteDown, got.Polarity)

		score, err := voteStore.Score(ctx, answer.ID)
		require.NoError(t, err)
		assert.Equal(t, -1, score)
	})
}

func TestVoteStore_Delete(t *testing.T) {
	ctx := context.Background()

	testutils.WithTx(t, requireDB(t), func(t *testing.T, tx *sql.Tx) {
		user := testutils.MustInsertUser(ctx, t, tx)
		topic := testutils.MustInsertTopic(ctx, t, tx)
		question := testutils.MustInsertQuestion(ctx, t, tx, user.ID, topic.ID)
		answer := testutils.MustInsertAnswer(ctx, t, tx, user.ID, question.ID)

		voteStore := postgres.NewVoteStore(tx, quietLogger())

		vote, err := domain.NewVote(user.ID, answer.ID, domain.VoteUp)
		require.NoError(t, err)
		require.NoError(t, voteStore.Create(ctx, vote))

		require.NoError(t, voteStore.Delete(ctx, vote.ID))

		_, err = voteStore.GetByUserAndAnswer(ctx, user.ID, answer.ID)
		assert.ErrorIs(t, err, store.ErrVoteNotFound)

		// Deleting again reports the vote as gone.
		err = voteStore.Delete(ctx, vote.ID)
		assert.ErrorIs(t, err, store.ErrVoteNotFound)
	})
}
