package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusqa/campusqa-api/internal/domain"
	"github.com/campusqa/campusqa-api/internal/platform/postgres"
	"github.com/campusqa/campusqa-api/internal/store"
	"github.com/campusqa/campusqa-api/internal/testutils"
)

func TestQuestionStore_List(t *testing.T) {
	ctx := context.Background()

	testutils.WithTx(t, requireDB(t), func(t *testing.T, tx *sql.Tx) {
		asker := testutils.MustInsertUser(ctx, t, tx)
		topicA := testutils.MustInsertTopic(ctx, t, tx)
		topicB := testutils.MustInsertTopic(ctx, t, tx)

		older := testutils.MustInsertQuestion(ctx, t, tx, asker.ID, topicA.ID)
		newer := testutils.MustInsertQuestion(ctx, t, tx, asker.ID, topicA.ID)
		// Nudge the timestamps apart so ordering is deterministic.
		_, err := tx.ExecContext(ctx,
			`UPDATE questions SET created_at = created_at - interval '1 hour' WHERE id = $1`,
			older.ID)
		require.NoError(t, err)
		testutils.MustInsertQuestion(ctx, t, tx, asker.ID, topicB.ID)

		questionStore := postgres.NewQuestionStore(tx, quietLogger())

		t.Run("filtered by topic", func(t *testing.T) {
			questions, err := questionStore.List(ctx, &topicA.ID)
			require.NoError(t, err)
			require.Len(t, questions, 2)

			assert.Equal(t, newer.ID, questions[0].ID, "newest question lists first")
			assert.Equal(t, older.ID, questions[1].ID)
			assert.Equal(t, asker.Username, questions[0].Author)
			assert.Equal(t, topicA.Name, questions[0].TopicName)
		})

		t.Run("unfiltered includes all topics", func(t *testing.T) {
			questions, err := questionStore.List(ctx, nil)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(questions), 3)
		})
	})
}

func TestQuestionStore_GetSummaryByID(t *testing.T) {
	ctx := context.Background()

	testutils.WithTx(t, requireDB(t), func(t *testing.T, tx *sql.Tx) {
		asker := testutils.MustInsertUser(ctx, t, tx)
		topic := testutils.MustInsertTopic(ctx, t, tx)
		question := testutils.MustInsertQuestion(ctx, t, tx, asker.ID, topic.ID)
		testutils.MustInsertAnswer(ctx, t, tx, asker.ID, question.ID)
		testutils.MustInsertAnswer(ctx, t, tx, asker.ID, question.ID)

		questionStore := postgres.NewQuestionStore(tx, quietLogger())

		summary, err := questionStore.GetSummaryByID(ctx, question.ID)
		require.NoError(t, err)
		assert.Equal(t, question.Title, summary.Title)
		assert.Equal(t, asker.Username, summary.Author)
		assert.Equal(t, topic.Name, summary.TopicName)
		assert.Equal(t, 2, summary.AnswerCount)

		_, err = questionStore.GetSummaryByID(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrQuestionNotFound)
	})
}

func TestQuestionStore_Delete_CascadesToAnswersAndVotes(t *testing.T) {
	ctx := context.Background()

	testutils.WithTx(t, requireDB(t), func(t *testing.T, tx *sql.Tx) {
		asker := testutils.MustInsertUser(ctx, t, tx)
		voter := testutils.MustInsertUser(ctx, t, tx)
		topic := testutils.MustInsertTopic(ctx, t, tx)
		question := testutils.MustInsertQuestion(ctx, t, tx, asker.ID, topic.ID)
		answer := testutils.MustInsertAnswer(ctx, t, tx, asker.ID, question.ID)

		voteStore := postgres.NewVoteStore(tx, quietLogger())
		vote, err := domain.NewVote(voter.ID, answer.ID, domain.VoteUp)
		require.NoError(t, err)
		require.NoError(t, voteStore.Create(ctx, vote))

		questionStore := postgres.NewQuestionStore(tx, quietLogger())
		require.NoError(t, questionStore.Delete(ctx, question.ID))

		_, err = questionStore.GetByID(ctx, question.ID)
		assert.ErrorIs(t, err, store.ErrQuestionNotFound)

		answerStore := postgres.NewAnswerStore(tx, quietLogger())
		_, err = answerStore.GetByID(ctx, answer.ID)
		assert.ErrorIs(t, err, store.ErrAnswerNotFound)

		_, err = voteStore.GetByUserAndAnswer(ctx, voter.ID, answer.ID)
		assert.ErrorIs(t, err, store.ErrVoteNotFound)
	})
}

func TestQuestionStore_Create_MissingTopic(t *testing.T) {
	ctx := context.Background()

	testutils.WithTx(t, requireDB(t), func(t *testing.T, tx *sql.Tx) {
		asker := testutils.MustInsertUser(ctx, t, tx)

		question, err := domain.NewQuestion(asker.ID, uuid.New(), "Orphaned question", "body")
		require.NoError(t, err)

		questionStore := postgres.NewQuestionStore(tx, quietLogger())
		err = questionStore.Create(ctx, question)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}
