package testutils

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusqa/campusqa-api/internal/domain"
	"github.com/campusqa/campusqa-api/internal/platform/postgres"
	"github.com/campusqa/campusqa-api/internal/store"
)

// discardLogger keeps store logging quiet during tests.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// MustInsertUser creates a user with a unique username and email and
// persists it through the user store. Fails the test on error.
func MustInsertUser(ctx context.Context, t *testing.T, db store.DBTX) *domain.User {
	t.Helper()

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	user, err := domain.NewUser("student_"+suffix, "student_"+suffix+"@campus.edu", "password123")
	if err != nil {
		t.Fatalf("failed to build test user: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	user.HashedPassword = string(hashed)
	user.Password = ""

	if err := postgres.NewUserStore(db, discardLogger).Create(ctx, user); err != nil {
		t.Fatalf("failed to insert test user: %v", err)
	}

	return user
}

// MustInsertTopic creates a topic with a unique name and persists it.
// Fails the test on error.
func MustInsertTopic(ctx context.Context, t *testing.T, db store.DBTX) *domain.Topic {
	t.Helper()

	topic, err := domain.NewTopic("Topic "+uuid.NewString()[:8], "test topic")
	if err != nil {
		t.Fatalf("failed to build test topic: %v", err)
	}

	if err := postgres.NewTopicStore(db, discardLogger).Create(ctx, topic); err != nil {
		t.Fatalf("failed to insert test topic: %v", err)
	}

	return topic
}

// MustInsertQuestion creates a question owned by the given user under the
// given topic and persists it. Fails the test on error.
func MustInsertQuestion(
	ctx context.Context,
	t *testing.T,
	db store.DBTX,
	userID, topicID uuid.UUID,
) *domain.Question {
	t.Helper()

	question, err := domain.NewQuestion(userID, topicID, "How does this work?", "Detailed question body.")
	if err != nil {
		t.Fatalf("failed to build test question: %v", err)
	}

	if err := postgres.NewQuestionStore(db, discardLogger).Create(ctx, question); err != nil {
		t.Fatalf("failed to insert test question: %v", err)
	}

	return question
}

// MustInsertAnswer creates an answer by the given user on the given
// question and persists it. Fails the test on error.
func MustInsertAnswer(
	ctx context.Context,
	t *testing.T,
	db store.DBTX,
	userID, questionID uuid.UUID,
) *domain.Answer {
	t.Helper()

	answer, err := domain.NewAnswer(userID, questionID, "You can do it like this.")
	if err != nil {
		t.Fatalf("failed to build test answer: %v", err)
	}

	if err := postgres.NewAnswerStore(db, discardLogger).Create(ctx, answer); err != nil {
		t.Fatalf("failed to insert test answer: %v", err)
	}

	return answer
}
