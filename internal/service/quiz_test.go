package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/quiz-bot/internal/service"
	"github.com/aliskhannn/quiz-bot/internal/storage"
)

type stubBankRepo struct {
	bank entities.QuestionBank
	err  error
}

func (r stubBankRepo) GetBank(context.Context) (entities.QuestionBank, error) {
	return r.bank, r.err
}

func oneQuestionBank() entities.QuestionBank {
	return entities.QuestionBank{Questions: []entities.Question{
		{ID: "q1", Prompt: "?", Options: []string{"a", "b"}, CorrectAnswer: "a"},
	}}
}

func TestQuizServiceStartAndGet(t *testing.T) {
	svc := service.NewQuizService(stubBankRepo{bank: oneQuestionBank()}, storage.NewQuizStorage())

	session, err := svc.Start(context.Background(), 42)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	got, err := svc.Get(42, session.ID())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != session {
		t.Fatal("Get returned a different session")
	}

	if _, err := svc.Get(42, uuid.Nil); err != nil {
		t.Errorf("Get without session ID: %v", err)
	}
}

func TestQuizServiceStartReplacesSession(t *testing.T) {
	svc := service.NewQuizService(stubBankRepo{bank: oneQuestionBank()}, storage.NewQuizStorage())
	ctx := context.Background()

	old, _ := svc.Start(ctx, 1)
	fresh, _ := svc.Start(ctx, 1)

	if _, err := svc.Get(1, old.ID()); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("Get(old) error = %v, want ErrSessionNotFound", err)
	}
	if _, err := svc.Get(1, fresh.ID()); err != nil {
		t.Errorf("Get(fresh): %v", err)
	}
}

func TestQuizServiceSessionsArePerChat(t *testing.T) {
	svc := service.NewQuizService(stubBankRepo{bank: oneQuestionBank()}, storage.NewQuizStorage())
	ctx := context.Background()

	a, _ := svc.Start(ctx, 1)
	b, _ := svc.Start(ctx, 2)

	if err := a.Select(1); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if b.State().Answers[0].IsAnswered() {
		t.Fatal("answer leaked into another chat's session")
	}
	if _, err := svc.Get(2, a.ID()); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("Get with foreign session ID error = %v, want ErrSessionNotFound", err)
	}
}

func TestQuizServiceFinish(t *testing.T) {
	svc := service.NewQuizService(stubBankRepo{bank: oneQuestionBank()}, storage.NewQuizStorage())

	session, _ := svc.Start(context.Background(), 7)
	svc.Finish(7)

	if _, err := svc.Get(7, session.ID()); !errors.Is(err, service.ErrSessionNotFound) {
		t.Fatalf("Get after Finish error = %v, want ErrSessionNotFound", err)
	}
}

func TestQuizServiceStartBankError(t *testing.T) {
	repoErr := errors.New("boom")
	svc := service.NewQuizService(stubBankRepo{err: repoErr}, storage.NewQuizStorage())

	if _, err := svc.Start(context.Background(), 1); !errors.Is(err, repoErr) {
		t.Fatalf("Start error = %v, want wrapped repo error", err)
	}
}
