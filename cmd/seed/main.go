package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-bot/internal/app"
	"github.com/aliskhannn/quiz-bot/internal/config"
	"github.com/aliskhannn/quiz-bot/internal/logger"
	"github.com/aliskhannn/quiz-bot/internal/repository"
)

// seed copies the embedded (or file, with questions.source=file) question
// bank into Postgres under questions.bank.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var repo *repository.QuestionRepository
	if cfg.Questions.Source == config.SourceFile {
		repo, err = repository.NewFileQuestionRepository(cfg.Questions.Path)
	} else {
		repo, err = repository.NewEmbeddedQuestionRepository()
	}
	if err != nil {
		lg.Fatal("failed to read questions", zap.Error(err))
	}

	bank, err := repo.GetBank(ctx)
	if err != nil {
		lg.Fatal("failed to read questions", zap.Error(err))
	}

	if err := app.SeedQuestions(ctx, cfg, bank); err != nil {
		lg.Fatal("failed to seed questions", zap.Error(err))
	}

	lg.Info("question bank seeded",
		zap.String("bank", cfg.Questions.Bank),
		zap.Int("questions", bank.Len()),
	)
}
