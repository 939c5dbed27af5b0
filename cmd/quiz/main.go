package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-bot/internal/app"
	"github.com/aliskhannn/quiz-bot/internal/config"
	"github.com/aliskhannn/quiz-bot/internal/delivery/terminal"
	"github.com/aliskhannn/quiz-bot/internal/logger"
	"github.com/aliskhannn/quiz-bot/internal/service"
	"github.com/aliskhannn/quiz-bot/internal/storage"
	"github.com/aliskhannn/quiz-bot/internal/view"
)

// localChatID keys the single terminal session in storage.
const localChatID = 0

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

	questionRepo, err := app.LoadQuestions(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("failed to load questions", zap.Error(err))
	}

	quizService := service.NewQuizService(questionRepo, storage.NewQuizStorage())

	session, err := quizService.Start(ctx, localChatID)
	if err != nil {
		lg.Fatal("failed to start quiz", zap.Error(err))
	}
	defer quizService.Finish(localChatID)

	runner := terminal.NewRunner(
		session,
		view.Texts{Title: cfg.Quiz.Title, Footer: cfg.Quiz.Footer},
		os.Stdin,
		os.Stdout,
		lg,
		true,
	)

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("quiz stopped with error", zap.Error(err))
	}
}
