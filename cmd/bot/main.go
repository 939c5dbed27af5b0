package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-bot/internal/app"
	"github.com/aliskhannn/quiz-bot/internal/config"
	"github.com/aliskhannn/quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/quiz-bot/internal/logger"
	"github.com/aliskhannn/quiz-bot/internal/service"
	"github.com/aliskhannn/quiz-bot/internal/storage"
	"github.com/aliskhannn/quiz-bot/internal/view"
)

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

	token, err := cfg.TelegramToken()
	if err != nil {
		lg.Fatal("telegram token is not configured", zap.Error(err))
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}
	bot.Debug = cfg.Telegram.Debug

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "quiz",
			Description: "Start a new quiz",
		},
		{
			Command:     "help",
			Description: "Help",
		},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	questionRepo, err := app.LoadQuestions(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("failed to load questions", zap.Error(err))
	}

	quizStorage := storage.NewQuizStorage()
	quizService := service.NewQuizService(questionRepo, quizStorage)

	handler := telegram.NewHandler(
		bot,
		lg,
		quizService,
		quizStorage,
		view.Texts{Title: cfg.Quiz.Title, Footer: cfg.Quiz.Footer},
		cfg.Telegram.UpdateTimeout,
	)

	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("handler stopped with error", zap.Error(err))
	}

	bot.StopReceivingUpdates()
	lg.Info("shutdown signal received")
}
