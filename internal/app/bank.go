// Package app wires configuration to the question bank sources.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-bot/internal/config"
	"github.com/aliskhannn/quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/quiz-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/quiz-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/quiz-bot/internal/repository"
)

// LoadQuestions loads the question bank from the configured source.
// The bank is read once; later changes to the source are not observed.
func LoadQuestions(ctx context.Context, cfg *config.Config, log *zap.Logger) (*repository.QuestionRepository, error) {
	log.Info("loading question bank",
		zap.String("source", cfg.Questions.Source),
	)

	switch cfg.Questions.Source {
	case config.SourceFile:
		return repository.NewFileQuestionRepository(cfg.Questions.Path)
	case config.SourcePostgres:
		bank, err := loadFromPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return repository.NewQuestionRepository(bank)
	default:
		return repository.NewEmbeddedQuestionRepository()
	}
}

func loadFromPostgres(ctx context.Context, cfg *config.Config) (entities.QuestionBank, error) {
	var bank entities.QuestionBank

	err := withPool(ctx, cfg, func(tr *postgres.Transactor) error {
		return tr.WithinReadOnlyTx(ctx, func(ctx context.Context, tx postgres.DBTX) error {
			var err error
			bank, err = pgrepo.NewQuestionRepository(tx).LoadBank(ctx, cfg.Questions.Bank)
			return err
		})
	})
	if err != nil {
		return entities.QuestionBank{}, fmt.Errorf("load bank %q: %w", cfg.Questions.Bank, err)
	}

	return bank, nil
}

// SeedQuestions writes bank into Postgres under the configured bank name.
func SeedQuestions(ctx context.Context, cfg *config.Config, bank entities.QuestionBank) error {
	if err := bank.Validate(); err != nil {
		return err
	}

	return withPool(ctx, cfg, func(tr *postgres.Transactor) error {
		return tr.WithinTx(ctx, func(ctx context.Context, tx postgres.DBTX) error {
			return pgrepo.NewQuestionRepository(tx).SaveBank(ctx, cfg.Questions.Bank, bank)
		})
	})
}

func withPool(ctx context.Context, cfg *config.Config, fn func(tr *postgres.Transactor) error) error {
	dsn, err := cfg.DB.DSN()
	if err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections), // bounded by config.load
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(postgres.NewTransactor(pool))
}
