package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrUnknownQuestionSource       = errors.New("unknown question source")
	ErrInvalidConfig               = errors.New("invalid configuration value")
)

// Question bank sources.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string    `mapstructure:"env"`       // current application environment (local, dev, production)
	TelegramAPIToken string    `mapstructure:"-"`         // Telegram API token loaded from environment
	Telegram         Telegram  `mapstructure:"telegram"`  // bot behaviour
	Quiz             Quiz      `mapstructure:"quiz"`      // texts around the question card
	Questions        Questions `mapstructure:"questions"` // where the question bank comes from
	Log              Log       `mapstructure:"log"`       // logging options
	DB               DB        `mapstructure:"database"`  // database configuration section
}

// Telegram contains bot polling options.
type Telegram struct {
	Debug         bool `mapstructure:"debug"`          // log raw Bot API traffic
	UpdateTimeout int  `mapstructure:"update_timeout"` // long polling timeout in seconds
}

// Quiz contains the static texts of the quiz page.
type Quiz struct {
	Title  string `mapstructure:"title"`  // header; empty means the bank title
	Footer string `mapstructure:"footer"` // footer line
}

// Questions selects the question bank source.
type Questions struct {
	Source string `mapstructure:"source"` // embedded, file or postgres
	Path   string `mapstructure:"path"`   // JSON file for the file source
	Bank   string `mapstructure:"bank"`   // bank name for the postgres source
}

// Log contains logger options.
type Log struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
	File  string `mapstructure:"file"`  // optional rotating log file
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// TelegramToken returns the bot token if it is configured.
func (c *Config) TelegramToken() (string, error) {
	if c.TelegramAPIToken == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return c.TelegramAPIToken, nil
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	return load("./config")
}

func load(configPath string) (*Config, error) {
	// A missing .env file is fine, variables may come from the real environment.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	v.SetDefault("env", "local")
	v.SetDefault("telegram.debug", false)
	v.SetDefault("telegram.update_timeout", 60)
	v.SetDefault("quiz.title", "")
	v.SetDefault("quiz.footer", "Good luck!")
	v.SetDefault("questions.source", SourceEmbedded)
	v.SetDefault("questions.path", "assets/questions.json")
	v.SetDefault("questions.bank", "react")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("database.max_connections", 5)
	v.SetDefault("database.max_conn_lifetime", "30m")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Secrets only come from the environment.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	if cfg.DB.MaxConnections < 0 || cfg.DB.MaxConnections > math.MaxInt32 {
		return nil, fmt.Errorf("%w: database.max_connections %d", ErrInvalidConfig, cfg.DB.MaxConnections)
	}

	switch cfg.Questions.Source {
	case SourceEmbedded, SourceFile:
	case SourcePostgres:
		if cfg.DB.URL == "" {
			return nil, ErrMissingEnvironmentVariables
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuestionSource, cfg.Questions.Source)
	}

	return &cfg, nil
}
