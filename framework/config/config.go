package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment variables cannot be parsed
// into the Config struct.
var ErrParsingConfig = errors.New("config: failed to parse environment")

// Config is the central typed configuration struct.
type Config struct {
	App        AppConfig
	Log        LogConfig
	Validation ValidationConfig
}

type AppConfig struct {
	Name  string `env:"APP_NAME" envDefault:"ChainValidator"`
	Env   string `env:"APP_ENV" envDefault:"local"` // local | production | testing
	Debug bool   `env:"APP_DEBUG" envDefault:"true"`
	Port  string `env:"APP_PORT" envDefault:"8000"`

	// ShutdownTimeout bounds the graceful drain of in-flight requests.
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`  // debug | info | warn | error
	Format string `env:"LOG_FORMAT" envDefault:"text"` // text | json
}

// ValidationConfig holds defaults applied to every validation session made
// by the application.
type ValidationConfig struct {
	// MissingMessage is a fmt pattern with one %s verb for the field name,
	// used when a required field is absent from the input.
	MissingMessage string `env:"VALIDATION_MISSING_MESSAGE" envDefault:"The %s field is required."`
}

// Load reads .env files (if present) and parses the environment into a
// Config. Call once at bootstrap: cfg, err := config.Load()
func Load(envFiles ...string) (*Config, error) {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production. Variables already set
	// in the environment win over the files.
	_ = godotenv.Load(files...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Join(ErrParsingConfig, err)
	}
	return &cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(envFiles ...string) *Config {
	cfg, err := Load(envFiles...)
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

// MissingMessageFunc turns the configured pattern into a message builder
// for validation sessions.
func (c ValidationConfig) MissingMessageFunc() func(field string) string {
	pattern := c.MissingMessage
	return func(field string) string {
		return fmt.Sprintf(pattern, field)
	}
}
