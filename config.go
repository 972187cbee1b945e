package eventqueue

import "github.com/dmitrymomot/eventqueue/core/config"

// Config holds queue settings.
// Designed for environment-based configuration.
type Config struct {
	Name        string `env:"EVENTQUEUE_NAME" envDefault:"eventqueue"`
	LogDispatch bool   `env:"EVENTQUEUE_LOG_DISPATCH" envDefault:"false"`
}

// DefaultConfig returns the settings used by New without options.
func DefaultConfig() Config {
	return Config{
		Name:        DefaultName,
		LogDispatch: false,
	}
}

// LoadConfig reads Config from the environment (and a .env file, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig creates a queue from cfg. Options are applied after the
// config, so they take precedence.
func NewFromConfig[K comparable](cfg Config, opts ...Option) *Queue[K] {
	base := []Option{
		WithName(cfg.Name),
		WithDispatchLogging(cfg.LogDispatch),
	}
	return New[K](append(base, opts...)...)
}
