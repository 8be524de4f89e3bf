package env

import (
	"trading_game/internal/config"

	"github.com/caarlos0/env/v11"
)

type logConfig struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Dev      bool   `env:"LOG_DEV" envDefault:"false"`
}

func NewLogConfig() (config.LogConfig, error) {
	var cfg logConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *logConfig) Level() string {
	return cfg.LogLevel
}

func (cfg *logConfig) Development() bool {
	return cfg.Dev
}
