package env

import (
	"errors"
	"trading_game/internal/config"

	"github.com/caarlos0/env/v11"
)

type pgConfig struct {
	Dsn string `env:"PG_DSN"`
}

func NewPGConfig() (config.PGConfig, error) {
	var cfg pgConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if len(cfg.Dsn) == 0 {
		return nil, errors.New("pg dsn not found")
	}

	return &cfg, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.Dsn
}
