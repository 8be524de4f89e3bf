package env

import (
	"fmt"
	"trading_game/internal/config"

	"github.com/caarlos0/env/v11"
)

type storeConfig struct {
	StoreDriver string `env:"STORE_DRIVER" envDefault:"sqlite"`
	Path        string `env:"SQLITE_PATH" envDefault:"trading_game.db"`
}

func NewStoreConfig() (config.StoreConfig, error) {
	var cfg storeConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	switch cfg.StoreDriver {
	case config.StoreDriverPostgres, config.StoreDriverSQLite, config.StoreDriverMemory:
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	return &cfg, nil
}

func (cfg *storeConfig) Driver() string {
	return cfg.StoreDriver
}

func (cfg *storeConfig) SQLitePath() string {
	return cfg.Path
}
