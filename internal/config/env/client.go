package env

import (
	"errors"
	"net/url"
	"time"
	"trading_game/internal/config"

	"github.com/caarlos0/env/v11"
)

type statsClientConfig struct {
	APIURL     string        `env:"STATS_API_URL" envDefault:"http://localhost:8080/stats"`
	APITimeout time.Duration `env:"STATS_TIMEOUT" envDefault:"5s"`
}

func NewStatsClientConfig() (config.StatsClientConfig, error) {
	var cfg statsClientConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	u, err := url.Parse(cfg.APIURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.New("stats api url must be absolute")
	}
	if cfg.APITimeout <= 0 {
		return nil, errors.New("stats timeout must be positive")
	}

	return &cfg, nil
}

func (cfg *statsClientConfig) URL() string {
	return cfg.APIURL
}

func (cfg *statsClientConfig) Timeout() time.Duration {
	return cfg.APITimeout
}
