package env

import (
	"net"
	"trading_game/internal/config"

	"github.com/caarlos0/env/v11"
)

type httpConfig struct {
	Host string `env:"HTTP_HOST"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var cfg httpConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.Host, cfg.Port)
}
