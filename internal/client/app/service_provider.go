package app

import (
	"trading_game/internal/client/controller"
	"trading_game/internal/client/statsclient"
	"trading_game/internal/client/view"
	"trading_game/internal/config"
	"trading_game/internal/config/env"
	"trading_game/internal/game/bias"
	"trading_game/internal/game/loop"
	"trading_game/internal/game/plot"
	"trading_game/internal/game/session"
	"trading_game/internal/logger"

	"go.uber.org/zap"
)

const gameConfigPath = "config.yaml"

type ServiceProvider struct {
	// Logging
	logCfg config.LogConfig
	log    *zap.Logger

	// Configs
	gameCfg   config.GameConfig
	clientCfg config.StatsClientConfig

	// Game bits
	statsClient *statsclient.Client
	ctrl        *controller.Controller
	game        *view.Game
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		log, err := logger.New(sp.LogCfg().Level(), sp.LogCfg().Development())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.log = log
	}
	return sp.log
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML(gameConfigPath)
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) ClientCfg() config.StatsClientConfig {
	if sp.clientCfg == nil {
		cfg, err := env.NewStatsClientConfig()
		if err != nil {
			panic("failed to get stats client config: " + err.Error())
		}
		sp.clientCfg = cfg
	}
	return sp.clientCfg
}

func (sp *ServiceProvider) StatsClient() *statsclient.Client {
	if sp.statsClient == nil {
		sp.statsClient = statsclient.New(sp.ClientCfg().URL(), sp.ClientCfg().Timeout())
	}
	return sp.statsClient
}

func (sp *ServiceProvider) Controller() *controller.Controller {
	if sp.ctrl == nil {
		cfg := sp.GameCfg()

		key, err := bias.ParseKey(cfg.DefaultFunction())
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		for k, c := range cfg.FunctionColors() {
			if _, err = bias.ParseKey(k); err != nil {
				panic("failed to get game config: " + err.Error())
			}
			if _, err = plot.ParseHex(c); err != nil {
				panic("failed to get game config: " + err.Error())
			}
		}

		ctrl, err := controller.New(controller.Deps{
			API:    sp.StatsClient(),
			Logger: sp.Logger(),
			RNG:    bias.DefaultRNG(),
			Settings: session.Settings{
				DurationSeconds:    cfg.DurationSeconds(),
				MaxDurationSeconds: cfg.MaxDurationSeconds(),
				Speed:              cfg.Speed(),
				Function:           key,
			},
			Colors:       cfg.FunctionColors(),
			TickInterval: loop.TickInterval,
		})
		if err != nil {
			panic("failed to create game controller: " + err.Error())
		}
		sp.ctrl = ctrl
	}
	return sp.ctrl
}

func (sp *ServiceProvider) Game() *view.Game {
	if sp.game == nil {
		w, h := sp.GameCfg().CanvasSize()
		sp.game = view.NewGame(sp.Controller(), w, h, sp.Logger())
	}
	return sp.game
}

// Close stops the game tasks and flushes the logger
func (sp *ServiceProvider) Close() {
	if sp.ctrl != nil {
		sp.ctrl.Close()
	}
	if sp.log != nil {
		_ = sp.log.Sync()
	}
}
