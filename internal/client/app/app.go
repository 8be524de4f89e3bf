package app

import (
	"errors"
	"trading_game/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const windowTitle = "Trading Game - Bearish Functions"

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (a *App) initServiceProvider() {
	a.ServiceProvider = newServiceProvider()
}

// Run Открывает окно игры и блокируется до его закрытия
func (a *App) Run() error {
	loadErr := config.Load(".env")
	a.initServiceProvider()
	defer a.ServiceProvider.Close()

	log := a.ServiceProvider.Logger()
	if loadErr != nil {
		log.Warn("error loading .env file", zap.Error(loadErr))
	}

	game := a.ServiceProvider.Game()
	w, h := game.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(windowTitle)

	log.Info("starting game", zap.String("stats_api", a.ServiceProvider.ClientCfg().URL()))
	a.ServiceProvider.Controller().Mount()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	log.Info("game closed")
	return nil
}
