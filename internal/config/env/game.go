package env

import (
	"fmt"
	"os"
	"trading_game/internal/config"

	"gopkg.in/yaml.v3"
)

const (
	defaultDuration    = 10
	defaultMaxDuration = 60
	defaultSpeed       = 1.0
	defaultFunction    = "random_combination"
	defaultWidth       = 800
	defaultHeight      = 300
)

type gameFile struct {
	Game gameConfig `yaml:"game"`
}

type gameConfig struct {
	Duration    int               `yaml:"duration_seconds"`
	MaxDuration int               `yaml:"max_duration_seconds"`
	AnimSpeed   float64           `yaml:"speed"`
	Function    string            `yaml:"default_function"`
	Canvas      canvasConfig      `yaml:"canvas"`
	Colors      map[string]string `yaml:"colors"`
}

type canvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// NewGameConfigFromYAML Читает настройки игры из yaml. Отсутствующий файл не ошибка,
// используются значения по умолчанию
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	cfg := defaultGameConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	file := gameFile{Game: cfg}
	if err = yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}
	cfg = file.Game

	if err = cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultGameConfig() gameConfig {
	return gameConfig{
		Duration:    defaultDuration,
		MaxDuration: defaultMaxDuration,
		AnimSpeed:   defaultSpeed,
		Function:    defaultFunction,
		Canvas:      canvasConfig{Width: defaultWidth, Height: defaultHeight},
	}
}

func (c *gameConfig) validate() error {
	if c.MaxDuration < 1 {
		return fmt.Errorf("max_duration_seconds must be >= 1, got %d", c.MaxDuration)
	}
	if c.Duration < 1 || c.Duration > c.MaxDuration {
		return fmt.Errorf("duration_seconds must be in [1, %d], got %d", c.MaxDuration, c.Duration)
	}
	if c.AnimSpeed < 0.1 || c.AnimSpeed > 2.0 {
		return fmt.Errorf("speed must be in [0.1, 2.0], got %v", c.AnimSpeed)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	return nil
}

func (c *gameConfig) DurationSeconds() int {
	return c.Duration
}

func (c *gameConfig) MaxDurationSeconds() int {
	return c.MaxDuration
}

func (c *gameConfig) Speed() float64 {
	return c.AnimSpeed
}

func (c *gameConfig) DefaultFunction() string {
	return c.Function
}

func (c *gameConfig) CanvasSize() (int, int) {
	return c.Canvas.Width, c.Canvas.Height
}

func (c *gameConfig) FunctionColors() map[string]string {
	return c.Colors
}
