package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

// Load Подгружает переменные окружения из .env, если файл есть
func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

// Драйверы хранилища статистики
const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
	StoreDriverMemory   = "memory"
)

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type StoreConfig interface {
	Driver() string
	SQLitePath() string
}

type LogConfig interface {
	Level() string
	Development() bool
}

type StatsClientConfig interface {
	URL() string
	Timeout() time.Duration
}

type GameConfig interface {
	DurationSeconds() int
	MaxDurationSeconds() int
	Speed() float64
	DefaultFunction() string
	CanvasSize() (width, height int)
	FunctionColors() map[string]string
}
