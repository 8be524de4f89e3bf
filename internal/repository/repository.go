package repository

import (
	"context"
	"errors"
	"trading_game/internal/model"
)

// ErrStatsNotFound Строка статистики еще не создана
var ErrStatsNotFound = errors.New("stats row not found")

// StatsRepository Хранилище единственной строки агрегированной статистики.
// Конкурентные записи не синхронизируются: побеждает последняя
type StatsRepository interface {
	// GetStats возвращает ErrStatsNotFound, если строки нет
	GetStats(ctx context.Context) (*model.GameStats, error)
	// CreateStats создает строку {0,0,0}, если ее нет. Существующая строка не меняется
	CreateStats(ctx context.Context) error
	UpsertStats(ctx context.Context, stats model.GameStats) (*model.GameStats, error)
	Ping(ctx context.Context) error
}
