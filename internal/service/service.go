package service

import (
	"context"
	"trading_game/internal/model"
)

type StatsService interface {
	// ReadStats читает общую статистику, создавая строку {0,0,0} при первом обращении
	ReadStats(ctx context.Context) (*model.GameStats, error)
	// UpsertStats сохраняет переданные значения как есть и возвращает сохраненную строку
	UpsertStats(ctx context.Context, stats model.GameStats) (*model.GameStats, error)
	Ping(ctx context.Context) error
}
