package stats

import (
	"context"
	"trading_game/internal/model"
)

// UpsertStats Сохраняет значения, присланные клиентом.
// Инвариант total == wins+losses не проверяется: клиенту доверяем, блокировок нет
func (s *serv) UpsertStats(ctx context.Context, stats model.GameStats) (*model.GameStats, error) {
	stored, err := s.repo.UpsertStats(ctx, stats)
	if err != nil {
		return nil, model.NewStorageError("upsert stats", err)
	}
	return stored, nil
}
