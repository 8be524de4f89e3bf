package stats

import (
	"context"
	"errors"
	"trading_game/internal/model"
	"trading_game/internal/repository"
)

// ReadStats Читает строку статистики. Если ее нет, создает {0,0,0} в той же транзакции.
// Вставка идет с ON CONFLICT DO NOTHING, поэтому гонка двух первых читателей безопасна
func (s *serv) ReadStats(ctx context.Context) (*model.GameStats, error) {
	var res *model.GameStats

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		stats, err := s.repo.GetStats(txCtx)
		if err == nil {
			res = stats
			return nil
		}
		if !errors.Is(err, repository.ErrStatsNotFound) {
			return model.NewStorageError("read stats", err)
		}

		// Строки нет - создаем
		if err = s.repo.CreateStats(txCtx); err != nil {
			return model.NewStorageError("create stats", err)
		}

		stats, err = s.repo.GetStats(txCtx)
		if err != nil {
			return model.NewStorageError("read created stats", err)
		}
		res = stats
		return nil
	})
	if err != nil {
		var storageErr *model.StorageError
		if errors.As(err, &storageErr) {
			return nil, err
		}
		// ошибки begin/commit самого менеджера транзакций
		return nil, model.NewStorageError("read stats", err)
	}

	return res, nil
}
