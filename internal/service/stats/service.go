package stats

import (
	"context"
	"trading_game/internal/model"
	"trading_game/internal/repository"
	"trading_game/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	repo      repository.StatsRepository
	txManager trm.Manager
}

// NewStatsService Сервис общей статистики побед/поражений
func NewStatsService(repo repository.StatsRepository, txManager trm.Manager) service.StatsService {
	return &serv{
		repo:      repo,
		txManager: txManager,
	}
}

func (s *serv) Ping(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return model.NewStorageError("ping", err)
	}
	return nil
}
