package mock

import (
	"context"
	"trading_game/internal/model"

	"github.com/stretchr/testify/mock"
)

// StatsService is a mock implementation of service.StatsService
type StatsService struct {
	mock.Mock
}

func (m *StatsService) ReadStats(ctx context.Context) (*model.GameStats, error) {
	args := m.Called(ctx)
	if stats, ok := args.Get(0).(*model.GameStats); ok {
		return stats, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StatsService) UpsertStats(ctx context.Context, stats model.GameStats) (*model.GameStats, error) {
	args := m.Called(ctx, stats)
	if stored, ok := args.Get(0).(*model.GameStats); ok {
		return stored, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StatsService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
