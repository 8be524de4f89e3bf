package mock

import (
	"context"
	"trading_game/internal/model"

	"github.com/stretchr/testify/mock"
)

// StatsRepository is a mock implementation of repository.StatsRepository
type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) GetStats(ctx context.Context) (*model.GameStats, error) {
	args := m.Called(ctx)
	if stats, ok := args.Get(0).(*model.GameStats); ok {
		return stats, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StatsRepository) CreateStats(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *StatsRepository) UpsertStats(ctx context.Context, stats model.GameStats) (*model.GameStats, error) {
	args := m.Called(ctx, stats)
	if stored, ok := args.Get(0).(*model.GameStats); ok {
		return stored, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StatsRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
