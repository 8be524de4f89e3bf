package mock

import (
	"context"
	"trading_game/internal/model"

	"github.com/stretchr/testify/mock"
)

// StatsAPI is a mock implementation of controller.StatsAPI
type StatsAPI struct {
	mock.Mock
}

func (m *StatsAPI) Fetch(ctx context.Context) (model.GameStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.GameStats), args.Error(1)
}

func (m *StatsAPI) Save(ctx context.Context, stats model.GameStats) (model.GameStats, error) {
	args := m.Called(ctx, stats)
	if fn, ok := args.Get(0).(func(context.Context, model.GameStats) model.GameStats); ok {
		return fn(ctx, stats), args.Error(1)
	}
	return args.Get(0).(model.GameStats), args.Error(1)
}
