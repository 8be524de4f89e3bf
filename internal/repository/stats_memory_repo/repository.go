package stats_memory_repo

import (
	"context"
	"sync"
	"time"
	"trading_game/internal/model"
	"trading_game/internal/repository"
	repoModel "trading_game/internal/repository/stats_memory_repo/model"
)

// StateRepo Хранилище статистики в памяти процесса.
// Данные теряются при перезапуске, годится для разработки и тестов
type StateRepo struct {
	mtx   sync.RWMutex
	state repoModel.StatsState
}

// NewStatsRepository Конструктор пустого хранилища (строка не создана)
func NewStatsRepository() *StateRepo {
	return &StateRepo{}
}

var _ repository.StatsRepository = (*StateRepo)(nil)

// State Возвращает копию текущего состояния
func (r *StateRepo) State() repoModel.StatsState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.state
}

func (r *StateRepo) GetStats(ctx context.Context) (*model.GameStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mtx.RLock()
	defer r.mtx.RUnlock()

	if !r.state.Exists {
		return nil, repository.ErrStatsNotFound
	}
	return &model.GameStats{
		Wins:   r.state.Wins,
		Losses: r.state.Losses,
		Total:  r.state.Total,
	}, nil
}

func (r *StateRepo) CreateStats(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.state.Exists {
		return nil
	}
	r.state = repoModel.StatsState{Exists: true, UpdatedAt: time.Now()}
	return nil
}

// UpsertStats Перезаписывает строку целиком. Проверки total == wins+losses нет
func (r *StateRepo) UpsertStats(ctx context.Context, stats model.GameStats) (*model.GameStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.Exists = true
	r.state.Wins = stats.Wins
	r.state.Losses = stats.Losses
	r.state.Total = stats.Total
	r.state.UpdatedAt = time.Now()
	r.state.Writes++

	return &stats, nil
}

func (r *StateRepo) Ping(ctx context.Context) error {
	return ctx.Err()
}
