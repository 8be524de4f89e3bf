package stats

import (
	"context"
	"errors"
	"testing"
	"trading_game/internal/model"
	"trading_game/internal/repository"
	repoMock "trading_game/internal/repository/mock"
	"trading_game/internal/repository/stats_memory_repo"
	"trading_game/internal/repository/stats_sqlite_repo"
	"trading_game/internal/service"

	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReadStats_Existing(t *testing.T) {
	repo := new(repoMock.StatsRepository)
	repo.On("GetStats", mock.Anything).Return(&model.GameStats{Wins: 2, Losses: 1, Total: 3}, nil).Once()

	s := NewStatsService(repo, stats_memory_repo.NewTxManager())
	stats, err := s.ReadStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.GameStats{Wins: 2, Losses: 1, Total: 3}, *stats)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "CreateStats", mock.Anything)
}

func TestReadStats_CreatesMissingRow(t *testing.T) {
	repo := new(repoMock.StatsRepository)
	repo.On("GetStats", mock.Anything).Return(nil, repository.ErrStatsNotFound).Once()
	repo.On("CreateStats", mock.Anything).Return(nil).Once()
	repo.On("GetStats", mock.Anything).Return(&model.GameStats{}, nil).Once()

	s := NewStatsService(repo, stats_memory_repo.NewTxManager())
	stats, err := s.ReadStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.GameStats{}, *stats)
	repo.AssertExpectations(t)
}

func TestReadStats_StorageErrors(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name  string
		setup func(repo *repoMock.StatsRepository)
		op    string
	}{
		{
			name: "select fails",
			setup: func(repo *repoMock.StatsRepository) {
				repo.On("GetStats", mock.Anything).Return(nil, cause).Once()
			},
			op: "read stats",
		},
		{
			name: "insert fails",
			setup: func(repo *repoMock.StatsRepository) {
				repo.On("GetStats", mock.Anything).Return(nil, repository.ErrStatsNotFound).Once()
				repo.On("CreateStats", mock.Anything).Return(cause).Once()
			},
			op: "create stats",
		},
		{
			name: "reselect fails",
			setup: func(repo *repoMock.StatsRepository) {
				repo.On("GetStats", mock.Anything).Return(nil, repository.ErrStatsNotFound).Once()
				repo.On("CreateStats", mock.Anything).Return(nil).Once()
				repo.On("GetStats", mock.Anything).Return(nil, cause).Once()
			},
			op: "read created stats",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repoMock.StatsRepository)
			tt.setup(repo)

			s := NewStatsService(repo, stats_memory_repo.NewTxManager())
			stats, err := s.ReadStats(context.Background())

			assert.Nil(t, stats)
			var storageErr *model.StorageError
			require.ErrorAs(t, err, &storageErr)
			assert.Equal(t, tt.op, storageErr.Op)
			assert.ErrorIs(t, err, cause)
			repo.AssertExpectations(t)
		})
	}
}

func TestUpsertStats(t *testing.T) {
	in := model.GameStats{Wins: 5, Losses: 3, Total: 8}

	repo := new(repoMock.StatsRepository)
	repo.On("UpsertStats", mock.Anything, in).Return(&in, nil).Once()

	s := NewStatsService(repo, stats_memory_repo.NewTxManager())
	stored, err := s.UpsertStats(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, in, *stored)
	repo.AssertExpectations(t)
}

func TestUpsertStats_StorageError(t *testing.T) {
	repo := new(repoMock.StatsRepository)
	repo.On("UpsertStats", mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()

	s := NewStatsService(repo, stats_memory_repo.NewTxManager())
	_, err := s.UpsertStats(context.Background(), model.GameStats{})

	var storageErr *model.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "upsert stats", storageErr.Op)
}

func TestPing_StorageError(t *testing.T) {
	repo := new(repoMock.StatsRepository)
	repo.On("Ping", mock.Anything).Return(errors.New("down")).Once()

	s := NewStatsService(repo, stats_memory_repo.NewTxManager())

	var storageErr *model.StorageError
	assert.ErrorAs(t, s.Ping(context.Background()), &storageErr)
}

func newSQLiteService(t *testing.T) service.StatsService {
	t.Helper()

	db, err := stats_sqlite_repo.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	txManager, err := manager.New(trmsql.NewDefaultFactory(db))
	require.NoError(t, err)

	return NewStatsService(stats_sqlite_repo.NewStatsRepository(db), txManager)
}

func TestSQLite_FreshStoreCreatesZeroRow(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteService(t)

	stats, err := s.ReadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.GameStats{}, *stats)

	// строка создана и читается повторно
	stats, err = s.ReadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.GameStats{}, *stats)
}

func TestSQLite_UpsertThenRead(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteService(t)

	_, err := s.UpsertStats(ctx, model.GameStats{Wins: 5, Losses: 3, Total: 8})
	require.NoError(t, err)

	stats, err := s.ReadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.GameStats{Wins: 5, Losses: 3, Total: 8}, *stats)
}

func TestSQLite_RoundTripLeavesRowUnchanged(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteService(t)

	_, err := s.UpsertStats(ctx, model.GameStats{Wins: 7, Losses: 2, Total: 9})
	require.NoError(t, err)

	before, err := s.ReadStats(ctx)
	require.NoError(t, err)
	_, err = s.UpsertStats(ctx, *before)
	require.NoError(t, err)
	after, err := s.ReadStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, *before, *after)
}

func TestSQLite_RecordedRoundIncrementsTotal(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteService(t)

	before, err := s.ReadStats(ctx)
	require.NoError(t, err)

	after, err := s.UpsertStats(ctx, before.Record(false))
	require.NoError(t, err)

	assert.Equal(t, before.Total+1, after.Total)
	assert.Equal(t, before.Wins, after.Wins)
	assert.Equal(t, before.Losses+1, after.Losses)
}
