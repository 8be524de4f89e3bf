package stats_repo

import (
	"context"
	"errors"
	"trading_game/internal/model"
	"trading_game/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `CREATE TABLE IF NOT EXISTS ` + table + ` (
	` + colID + ` INTEGER PRIMARY KEY,
	` + colWins + ` INTEGER NOT NULL DEFAULT 0,
	` + colLosses + ` INTEGER NOT NULL DEFAULT 0,
	` + colTotal + ` INTEGER NOT NULL DEFAULT 0,
	` + colUpdatedAt + ` TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewStatsRepository(dbc *pgxpool.Pool) repository.StatsRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Migrate Создает таблицу статистики, если ее нет
func Migrate(ctx context.Context, dbc *pgxpool.Pool) error {
	_, err := dbc.Exec(ctx, schema)
	return err
}

// GetStats - получение строки статистики.
// Внутри транзакции trm запрос идет через нее
func (r *repo) GetStats(ctx context.Context) (*model.GameStats, error) {
	sqlStr, args, err := SelectQuery(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	var stats model.GameStats
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).
		QueryRow(ctx, sqlStr, args...).
		Scan(&stats.Wins, &stats.Losses, &stats.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrStatsNotFound
		}
		return nil, err
	}

	return &stats, nil
}

// CreateStats - создание нулевой строки, если ее нет
func (r *repo) CreateStats(ctx context.Context) error {
	sqlStr, args, err := CreateQuery(sq.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// UpsertStats - вставка или замена строки статистики
func (r *repo) UpsertStats(ctx context.Context, stats model.GameStats) (*model.GameStats, error) {
	sqlStr, args, err := UpsertQuery(sq.Dollar, stats).ToSql()
	if err != nil {
		return nil, err
	}

	var stored model.GameStats
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).
		QueryRow(ctx, sqlStr, args...).
		Scan(&stored.Wins, &stored.Losses, &stored.Total)
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

func (r *repo) Ping(ctx context.Context) error {
	return r.dbc.Ping(ctx)
}
