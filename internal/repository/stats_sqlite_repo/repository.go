package stats_sqlite_repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"trading_game/internal/model"
	"trading_game/internal/repository"
	"trading_game/internal/repository/stats_repo"

	sq "github.com/Masterminds/squirrel"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS game_stats (
	id INTEGER PRIMARY KEY,
	wins INTEGER NOT NULL DEFAULT 0,
	losses INTEGER NOT NULL DEFAULT 0,
	total INTEGER NOT NULL DEFAULT 0,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

type repo struct {
	db     *sql.DB
	getter *trmsql.CtxGetter
}

// Open Открывает базу sqlite и накатывает схему.
// path ":memory:" дает базу в памяти
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// одно соединение: sqlite в памяти живет в пределах соединения
	db.SetMaxOpenConns(1)

	if path != ":memory:" {
		if _, err = db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if _, err = db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return db, nil
}

func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &repo{
		db:     db,
		getter: trmsql.DefaultCtxGetter,
	}
}

func (r *repo) GetStats(ctx context.Context) (*model.GameStats, error) {
	sqlStr, args, err := stats_repo.SelectQuery(sq.Question).ToSql()
	if err != nil {
		return nil, err
	}

	var stats model.GameStats
	err = r.getter.DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, sqlStr, args...).
		Scan(&stats.Wins, &stats.Losses, &stats.Total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrStatsNotFound
		}
		return nil, err
	}

	return &stats, nil
}

func (r *repo) CreateStats(ctx context.Context) error {
	sqlStr, args, err := stats_repo.CreateQuery(sq.Question).ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *repo) UpsertStats(ctx context.Context, stats model.GameStats) (*model.GameStats, error) {
	sqlStr, args, err := stats_repo.UpsertQuery(sq.Question, stats).ToSql()
	if err != nil {
		return nil, err
	}

	var stored model.GameStats
	err = r.getter.DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, sqlStr, args...).
		Scan(&stored.Wins, &stored.Losses, &stored.Total)
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

func (r *repo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
