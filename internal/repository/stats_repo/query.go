package stats_repo

import (
	"trading_game/internal/model"

	sq "github.com/Masterminds/squirrel"
)

const (
	table        = "game_stats"
	colID        = "id"
	colWins      = "wins"
	colLosses    = "losses"
	colTotal     = "total"
	colUpdatedAt = "updated_at"
)

// Запросы общие для postgres и sqlite, отличается только формат плейсхолдеров

// SelectQuery Чтение строки статистики
func SelectQuery(ph sq.PlaceholderFormat) sq.SelectBuilder {
	return sq.Select(colWins, colLosses, colTotal).
		From(table).
		Where(sq.Eq{colID: model.StatsRowID}).
		PlaceholderFormat(ph)
}

// CreateQuery Вставка нулевой строки, если ее еще нет
func CreateQuery(ph sq.PlaceholderFormat) sq.InsertBuilder {
	return sq.Insert(table).
		Columns(colID, colWins, colLosses, colTotal).
		Values(model.StatsRowID, 0, 0, 0).
		Suffix("ON CONFLICT (" + colID + ") DO NOTHING").
		PlaceholderFormat(ph)
}

// UpsertQuery Вставка или замена строки, возвращает сохраненные значения
func UpsertQuery(ph sq.PlaceholderFormat, stats model.GameStats) sq.InsertBuilder {
	return sq.Insert(table).
		Columns(colID, colWins, colLosses, colTotal, colUpdatedAt).
		Values(model.StatsRowID, stats.Wins, stats.Losses, stats.Total, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (" + colID + ") DO UPDATE SET " +
			colWins + " = excluded." + colWins + ", " +
			colLosses + " = excluded." + colLosses + ", " +
			colTotal + " = excluded." + colTotal + ", " +
			colUpdatedAt + " = excluded." + colUpdatedAt +
			" RETURNING " + colWins + ", " + colLosses + ", " + colTotal).
		PlaceholderFormat(ph)
}
