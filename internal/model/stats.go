package model

import (
	"github.com/shopspring/decimal"
)

// StatsRowID Идентификатор единственной строки агрегированной статистики
const StatsRowID = 1

// GameStats Общая статистика по всем игрокам
type GameStats struct {
	Wins   int
	Losses int
	Total  int
}

// WinRate Процент побед, округленный до одного знака. 0, если игр еще не было
func (s GameStats) WinRate() float64 {
	if s.Total == 0 {
		return 0
	}
	rate := decimal.NewFromInt(int64(s.Wins)).
		Div(decimal.NewFromInt(int64(s.Total))).
		Mul(decimal.NewFromInt(100)).
		Round(1)

	return rate.InexactFloat64()
}

// Record Возвращает копию статистики с учетом результата раунда.
// Увеличивается ровно один из счетчиков wins/losses и total
func (s GameStats) Record(won bool) GameStats {
	if won {
		s.Wins++
	} else {
		s.Losses++
	}
	s.Total++
	return s
}
