package model

import "time"

// Состояние строки статистики в памяти
type StatsState struct {
	Exists bool // Создана ли строка

	Wins   int
	Losses int
	Total  int

	UpdatedAt time.Time // Время последней записи
	Writes    int       // Сколько раз строку перезаписывали
}
