package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameStats_WinRate(t *testing.T) {
	tests := []struct {
		name  string
		stats GameStats
		want  float64
	}{
		{name: "no games", stats: GameStats{}, want: 0},
		{name: "all wins", stats: GameStats{Wins: 4, Total: 4}, want: 100},
		{name: "two of three", stats: GameStats{Wins: 2, Losses: 1, Total: 3}, want: 66.7},
		{name: "one of three", stats: GameStats{Wins: 1, Losses: 2, Total: 3}, want: 33.3},
		{name: "five of eight", stats: GameStats{Wins: 5, Losses: 3, Total: 8}, want: 62.5},
		{name: "no wins", stats: GameStats{Losses: 7, Total: 7}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stats.WinRate())
		})
	}
}

func TestGameStats_Record(t *testing.T) {
	before := GameStats{Wins: 5, Losses: 3, Total: 8}

	won := before.Record(true)
	assert.Equal(t, GameStats{Wins: 6, Losses: 3, Total: 9}, won)

	lost := before.Record(false)
	assert.Equal(t, GameStats{Wins: 5, Losses: 4, Total: 9}, lost)

	// исходное значение не меняется
	assert.Equal(t, GameStats{Wins: 5, Losses: 3, Total: 8}, before)
}

func TestStorageError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStorageError("read stats", cause)

	assert.EqualError(t, err, "storage: read stats: connection refused")
	assert.ErrorIs(t, err, cause)

	var target *StorageError
	assert.True(t, errors.As(error(err), &target))
	assert.Equal(t, "read stats", target.Op)
}
