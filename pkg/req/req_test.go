package req

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Wins int `json:"wins"`
}

func TestDecode(t *testing.T) {
	got, err := Decode[payload](strings.NewReader(`{"wins": 3}`))
	require.NoError(t, err)
	assert.Equal(t, 3, got.Wins)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty", body: ""},
		{name: "malformed", body: `{"wins":`},
		{name: "wrong type", body: `{"wins": "three"}`},
		{name: "trailing data", body: `{"wins": 1} {"wins": 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode[payload](strings.NewReader(tt.body))
			assert.Error(t, err)
		})
	}
}
