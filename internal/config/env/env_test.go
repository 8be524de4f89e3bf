package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPConfig(t *testing.T) {
	t.Setenv("HTTP_HOST", "")
	t.Setenv("HTTP_PORT", "")
	os.Unsetenv("HTTP_HOST")
	os.Unsetenv("HTTP_PORT")

	cfg, err := NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Address())

	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "9000")
	cfg, err = NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Address())
}

func TestNewStoreConfig(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")

	cfg, err := NewStoreConfig()
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Driver())
	assert.Equal(t, "/tmp/x.db", cfg.SQLitePath())

	t.Setenv("STORE_DRIVER", "mongo")
	_, err = NewStoreConfig()
	assert.Error(t, err)
}

func TestNewPGConfig(t *testing.T) {
	t.Setenv("PG_DSN", "")
	_, err := NewPGConfig()
	assert.Error(t, err)

	t.Setenv("PG_DSN", "postgres://u:p@localhost:5432/game")
	cfg, err := NewPGConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@localhost:5432/game", cfg.DSN())
}

func TestNewLogConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEV", "true")

	cfg, err := NewLogConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Level())
	assert.True(t, cfg.Development())

	t.Setenv("LOG_DEV", "maybe")
	_, err = NewLogConfig()
	assert.Error(t, err)
}

func TestNewStatsClientConfig(t *testing.T) {
	t.Setenv("STATS_API_URL", "http://game.local:8080/api/stats")
	t.Setenv("STATS_TIMEOUT", "250ms")

	cfg, err := NewStatsClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://game.local:8080/api/stats", cfg.URL())
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout())

	t.Setenv("STATS_API_URL", "/stats")
	_, err = NewStatsClientConfig()
	assert.Error(t, err)

	t.Setenv("STATS_API_URL", "http://localhost:8080/stats")
	t.Setenv("STATS_TIMEOUT", "0s")
	_, err = NewStatsClientConfig()
	assert.Error(t, err)
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewGameConfigFromYAML_Missing(t *testing.T) {
	cfg, err := NewGameConfigFromYAML(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.DurationSeconds())
	assert.Equal(t, 60, cfg.MaxDurationSeconds())
	assert.Equal(t, 1.0, cfg.Speed())
	assert.Equal(t, "random_combination", cfg.DefaultFunction())
	w, h := cfg.CanvasSize()
	assert.Equal(t, 800, w)
	assert.Equal(t, 300, h)
	assert.Empty(t, cfg.FunctionColors())
}

func TestNewGameConfigFromYAML_Partial(t *testing.T) {
	path := writeFile(t, `
game:
  duration_seconds: 5
  speed: 0.5
  default_function: shifted_sine
  colors:
    shifted_sine: "#123456"
`)
	cfg, err := NewGameConfigFromYAML(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.DurationSeconds())
	assert.Equal(t, 60, cfg.MaxDurationSeconds())
	assert.Equal(t, 0.5, cfg.Speed())
	assert.Equal(t, "shifted_sine", cfg.DefaultFunction())
	assert.Equal(t, map[string]string{"shifted_sine": "#123456"}, cfg.FunctionColors())
}

func TestNewGameConfigFromYAML_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"duration over max", "game:\n  duration_seconds: 90\n"},
		{"zero duration", "game:\n  duration_seconds: 0\n"},
		{"speed", "game:\n  speed: 3\n"},
		{"canvas", "game:\n  canvas:\n    width: 0\n"},
		{"syntax", "game: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGameConfigFromYAML(writeFile(t, tt.body))
			assert.Error(t, err)
		})
	}
}
