package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoxyHub/JavIsland/internal/domain"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, domain.DefaultTicksPerSec, cfg.Game.TicksPerSec)
}

func TestDecode_OverlaysDefaults(t *testing.T) {
	cfg := Default()
	src := `
server:
  port: 9000
  debug: true
game:
  seed: 42
  map: assets/maps/default.txt
`
	require.NoError(t, Decode(strings.NewReader(src), &cfg))

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, "assets/maps/default.txt", cfg.Game.MapPath)
	// Незаданное осталось по умолчанию
	assert.Equal(t, domain.MapBorder, cfg.Game.Border)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestDecode_EmptyAndUnknown(t *testing.T) {
	cfg := Default()
	require.NoError(t, Decode(strings.NewReader(""), &cfg))
	assert.Equal(t, Default(), cfg)

	err := Decode(strings.NewReader("game:\n  lives: 3\n"), &cfg)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		check   func(t *testing.T, c Config)
		wantErr bool
	}{
		{
			name: "port and seed",
			env:  map[string]string{"ISLAND_PORT": "7070", "ISLAND_SEED": "-5"},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, 7070, c.Server.Port)
				assert.Equal(t, int64(-5), c.Game.Seed)
			},
		},
		{
			name: "logging and debug",
			env:  map[string]string{"LOG_LEVEL": "debug", "LOG_FORMAT": "json", "ISLAND_DEBUG": "true"},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "debug", c.Log.Level)
				assert.Equal(t, "json", c.Log.Format)
				assert.True(t, c.Server.Debug)
			},
		},
		{name: "bad port", env: map[string]string{"ISLAND_PORT": "http"}, wantErr: true},
		{name: "bad seed", env: map[string]string{"ISLAND_SEED": "1.5"}, wantErr: true},
		{name: "bad debug", env: map[string]string{"ISLAND_DEBUG": "maybe"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := cfg.ApplyEnv(envMap(tt.env))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"no ticks", func(c *Config) { c.Game.TicksPerSec = 0 }},
		{"negative border", func(c *Config) { c.Game.Border = -1 }},
		{"empty island", func(c *Config) { c.Game.Width = 0 }},
		{"start outside", func(c *Config) { c.Game.StartX = c.Game.Width }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	// С файлом карты размеры процедурного острова не проверяются
	cfg := Default()
	cfg.Game.MapPath = "island.txt"
	cfg.Game.Width = 0
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "island.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9100\nlog:\n  format: json\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Окружение сильнее файла
	if _, ok := os.LookupEnv("ISLAND_PORT"); !ok {
		assert.Equal(t, 9100, cfg.Server.Port)
	}
	if _, ok := os.LookupEnv("LOG_FORMAT"); !ok {
		assert.Equal(t, "json", cfg.Log.Format)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEngineConfig(t *testing.T) {
	cfg := Default()
	cfg.Game.Seed = 99
	cfg.Game.MapPath = "island.txt"
	cfg.Server.Debug = true

	ec := cfg.EngineConfig()
	assert.Equal(t, int64(99), ec.Seed)
	assert.Equal(t, "island.txt", ec.MapPath)
	assert.True(t, ec.Debug)
	assert.Equal(t, cfg.Game.TicksPerSec, ec.TicksPerSec)

	// Нулевой сид - случайный
	cfg.Game.Seed = 0
	assert.NotZero(t, cfg.EngineConfig().Seed)
}
