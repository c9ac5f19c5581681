package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{"PGSQL_URL": "postgres://localhost/expenses"}))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoragePostgres, cfg.StorageBackend)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, "expense-tracker", cfg.JWTIssuer)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, 8, cfg.DashboardConversionWorkers)
	assert.Equal(t, "EUR", cfg.DefaultDisplayCurrency)
}

func TestFromViper_MemoryBackendNeedsNoDatabase(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"STORAGE_BACKEND":          " Memory ",
		"CORS_ALLOWED_ORIGINS":     "https://a.example, ,https://b.example",
		"DEFAULT_DISPLAY_CURRENCY": "usd",
	}))

	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.StorageBackend)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "USD", cfg.DefaultDisplayCurrency)
}

func TestFromViper_Errors(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]any
	}{
		{name: "postgres without url", values: map[string]any{}},
		{name: "unknown backend", values: map[string]any{"STORAGE_BACKEND": "sqlite"}},
		{name: "default secret in production", values: map[string]any{"STORAGE_BACKEND": "memory", "IS_PRODUCTION": true}},
		{name: "bad display currency", values: map[string]any{"STORAGE_BACKEND": "memory", "DEFAULT_DISPLAY_CURRENCY": "EURO"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fromViper(newViper(tt.values))
			assert.Error(t, err)
		})
	}
}

func TestFromViper_ClampsWorkers(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{"STORAGE_BACKEND": "memory", "DASHBOARD_CONVERSION_WORKERS": 0}))

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.DashboardConversionWorkers)
}
