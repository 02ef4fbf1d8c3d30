package config

import (
	"os"
	"testing"
	"time"

	"subquest/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"BOT_TOKEN", "ADMIN_ID", "CHAT_ID",
	"WELCOME_IMAGE_PATH", "DEFAULT_LANGUAGE",
	"LANGUAGE_SELECTION_ENABLED", "ADMIN_COMMANDS_ENABLED",
	"MAX_ATTEMPTS", "SINK_TIMEOUT",
	"ALLOWLIST_BACKEND", "ALLOWLIST_PATH", "ALLOWLIST_RELOAD_SCHEDULE", "SQLITE_PATH",
	"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
	"LOG_LEVEL", "LOG_FILE",
}

// clearEnv unsets every config key for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("ADMIN_ID", "1000")
	t.Setenv("CHAT_ID", "-100200300")
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, int64(1000), cfg.AdminID)
	assert.Equal(t, int64(-100200300), cfg.ChatID)
	assert.Equal(t, "welcome.jpg", cfg.WelcomeImagePath)
	assert.Equal(t, domain.LangRU, cfg.Language())
	assert.True(t, cfg.LanguageSelection)
	assert.True(t, cfg.AdminCommands)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 10*time.Second, cfg.SinkTimeout)
	assert.Equal(t, BackendJSON, cfg.AllowList.Backend)
	assert.Equal(t, "paid_users.json", cfg.AllowList.Path)
	assert.Equal(t, "@every 1m", cfg.AllowList.ReloadSchedule)
	assert.Equal(t, "./data/quest.db", cfg.AllowList.SQLitePath)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "quest", cfg.Database.Name)
	assert.Equal(t, "quest", cfg.Database.User)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("DEFAULT_LANGUAGE", "en")
	t.Setenv("LANGUAGE_SELECTION_ENABLED", "false")
	t.Setenv("ADMIN_COMMANDS_ENABLED", "false")
	t.Setenv("MAX_ATTEMPTS", "5")
	t.Setenv("SINK_TIMEOUT", "3s")
	t.Setenv("ALLOWLIST_BACKEND", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("LOG_FILE", "/var/log/quest.log")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, domain.LangEN, cfg.Language())
	assert.False(t, cfg.LanguageSelection)
	assert.False(t, cfg.AdminCommands)
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, 3*time.Second, cfg.SinkTimeout)
	assert.Equal(t, BackendPostgres, cfg.AllowList.Backend)
	assert.Equal(t, "/var/log/quest.log", cfg.Log.File)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		skipKey     string
		errContains string
	}{
		{
			name:        "missing bot token",
			skipKey:     "BOT_TOKEN",
			errContains: "BOT_TOKEN",
		},
		{
			name:        "missing admin id",
			skipKey:     "ADMIN_ID",
			errContains: "ADMIN_ID",
		},
		{
			name:        "missing chat id",
			skipKey:     "CHAT_ID",
			errContains: "CHAT_ID",
		},
		{
			name:        "admin id is not a number",
			env:         map[string]string{"ADMIN_ID": "boss"},
			errContains: `field "AdminID"`,
		},
		{
			name:        "sink timeout is not a duration",
			env:         map[string]string{"SINK_TIMEOUT": "soon"},
			errContains: `field "SinkTimeout"`,
		},
		{
			name:        "unsupported language",
			env:         map[string]string{"DEFAULT_LANGUAGE": "de"},
			errContains: "DEFAULT_LANGUAGE",
		},
		{
			name:        "zero attempts",
			env:         map[string]string{"MAX_ATTEMPTS": "0"},
			errContains: "MAX_ATTEMPTS",
		},
		{
			name:        "unknown backend",
			env:         map[string]string{"ALLOWLIST_BACKEND": "redis"},
			errContains: "ALLOWLIST_BACKEND",
		},
		{
			name:        "postgres without password",
			env:         map[string]string{"ALLOWLIST_BACKEND": "postgres"},
			errContains: "DB_PASSWORD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			setRequired(t)
			if tt.skipKey != "" {
				require.NoError(t, os.Unsetenv(tt.skipKey))
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
