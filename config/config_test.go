package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDevelopment(t *testing.T) {
	cfg := &Config{Environment: "development"}
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg = &Config{Environment: "production"}
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())

	cfg = &Config{Environment: "staging"}
	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadWithOptions(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("DB_HOST", "testhost")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "testuser")
	t.Setenv("DB_PASSWORD", "testpass")
	t.Setenv("DB_NAME", "coachdesk_test")
	t.Setenv("DB_SSLMODE", "disable")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOW_ORIGIN", "https://admin.example.com")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "testhost", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "testuser", cfg.Database.User)
	assert.Equal(t, "testpass", cfg.Database.Password)
	assert.Equal(t, "coachdesk_test", cfg.Database.DBName)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://admin.example.com", cfg.CORSOrigin)
	assert.Equal(t, VERSION, cfg.Version)
}

func TestLoadWithOptions_Defaults(t *testing.T) {
	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "coachdesk", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "none", cfg.Tracing.TraceExporter)
	assert.Equal(t, "coachdesk-api", cfg.Tracing.ServiceName)
	assert.Equal(t, 9464, cfg.Tracing.PrometheusPort)
	assert.False(t, cfg.Notify.CoachOnAssign)
	assert.Equal(t, "*", cfg.CORSOrigin)
}

func TestLoadWithOptions_EnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte("SERVER_PORT=7070\nDB_NAME=from_file\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := LoadWithOptions(LoadOptions{EnvFile: ".env.test"})
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "from_file", cfg.Database.DBName)
}

func TestLoadWithOptions_MissingEnvFile(t *testing.T) {
	cfg, err := LoadWithOptions(LoadOptions{EnvFile: ".env.does-not-exist"})
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestLoadWithOptions_NotifyRequiresSMTP(t *testing.T) {
	t.Setenv("NOTIFY_COACH_ON_ASSIGN", "true")
	t.Setenv("ENVIRONMENT", "production")

	_, err := LoadWithOptions(LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_HOST is required")

	t.Setenv("SMTP_HOST", "smtp.example.com")
	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)
	assert.True(t, cfg.Notify.CoachOnAssign)
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
}
