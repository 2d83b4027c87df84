package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"PORT", "PORTFOLIO_DB_PATH", "PORTFOLIO_PREFS_PATH", "PORTFOLIO_THEME_INTERVAL",
	"PORTFOLIO_TZ", "PORTFOLIO_SECTION_THRESHOLD", "PORTFOLIO_LOG_FILE",
	"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "TO_EMAIL",
	"ADMIN_USERNAME", "ADMIN_PASSWORD",
}

// clearEnv unsets every key for the duration of the test. t.Setenv registers
// the restore; the empty value is then removed so LookupEnv sees it as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
		unsetenv(t, k)
	}
}

func unsetenv(t *testing.T, key string) {
	t.Helper()
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "data/portfolio.db", cfg.DBPath)
	require.NotEmpty(t, cfg.PrefsPath)
	require.Equal(t, time.Minute, cfg.ThemeInterval)
	require.Equal(t, time.Local, cfg.Location)
	require.Equal(t, 3, cfg.SectionThreshold)
	require.Empty(t, cfg.LogFile)
	require.Equal(t, "smtp.gmail.com:587", cfg.SMTP.Addr())
	require.False(t, cfg.SMTP.Configured())
	require.True(t, cfg.Admin.Defaulted)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("PORTFOLIO_DB_PATH", "/var/lib/portfolio/../portfolio/site.db")
	t.Setenv("PORTFOLIO_PREFS_PATH", ":memory:")
	t.Setenv("PORTFOLIO_THEME_INTERVAL", "15s")
	t.Setenv("PORTFOLIO_TZ", "America/Los_Angeles")
	t.Setenv("PORTFOLIO_SECTION_THRESHOLD", "5")
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "/var/lib/portfolio/site.db", cfg.DBPath)
	require.Equal(t, ":memory:", cfg.PrefsPath)
	require.Equal(t, 15*time.Second, cfg.ThemeInterval)
	require.Equal(t, "America/Los_Angeles", cfg.Location.String())
	require.Equal(t, 5, cfg.SectionThreshold)
	require.True(t, cfg.SMTP.Configured())
	require.Equal(t, Admin{Username: "root", Password: "hunter2"}, cfg.Admin)
}

func TestLoadFromEnvRejectsInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "PORT", value: "http"},
		{key: "PORT", value: "70000"},
		{key: "PORTFOLIO_DB_PATH", value: ""},
		{key: "PORTFOLIO_DB_PATH", value: "./"},
		{key: "PORTFOLIO_THEME_INTERVAL", value: "soon"},
		{key: "PORTFOLIO_THEME_INTERVAL", value: "-1m"},
		{key: "PORTFOLIO_TZ", value: "Mars/Olympus_Mons"},
		{key: "PORTFOLIO_SECTION_THRESHOLD", value: "-2"},
		{key: "SMTP_PORT", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadFromEnv()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.key)
		})
	}
}
