package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/recipebox/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  host: 127.0.0.1
  port: 9090
  mode: release

database:
  host: db.internal
  port: 5433
  user: app
  password: secret
  dbname: recipebox
  sslmode: require

auth:
  jwt_secret: file-secret
  jwt_expire_hours: 12
  login_url: /log_in
  logged_in_redirect_url: /dashboard
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "file-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 12, cfg.Auth.JWTExpireHours)
	assert.Equal(t, "/dashboard", cfg.Auth.LoggedInRedirectURL)

	dsn := cfg.Database.DSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "port=5433")
	assert.Contains(t, dsn, "sslmode=require")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("LOGGED_IN_REDIRECT_URL", "/home")

	cfg, err := config.Load(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "/home", cfg.Auth.LoggedInRedirectURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "/log_in", cfg.Auth.LoginURL)
	assert.Equal(t, "/dashboard", cfg.Auth.LoggedInRedirectURL)
	assert.Equal(t, 24, cfg.Auth.JWTExpireHours)
}
