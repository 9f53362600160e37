package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: "5000"
  mode: "debug"
database:
  mysql:
    dsn: "root:root@tcp(127.0.0.1:3306)/test"
  redis:
    addr: "127.0.0.1:6379"
jwt:
  secret: "file-secret"
  expire_hours: 24
log:
  level: "info"
  format: "console"
rate_limit:
  login_attempts: 10
  window_seconds: 60
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0o644))
	return path
}

func TestInit(t *testing.T) {
	Init(writeConfig(t))

	assert.Equal(t, "5000", Conf.Server.Port)
	assert.Equal(t, "file-secret", Conf.JWT.Secret)
	assert.Equal(t, 24, Conf.JWT.ExpireHours)
	assert.Equal(t, 10, Conf.RateLimit.LoginAttempts)
}

func TestInit_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("MYSQL_DSN", "root:root@tcp(db:3306)/prod")

	Init(writeConfig(t))

	assert.Equal(t, "8080", Conf.Server.Port)
	assert.Equal(t, "env-secret", Conf.JWT.Secret)
	assert.Equal(t, "root:root@tcp(db:3306)/prod", Conf.Database.MySQL.DSN)
}

func TestInit_MissingFilePanics(t *testing.T) {
	assert.Panics(t, func() {
		Init(filepath.Join(t.TempDir(), "missing.yaml"))
	})
}
