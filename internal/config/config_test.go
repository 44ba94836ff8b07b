package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_HOST", "SERVER_ENV", "SERVER_PORT", "DATABASE_URL",
		"JSON_TOKEN_KEY", "PRODUCT_KEY_SECRET", "JWT_TTL_SECONDS",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASSWORD", "SMTP_FROM",
		"FIRST_ADMIN_EMAIL", "FIRST_ADMIN_PASSWORD",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestLoad_DefaultsAndEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("JSON_TOKEN_KEY", "token-key")
	t.Setenv("PRODUCT_KEY_SECRET", "product-secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/homes")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, time.Hour, cfg.TokenTTL())
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.Equal(t, "postgres://localhost/homes", cfg.Database.DSN)
	assert.Equal(t, "token-key", cfg.JWT.Secret)
}

func TestLoad_FileThenEnvOverride(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 8080
  env: development
database:
  url: postgres://file/homes
jwt:
  secret: from-file
  ttl: 120
product_key:
  secret: file-product
email:
  smtp_host: smtp.example.com
  from_email: noreply@example.com
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JSON_TOKEN_KEY", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "postgres://file/homes", cfg.Database.DSN)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 2*time.Minute, cfg.TokenTTL())
	assert.Equal(t, "file-product", cfg.ProductKey.Secret)
	assert.Equal(t, "smtp.example.com", cfg.Email.SMTPHost)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing secrets", func(t *testing.T) {
		isolateEnv(t)
		_, err := Load()
		assert.ErrorContains(t, err, "JSON_TOKEN_KEY")

		t.Setenv("JSON_TOKEN_KEY", "k")
		_, err = Load()
		assert.ErrorContains(t, err, "PRODUCT_KEY_SECRET")
	})

	t.Run("bad integer", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("JSON_TOKEN_KEY", "k")
		t.Setenv("PRODUCT_KEY_SECRET", "p")
		t.Setenv("SERVER_PORT", "eighty")
		_, err := Load()
		assert.ErrorContains(t, err, "SERVER_PORT")
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("JSON_TOKEN_KEY", "k")
		t.Setenv("PRODUCT_KEY_SECRET", "p")
		t.Setenv("JWT_TTL_SECONDS", "0")
		_, err := Load()
		assert.ErrorContains(t, err, "ttl")
	})

	t.Run("malformed file", func(t *testing.T) {
		isolateEnv(t)
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))
		t.Setenv("CONFIG_PATH", path)
		_, err := Load()
		assert.ErrorContains(t, err, "failed to parse config file")
	})
}
