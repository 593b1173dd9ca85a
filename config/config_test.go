package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 15*time.Second, cfg.Fone.Timeout)
	assert.False(t, cfg.Fone.Configured())
	assert.False(t, cfg.Database.Configured())
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FB_SERVER_PORT", "9090")
	t.Setenv("FB_FONE_NODE_URL", "https://node.fone.example")
	t.Setenv("FB_FONE_API_KEY", "secret-key")
	t.Setenv("FB_DATABASE_URL", "postgres://u:p@localhost:5432/fonebridge")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Fone.Configured())
	assert.Equal(t, "https://node.fone.example", cfg.Fone.NodeURL)
	assert.True(t, cfg.Database.Configured())
}

func TestFoneConfig_Configured(t *testing.T) {
	assert.False(t, FoneConfig{NodeURL: "https://node"}.Configured())
	assert.False(t, FoneConfig{APIKey: "key"}.Configured())
	assert.True(t, FoneConfig{NodeURL: "https://node", APIKey: "key"}.Configured())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("ssl toggle off", func(t *testing.T) {
		d := DatabaseConfig{URL: "postgres://u:p@host:5432/db"}
		assert.Equal(t, "postgres://u:p@host:5432/db?sslmode=disable", d.DSN())
	})

	t.Run("ssl toggle on", func(t *testing.T) {
		d := DatabaseConfig{URL: "postgres://u:p@host:5432/db", SSL: true}
		assert.Equal(t, "postgres://u:p@host:5432/db?sslmode=require", d.DSN())
	})

	t.Run("explicit sslmode wins", func(t *testing.T) {
		d := DatabaseConfig{URL: "postgres://u:p@host:5432/db?sslmode=verify-full", SSL: false}
		assert.Equal(t, "postgres://u:p@host:5432/db?sslmode=verify-full", d.DSN())
	})

	t.Run("existing query params", func(t *testing.T) {
		d := DatabaseConfig{URL: "postgres://u:p@host:5432/db?application_name=fb"}
		assert.Equal(t, "postgres://u:p@host:5432/db?application_name=fb&sslmode=disable", d.DSN())
	})

	t.Run("empty url stays empty", func(t *testing.T) {
		assert.Equal(t, "", DatabaseConfig{}.DSN())
	})
}

func TestRedisAddr(t *testing.T) {
	cfg := RedisConfig{Host: "redis.example.com", Port: 6380}
	assert.Equal(t, "redis.example.com:6380", cfg.Addr())
}
