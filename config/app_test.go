package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"MONGODB_URI", "MONGO_URI", "MONGO_DB", "PORT", "GO_ENV",
		"REDIS_ADDR", "REDIS_URI", "REDIS_URL", "PROJECTS_CACHE_TTL", "CACHE_NAMESPACE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "", cfg.MongoURI)
	assert.Equal(t, "portfolio", cfg.MongoDB)
	assert.Equal(t, "5000", cfg.Port)
	assert.False(t, cfg.Dev)
	assert.Equal(t, "", cfg.RedisURL)
	assert.Equal(t, "folio", cfg.CacheNamespace)
	assert.Equal(t, 30*time.Second, cfg.ProjectCacheTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URI", "mongodb://fallback")
	t.Setenv("MONGODB_URI", "mongodb://primary")
	t.Setenv("MONGO_DB", "site")
	t.Setenv("PORT", "9090")
	t.Setenv("GO_ENV", "Development")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("PROJECTS_CACHE_TTL", "2m")
	t.Setenv("CACHE_NAMESPACE", "site-b")

	cfg := Load()

	assert.Equal(t, "mongodb://primary", cfg.MongoURI)
	assert.Equal(t, "site", cfg.MongoDB)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Dev)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "site-b", cfg.CacheNamespace)
	assert.Equal(t, 2*time.Minute, cfg.ProjectCacheTTL)
}

func TestLoad_BadTTLKeepsDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROJECTS_CACHE_TTL", "soon")

	assert.Equal(t, 30*time.Second, Load().ProjectCacheTTL)
}

func TestInitMongo_RequiresURI(t *testing.T) {
	client, err := InitMongo(&App{})
	assert.Nil(t, client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGODB_URI")
}

func TestInitRedis_Unconfigured(t *testing.T) {
	rdb, err := InitRedis(&App{})
	assert.Nil(t, rdb)
	assert.NoError(t, err)
}

func TestInitRedis_BadURL(t *testing.T) {
	_, err := InitRedis(&App{RedisURL: "redis://:badport:x"})
	assert.Error(t, err)
}
