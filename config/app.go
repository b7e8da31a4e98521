package config

import (
	"os"
	"strings"
	"time"

	"github.com/yoockh/folio/internal/cache"
)

// App is the runtime configuration, read from the environment (and .env via godotenv in main).
type App struct {
	MongoURI string
	MongoDB  string
	Port     string
	// Dev enables gin debug mode, debug logs and verbose error bodies.
	Dev bool

	RedisURL string
	// CacheNamespace prefixes every Redis key, so several sites can share one instance.
	CacheNamespace  string
	ProjectCacheTTL time.Duration
}

func Load() *App {
	cfg := &App{
		MongoURI:        firstEnv("MONGODB_URI", "MONGO_URI"),
		MongoDB:         envOr("MONGO_DB", "portfolio"),
		Port:            envOr("PORT", "5000"),
		Dev:             strings.EqualFold(os.Getenv("GO_ENV"), "development"),
		RedisURL:        firstEnv("REDIS_ADDR", "REDIS_URI", "REDIS_URL"),
		CacheNamespace:  envOr("CACHE_NAMESPACE", cache.DefaultNamespace),
		ProjectCacheTTL: cache.DefaultProjectsTTL,
	}
	if v := os.Getenv("PROJECTS_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.ProjectCacheTTL = d
		}
	}
	return cfg
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}
