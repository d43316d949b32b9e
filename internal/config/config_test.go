package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "STORE_BACKEND", "SCOPE_SECRET", "REDIRECT_DELAY", "NOTICE_DURATION", "STORE_TTL", "IS_PROD"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, 2*time.Second, cfg.RedirectDelay)
	assert.Equal(t, 3*time.Second, cfg.NoticeDuration)
	assert.Zero(t, cfg.StoreTTL)
	assert.NotEmpty(t, cfg.ScopeSecret)
	assert.False(t, cfg.IsProd)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("IS_PROD", "true")
	t.Setenv("STORE_BACKEND", BackendRedis)
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("STORE_TTL", "24h")
	t.Setenv("REDIRECT_DELAY", "500ms")
	t.Setenv("NOTICE_DURATION", "bogus")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.AppPort)
	assert.True(t, cfg.IsProd)
	assert.Equal(t, BackendRedis, cfg.StoreBackend)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 24*time.Hour, cfg.StoreTTL)
	assert.Equal(t, 500*time.Millisecond, cfg.RedirectDelay)
	assert.Equal(t, 3*time.Second, cfg.NoticeDuration, "unparsable durations fall back to the default")
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBUser: "shop", DBPassword: "secret", DBHost: "db", DBPort: "3306", DBName: "storefront"}
	assert.Equal(t, "shop:secret@tcp(db:3306)/storefront?parseTime=true", cfg.DSN())
}
