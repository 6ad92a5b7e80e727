package settings_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/optguard/pkg/config"
	"github.com/dmitrymomot/optguard/pkg/validator"
	"github.com/dmitrymomot/optguard/svc/settings"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cfg       settings.Config
		wantField string
	}{
		{
			name: "memory",
			cfg:  settings.Config{Store: settings.StoreMemory},
		},
		{
			name:      "unknown driver",
			cfg:       settings.Config{Store: "etcd"},
			wantField: "OPTIONS_STORE",
		},
		{
			name: "redis with url",
			cfg: func() settings.Config {
				c := settings.Config{Store: settings.StoreRedis}
				c.Redis.ConnectionURL = "redis://localhost:6379/0"
				return c
			}(),
		},
		{
			name:      "redis without url",
			cfg:       settings.Config{Store: settings.StoreRedis},
			wantField: "REDIS_URL",
		},
		{
			name:      "postgres without connection string",
			cfg:       settings.Config{Store: settings.StorePostgres},
			wantField: "PG_CONN_URL",
		},
		{
			name: "mongo without database",
			cfg: func() settings.Config {
				c := settings.Config{Store: settings.StoreMongo, MongoCollection: "options"}
				c.Mongo.ConnectionURL = "mongodb://localhost:27017"
				return c
			}(),
			wantField: "OPTIONS_MONGO_DATABASE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, settings.ErrInvalidConfig)
			assert.True(t, validator.ExtractValidationErrors(err).Has(tt.wantField))
		})
	}
}

func TestConfig_Env(t *testing.T) {
	t.Setenv("OPTIONS_STORE", "redis")
	t.Setenv("OPTIONS_CACHE_SIZE", "0")
	t.Setenv("OPTIONS_STRICT_RULES", "true")
	t.Setenv("REDIS_URL", "redis://cache:6379/2")

	var cfg settings.Config
	require.NoError(t, config.Parse(&cfg))

	assert.Equal(t, "optguard", cfg.AppName)
	assert.Equal(t, settings.StoreRedis, cfg.Store)
	assert.Equal(t, 0, cfg.CacheSize)
	assert.True(t, cfg.StrictRules)
	assert.Equal(t, "option:", cfg.RedisPrefix)
	assert.Equal(t, "redis://cache:6379/2", cfg.Redis.ConnectionURL)
	assert.Equal(t, 3, cfg.Redis.RetryAttempts)
	assert.True(t, cfg.PGMigrate)
	assert.Equal(t, 2*time.Second, cfg.HealthcheckTimeout)
	assert.NoError(t, cfg.Validate())
}
