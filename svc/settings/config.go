package settings

import (
	"errors"
	"time"

	"github.com/dmitrymomot/optguard/pkg/mongo"
	"github.com/dmitrymomot/optguard/pkg/pg"
	"github.com/dmitrymomot/optguard/pkg/redis"
	"github.com/dmitrymomot/optguard/pkg/validator"
)

// Store drivers accepted by OPTIONS_STORE.
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"optguard"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"` // overrides the APP_ENV preset

	Store       string `env:"OPTIONS_STORE" envDefault:"memory"`
	RulesFile   string `env:"OPTIONS_RULES_FILE"`
	StrictRules bool   `env:"OPTIONS_STRICT_RULES" envDefault:"false"`
	CacheSize   int    `env:"OPTIONS_CACHE_SIZE" envDefault:"256"` // 0 disables the read cache

	HealthcheckTimeout time.Duration `env:"OPTIONS_HEALTHCHECK_TIMEOUT" envDefault:"2s"`

	RedisPrefix     string `env:"OPTIONS_REDIS_PREFIX" envDefault:"option:"`
	MongoDatabase   string `env:"OPTIONS_MONGO_DATABASE" envDefault:"optguard"`
	MongoCollection string `env:"OPTIONS_MONGO_COLLECTION" envDefault:"options"`
	PGMigrate       bool   `env:"OPTIONS_PG_MIGRATE" envDefault:"true"`

	Redis redis.Config
	PG    pg.Config
	Mongo mongo.Config
}

// Validate checks the driver selection and the settings that driver needs.
func (c Config) Validate() error {
	checks := []validator.Rule{
		validator.OneOf("OPTIONS_STORE", c.Store, StoreMemory, StoreRedis, StorePostgres, StoreMongo),
	}

	switch c.Store {
	case StoreRedis:
		checks = append(checks, validator.ValidURL("REDIS_URL", c.Redis.ConnectionURL))
	case StorePostgres:
		checks = append(checks, validator.RequiredString("PG_CONN_URL", c.PG.ConnectionString))
	case StoreMongo:
		checks = append(checks,
			validator.RequiredString("MONGODB_URL", c.Mongo.ConnectionURL),
			validator.RequiredString("OPTIONS_MONGO_DATABASE", c.MongoDatabase),
			validator.RequiredString("OPTIONS_MONGO_COLLECTION", c.MongoCollection),
		)
	}

	if err := validator.Apply(checks...); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}
