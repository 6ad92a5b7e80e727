package settings

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/optguard/internal/db/migrations"
	"github.com/dmitrymomot/optguard/pkg/logger"
	"github.com/dmitrymomot/optguard/pkg/mongo"
	"github.com/dmitrymomot/optguard/pkg/optionstore"
	"github.com/dmitrymomot/optguard/pkg/pg"
	"github.com/dmitrymomot/optguard/pkg/redis"
)

// backend is an opened option store plus the hooks to probe and release
// the connection behind it.
type backend struct {
	store  optionstore.Store
	health func(context.Context) error
	close  func(context.Context) error
}

func openBackend(ctx context.Context, cfg Config, log *slog.Logger) (backend, error) {
	log = log.With(logger.Store(cfg.Store))

	switch cfg.Store {
	case StoreRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return backend{}, errors.Join(ErrStoreInit, err)
		}
		log.InfoContext(ctx, "connected to redis")
		return backend{
			store:  optionstore.NewRedisStore(client, cfg.RedisPrefix),
			health: redis.Healthcheck(client, cfg.HealthcheckTimeout),
			close:  func(context.Context) error { return client.Close() },
		}, nil

	case StorePostgres:
		pool, err := pg.Connect(ctx, cfg.PG)
		if err != nil {
			return backend{}, errors.Join(ErrStoreInit, err)
		}
		if cfg.PGMigrate {
			if err := pg.MigrateFS(ctx, pool, migrations.FS, cfg.PG, log); err != nil {
				pool.Close()
				return backend{}, errors.Join(ErrStoreInit, err)
			}
		}
		log.InfoContext(ctx, "connected to postgres")
		return backend{
			store:  optionstore.NewPostgresStore(pool),
			health: pg.Healthcheck(pool, cfg.HealthcheckTimeout),
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case StoreMongo:
		client, err := mongo.New(ctx, cfg.Mongo)
		if err != nil {
			return backend{}, errors.Join(ErrStoreInit, err)
		}
		log.InfoContext(ctx, "connected to mongodb")
		coll := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)
		return backend{
			store:  optionstore.NewMongoStore(coll),
			health: mongo.Healthcheck(client, cfg.HealthcheckTimeout),
			close:  client.Disconnect,
		}, nil

	default:
		return backend{store: optionstore.NewMemoryStore()}, nil
	}
}

// withCache wraps the backend store in an LRU read cache when size > 0.
func (b backend) withCache(size int) backend {
	if size > 0 {
		b.store = optionstore.NewCachedStore(b.store, size)
	}
	return b
}
