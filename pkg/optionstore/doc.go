// Package optionstore persists option values.
//
// Every implementation stores values as JSON, so a value read back has the
// shape encoding/json produces: numbers become float64 and records become
// map[string]any. Get returns ErrNotFound for an absent option.
//
// Implementations:
//
//   - MemoryStore keeps encoded values in a map. Useful for tests and
//     single-process deployments.
//   - RedisStore uses GET/SET/DEL against any go-redis UniversalClient.
//   - PostgresStore upserts into the options table created by the bundled
//     goose migration.
//   - MongoStore keeps one document per option, keyed by name.
//   - CachedStore wraps another Store with an LRU read-through cache.
package optionstore
