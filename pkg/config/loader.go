package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type cacheEntry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cacheMu sync.Mutex
	cache   = make(map[reflect.Type]*cacheEntry)

	defaultEnvLoaded sync.Once
)

// Load parses the environment into v. The first call for a type does the
// parsing; later calls copy the cached result, including a cached failure.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		// A missing .env file is normal outside development.
		_ = godotenv.Load()
	})

	entry := cacheEntryFor[T]()
	entry.once.Do(func() {
		var cfg T
		if err := env.Parse(&cfg); err != nil {
			entry.err = errors.Join(ErrParsingConfig, err)
			return
		}
		entry.value = cfg
	})

	if entry.err != nil {
		return entry.err
	}
	cfg, ok := entry.value.(T)
	if !ok {
		return ErrConfigNotLoaded
	}
	*v = cfg
	return nil
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Parse parses the environment into v without caching.
func Parse[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// LoadEnv loads the given env files into the process environment. Variables
// that are already set are kept.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache forgets every cached configuration.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cache = make(map[reflect.Type]*cacheEntry)
}

func cacheEntryFor[T any]() *cacheEntry {
	key := reflect.TypeFor[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()
	entry, ok := cache[key]
	if !ok {
		entry = &cacheEntry{}
		cache[key] = entry
	}
	return entry
}
