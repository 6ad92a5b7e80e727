// Package config loads typed configuration from the environment.
//
// Structs are annotated with github.com/caarlos0/env tags. Load parses each
// struct type once per process and serves later calls from a cache, after
// loading a .env file from the working directory if one exists. Parse skips
// the cache, which suits tests that vary the environment.
//
//	type Config struct {
//	    Store string `env:"OPTIONS_STORE" envDefault:"memory"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
package config
