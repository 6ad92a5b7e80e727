// Package redis connects to Redis for the option store.
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	store := optionstore.NewRedisStore(client, "option:")
//
// Connect pings the server and retries until it answers, the attempts run out
// or the connect timeout expires. Healthcheck wraps a ping for readiness
// probes.
package redis
