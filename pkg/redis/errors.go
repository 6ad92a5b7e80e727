package redis

import "errors"

var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string, check REDIS_URL")
	ErrRedisNotReady                = errors.New("redis did not answer a ping before the retries ran out")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")
)
