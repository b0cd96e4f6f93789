package redisconn

import "errors"

var (
	ErrInvalidConnectionURL = errors.New("redisconn: failed to parse connection URL")
	ErrNotReady             = errors.New("redisconn: redis did not become ready within the given time period")
	ErrHealthcheckFailed    = errors.New("redisconn: healthcheck failed")
)
