// Package redisconn provides the Redis connection helper shared by the
// Redis-backed permission storage and the pub/sub sync channel.
//
// Connect retries until the server is reachable or the configured
// timeout elapses, which keeps process startup resilient to Redis
// coming up slightly later than the dashboard backend.
package redisconn
