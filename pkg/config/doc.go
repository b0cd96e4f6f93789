// Package config loads environment-driven configuration structs for
// the engine's components: the permission slot key, the sync channel
// name, Redis connection settings and logger options.
package config
