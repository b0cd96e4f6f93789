// Package logger builds configured slog.Logger instances for the
// access-control engine and its stores.
//
// The engine logs only on degraded paths (storage failures, failed
// broadcasts), so the default production configuration — JSON at info
// level — stays quiet in normal operation.
package logger
