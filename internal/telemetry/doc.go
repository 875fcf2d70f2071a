// Package telemetry wraps OpenTelemetry SDK initialization, providing the
// centralized TracerProvider configuration for tripcost. When telemetry is
// disabled the global provider stays noop and no external connection is made.
package telemetry
