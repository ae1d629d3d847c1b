// Package logger provides structured logging for the ronin framework,
// backed by zerolog. It exposes a global logger initialized once during
// boot plus component-tagged child loggers for framework subsystems.
package logger
