// Package logging provides the structured logging interface shared by the
// server and client packages.
package logging

import "log"

// Logger is implemented by anything that can accept structured log calls.
// Handlers, listeners, and clients take a Logger by constructor injection
// rather than reaching for a process-wide global.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// stdLogger wraps the standard library log package with a level prefix.
type stdLogger struct{}

// NewStdLogger returns a Logger backed by log.Printf.
func NewStdLogger() Logger {
	return &stdLogger{}
}

func (l *stdLogger) Debug(msg string, keysAndValues ...any) {
	log.Printf("[DEBUG] %s %v", msg, keysAndValues)
}

func (l *stdLogger) Info(msg string, keysAndValues ...any) {
	log.Printf("[INFO] %s %v", msg, keysAndValues)
}

func (l *stdLogger) Warn(msg string, keysAndValues ...any) {
	log.Printf("[WARN] %s %v", msg, keysAndValues)
}

func (l *stdLogger) Error(msg string, keysAndValues ...any) {
	log.Printf("[ERROR] %s %v", msg, keysAndValues)
}

// noopLogger discards everything. Useful as a test default.
type noopLogger struct{}

// NewNoopLogger returns a Logger that discards all output.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(msg string, keysAndValues ...any) {}
func (l *noopLogger) Info(msg string, keysAndValues ...any)  {}
func (l *noopLogger) Warn(msg string, keysAndValues ...any)  {}
func (l *noopLogger) Error(msg string, keysAndValues ...any) {}
