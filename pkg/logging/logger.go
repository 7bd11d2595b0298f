// Package logging provides the structured logger shared by the operator's
// components. Every log line carries the emitting component and, where
// relevant, the resource being reconciled.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Component identifies the subsystem emitting a log entry.
type Component string

const (
	ComponentController  Component = "amfdeployment-controller"
	ComponentWorkload    Component = "workload"
	ComponentRelations   Component = "relations"
	ComponentServicePath Component = "service-patch"
	ComponentSetup       Component = "setup"
)

// LogLevel represents the severity threshold of a logger.
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// GetLogLevel reads the desired level from the LOG_LEVEL environment
// variable, defaulting to info.
func GetLogLevel() LogLevel {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func slogLevel(level LogLevel) slog.Level {
	switch level {
	case DebugLevel:
		return slog.LevelDebug
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger is a component-scoped structured logger.
type Logger struct {
	logger    *slog.Logger
	component Component
}

// NewLogger creates a logger for the given component at the level taken
// from the environment.
func NewLogger(component Component) Logger {
	return NewLoggerWithLevel(component, GetLogLevel())
}

// NewLoggerWithLevel creates a logger for the given component at an
// explicit level.
func NewLoggerWithLevel(component Component, level LogLevel) Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slogLevel(level),
	})
	return Logger{
		logger:    slog.New(handler).With("component", string(component)),
		component: component,
	}
}

// WithValues returns a logger that includes the given key/value pairs on
// every entry.
func (l Logger) WithValues(keysAndValues ...any) Logger {
	return Logger{
		logger:    l.logger.With(keysAndValues...),
		component: l.component,
	}
}

// WithResource returns a logger scoped to one Kubernetes resource.
func (l Logger) WithResource(kind, namespace, name string) Logger {
	return l.WithValues(
		"kind", kind,
		"namespace", namespace,
		"name", name,
	)
}

// InfoEvent logs an informational event.
func (l Logger) InfoEvent(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

// DebugEvent logs a debug event.
func (l Logger) DebugEvent(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

// WarnEvent logs a warning event.
func (l Logger) WarnEvent(msg string, keysAndValues ...any) {
	l.logger.Warn(msg, keysAndValues...)
}

// ErrorEvent logs an error event. A nil err is allowed.
func (l Logger) ErrorEvent(err error, msg string, keysAndValues ...any) {
	if err != nil {
		keysAndValues = append(keysAndValues, "error", err.Error())
	}
	l.logger.Error(msg, keysAndValues...)
}

// Domain events.

// ReconcileStart marks the beginning of a reconciliation pass and returns
// a logger scoped to the resource.
func (l Logger) ReconcileStart(namespace, name string) Logger {
	scoped := l.WithValues("namespace", namespace, "name", name)
	scoped.DebugEvent("Reconciliation started")
	return scoped
}

// ReconcileSuccess marks a completed reconciliation pass.
func (l Logger) ReconcileSuccess(namespace, name string, durationSeconds float64) {
	l.InfoEvent("Reconciliation succeeded",
		"namespace", namespace,
		"name", name,
		"durationSeconds", durationSeconds,
	)
}

// ReconcileError marks a failed reconciliation pass.
func (l Logger) ReconcileError(namespace, name string, err error, durationSeconds float64) {
	l.ErrorEvent(err, "Reconciliation failed",
		"namespace", namespace,
		"name", name,
		"durationSeconds", durationSeconds,
	)
}

// StatusSet records the unit status chosen by a reconciliation pass.
func (l Logger) StatusSet(phase, message string) {
	l.InfoEvent("Status set", "phase", phase, "message", message)
}

// ConfigPushed records a configuration file write into the workload.
func (l Logger) ConfigPushed(path string, sizeBytes int) {
	l.InfoEvent("Pushed config file", "path", path, "sizeBytes", sizeBytes)
}

// WorkloadRestarted records a restart of the managed service.
func (l Logger) WorkloadRestarted(service string) {
	l.InfoEvent("Workload service restarted", "service", service)
}
