package logging

import (
	"errors"
	"testing"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger(ComponentController)
	if logger.component != ComponentController {
		t.Errorf("expected component %s, got %s", ComponentController, logger.component)
	}
}

func TestLoggerWithValues(t *testing.T) {
	logger := NewLogger(ComponentController)
	loggerWithValues := logger.WithValues("key", "value")

	if loggerWithValues.component != ComponentController {
		t.Errorf("component should be preserved after WithValues")
	}
}

func TestLoggerWithResource(t *testing.T) {
	logger := NewLogger(ComponentController)
	resourceLogger := logger.WithResource("AMFDeployment", "default", "amf")

	resourceLogger.InfoEvent("test event")
}

func TestReconcileStart(t *testing.T) {
	logger := NewLogger(ComponentController)
	reconcileLogger := logger.ReconcileStart("default", "amf")

	reconcileLogger.ReconcileSuccess("default", "amf", 0.5)
}

func TestReconcileError(t *testing.T) {
	logger := NewLogger(ComponentController)
	err := errors.New("test error")

	logger.ReconcileError("default", "amf", err, 0.3)
}

func TestWorkloadEvents(t *testing.T) {
	logger := NewLogger(ComponentWorkload)
	logger.ConfigPushed("/free5gc/config/amfcfg.conf", 1024)
	logger.WorkloadRestarted("amf")
	logger.StatusSet("Active", "")
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		envValue string
		expected LogLevel
	}{
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"", InfoLevel},
		{"invalid", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.envValue, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.envValue)
			level := GetLogLevel()
			if level != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, level)
			}
		})
	}
}

func TestNewLoggerWithLevel(t *testing.T) {
	logger := NewLoggerWithLevel(ComponentController, DebugLevel)
	if logger.component != ComponentController {
		t.Errorf("expected component %s, got %s", ComponentController, logger.component)
	}

	logger.DebugEvent("debug message", "key", "value")
}
