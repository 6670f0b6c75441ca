package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"testing"
)

func TestBuildLoggerSetsLevel(t *testing.T) {
	if err := BuildLogger("debug"); err != nil {
		t.Fatalf("Should not have returned an error")
	}

	if !zap.L().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("Debug should have been enabled")
	}

	if err := BuildLogger(""); err != nil {
		t.Fatalf("Should not have returned an error")
	}

	if zap.L().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("Debug should have been disabled at the default level")
	}
}

func TestBuildLoggerRejectsUnknownLevel(t *testing.T) {
	if err := BuildLogger("chatty"); err == nil {
		t.Fatalf("Should have returned an error")
	}
}
