package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"debug":   zapcore.DebugLevel,
		"WARN":    zapcore.WarnLevel,
		"bogus":   zapcore.InfoLevel,
		" error ": zapcore.ErrorLevel,
	}
	for in, want := range cases {
		logger, err := NewLogger(in)
		if err != nil {
			t.Fatalf("NewLogger(%q): %v", in, err)
		}
		if !logger.Core().Enabled(want) {
			t.Errorf("NewLogger(%q): level %s not enabled", in, want)
		}
		if want > zapcore.DebugLevel && logger.Core().Enabled(want-1) {
			t.Errorf("NewLogger(%q): level below %s enabled", in, want)
		}
	}
}

func TestContextRoundTrip(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("expected no-op logger")
	}
	l := zap.NewExample()
	ctx := WithLogger(context.Background(), l)
	if FromContext(ctx) != l {
		t.Fatal("logger not returned from context")
	}
	if WithLogger(ctx, nil) != ctx {
		t.Fatal("nil logger should leave context unchanged")
	}
}

func TestNewConsoleLoggerWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger("warn", &buf)
	logger.Info("hidden")
	logger.Warn("shown", zap.String("route", "/about"))
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "/about") {
		t.Fatalf("expected warn line with field, got %q", out)
	}
}
