package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jalvarado/contacts-api/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLevel slog.Level
		wantOK    bool
	}{
		{name: "debug", input: "debug", wantLevel: slog.LevelDebug, wantOK: true},
		{name: "info", input: "info", wantLevel: slog.LevelInfo, wantOK: true},
		{name: "warn", input: "warn", wantLevel: slog.LevelWarn, wantOK: true},
		{name: "error", input: "error", wantLevel: slog.LevelError, wantOK: true},
		{name: "mixed case", input: "DeBuG", wantLevel: slog.LevelDebug, wantOK: true},
		{name: "unknown falls back to info", input: "verbose", wantLevel: slog.LevelInfo, wantOK: false},
		{name: "empty falls back to info", input: "", wantLevel: slog.LevelInfo, wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level, ok := parseLevel(tc.input)
			if level != tc.wantLevel || ok != tc.wantOK {
				t.Errorf("parseLevel(%q) = (%v, %v), expected (%v, %v)",
					tc.input, level, ok, tc.wantLevel, tc.wantOK)
			}
		})
	}
}

func TestSetup(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: level})
		if err != nil {
			t.Fatalf("Setup(%q) returned error: %v", level, err)
		}
		if logger == nil {
			t.Fatalf("Setup(%q) returned nil logger", level)
		}
		if slog.Default() != logger {
			t.Errorf("Setup(%q) should install the logger as the default", level)
		}
	}

	// An unknown level must still yield a working logger.
	logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: "shout"})
	if err != nil {
		t.Fatalf("Setup with unknown level returned error: %v", err)
	}
	if logger == nil {
		t.Fatal("Setup with unknown level returned nil logger")
	}
}

func TestFromContextOrDefault(t *testing.T) {
	fallback, _ := GetTestLogger(t)
	stored, _ := GetTestLogger(t)

	// Empty context falls back to the provided logger.
	if got := FromContextOrDefault(context.Background(), fallback); got != fallback {
		t.Error("Expected the fallback logger for an empty context")
	}

	// A context-carried logger wins over the fallback.
	ctx := WithContext(context.Background(), stored)
	if got := FromContextOrDefault(ctx, fallback); got != stored {
		t.Error("Expected the context logger to take precedence")
	}

	// Nil fallback and empty context land on the process default.
	if got := FromContextOrDefault(context.Background(), nil); got != slog.Default() {
		t.Error("Expected slog.Default() when nothing else is available")
	}
}

func TestTestLogBufferEntries(t *testing.T) {
	logger, buf := GetTestLogger(t)

	logger.Info("first", slog.String("key", "value"))
	logger.Debug("second")

	entries, err := buf.GetLogEntries()
	if err != nil {
		t.Fatalf("GetLogEntries returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0]["msg"] != "first" || entries[0]["key"] != "value" {
		t.Errorf("Unexpected first entry: %v", entries[0])
	}

	buf.Reset()
	entries, err = buf.GetLogEntries()
	if err != nil {
		t.Fatalf("GetLogEntries after Reset returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries after Reset, got %d", len(entries))
	}
}
