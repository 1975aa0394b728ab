package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" info ", zerolog.InfoLevel},
		{"Warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"FATAL", zerolog.FatalLevel},
		{"verbose", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

// TestSetupDisabledWithoutPath verifies an empty path yields a no-op logger
func TestSetupDisabledWithoutPath(t *testing.T) {
	logger, closer, err := Setup("debug", "")
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	defer closer.Close()

	if logger.GetLevel() != zerolog.Disabled {
		t.Errorf("Expected disabled logger, got level %s", logger.GetLevel())
	}
}

// TestSetupWritesFile verifies the directory is created and records land in the file
func TestSetupWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "game.log")

	logger, closer, err := Setup("debug", path)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	logger.Debug().Str("phase", "PLAYING").Msg("phase changed")
	logger.Trace().Msg("below level")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "phase changed") || !strings.Contains(out, "phase=PLAYING") {
		t.Errorf("Expected debug record in log file, got %q", out)
	}
	if strings.Contains(out, "below level") {
		t.Error("Trace record written at debug level")
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("Log file should not contain color escapes")
	}
}

// TestSetupBadPath verifies an unwritable path returns a wrapped error
func TestSetupBadPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := Setup("info", filepath.Join(blocker, "sub", "game.log"))
	if err == nil {
		t.Fatal("Expected error when the log directory cannot be created")
	}
	if !strings.Contains(err.Error(), "failed to create log directory") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestNewFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.WarnLevel)
	logger.Info().Msg("quiet")
	logger.Warn().Msg("loud")

	if strings.Contains(buf.String(), "quiet") || !strings.Contains(buf.String(), "loud") {
		t.Errorf("Unexpected output %q", buf.String())
	}
}
