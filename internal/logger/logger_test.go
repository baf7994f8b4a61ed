package logger

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesFileAndMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "balls.txt")
	l := New(path)
	l.Info("drag started", "ball", 2)
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "msg=\"drag started\" ball=2") {
		t.Errorf("file content = %q", data)
	}
	lines := l.Lines()
	if len(lines) != 1 || !strings.Contains(lines[0], "level=INFO") {
		t.Errorf("Lines = %q", lines)
	}
	if strings.HasSuffix(lines[0], "\n") {
		t.Error("line kept trailing newline")
	}
}

func TestLinesCapped(t *testing.T) {
	l := NewWriter(&bytes.Buffer{}, slog.LevelInfo)
	for i := 0; i < maxLines+20; i++ {
		l.Info(fmt.Sprintf("line %d", i))
	}
	lines := l.Lines()
	if len(lines) != maxLines {
		t.Fatalf("len = %d, want %d", len(lines), maxLines)
	}
	if !strings.Contains(lines[0], "line 20") {
		t.Errorf("oldest kept line = %q", lines[0])
	}
}

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(LevelEnv, tt.value)
			if got := LevelFromEnv(); got != tt.want {
				t.Errorf("LevelFromEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDebugFiltered(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, slog.LevelInfo)
	l.Debug("hidden")
	if buf.Len() != 0 || len(l.Lines()) != 0 {
		t.Error("debug record written at info level")
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("dropped")
	if len(l.Lines()) != 0 {
		t.Error("nop logger kept lines")
	}
	if err := l.Close(); err != nil {
		t.Error(err)
	}
}
