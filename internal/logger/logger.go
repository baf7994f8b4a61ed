package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// LogFilePath is the default log file, relative to the working directory.
const LogFilePath = "logs/balls.txt"

// LevelEnv names the environment variable holding the minimum level (DEBUG, INFO, WARN, ERROR).
const LevelEnv = "BALLS_LOG_LEVEL"

// maxLines caps how many recent lines are kept in memory for the overlay.
const maxLines = 200

// Logger is a slog.Logger whose records are appended to a file on disk and kept in memory
// so the debug overlay can show the most recent ones.
type Logger struct {
	*slog.Logger
	sink *sink
}

// New returns a Logger writing to path, creating its directory. If the file cannot be
// opened the logger still records lines in memory.
func New(path string) *Logger {
	s := &sink{}
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			s.file = f
		}
	}
	return newLogger(s, s, LevelFromEnv())
}

// NewWriter returns a Logger writing to w instead of a file.
func NewWriter(w io.Writer, level slog.Level) *Logger {
	s := &sink{}
	return newLogger(s, io.MultiWriter(w, s), level)
}

// Nop returns a Logger that drops everything.
func Nop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil)), sink: &sink{}}
}

func newLogger(s *sink, w io.Writer, level slog.Level) *Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: shortTime,
	})
	return &Logger{Logger: slog.New(h), sink: s}
}

// shortTime prints timestamps as local wall-clock seconds.
func shortTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.String(slog.TimeKey, a.Value.Time().Format("2006-01-02 15:04:05"))
	}
	return a
}

// LevelFromEnv reads LevelEnv; unknown or empty values mean INFO.
func LevelFromEnv() slog.Level {
	switch strings.ToUpper(strings.TrimSpace(os.Getenv(LevelEnv))) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Lines returns a copy of the most recent lines, oldest first.
func (l *Logger) Lines() []string {
	return l.sink.snapshot()
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	return l.sink.close()
}

// sink receives whole records from the handler, one per Write.
type sink struct {
	mu    sync.Mutex
	lines []string
	file  *os.File
}

func (s *sink) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
	if len(s.lines) > maxLines {
		s.lines = append(s.lines[:0], s.lines[len(s.lines)-maxLines:]...)
	}
	if s.file != nil {
		_, _ = s.file.Write(p)
	}
	return len(p), nil
}

func (s *sink) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *sink) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
