package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(Reset)
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestInit_WritesToFile(t *testing.T) {
	logPath := setupTestLogger(t)

	Info("hello %s", "world")

	if !strings.Contains(readLog(t, logPath), "hello world") {
		t.Error("Log file should contain the logged message")
	}
	if Path() != logPath {
		t.Errorf("Path() = %q, want %q", Path(), logPath)
	}
}

func TestInit_Idempotent(t *testing.T) {
	logPath := setupTestLogger(t)

	other := filepath.Join(t.TempDir(), "other.log")
	if err := Init(other); err != nil {
		t.Fatalf("second Init returned error: %v", err)
	}
	if Path() != logPath {
		t.Errorf("second Init should not change path, got %q", Path())
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	if err == nil {
		t.Fatal("expected error for unopenable path")
	}
}

func TestLevels(t *testing.T) {
	logPath := setupTestLogger(t)

	Debug("debug-hidden")
	Info("info-shown")
	Warn("warn-shown")
	Error("error-shown")

	content := readLog(t, logPath)
	if strings.Contains(content, "debug-hidden") {
		t.Error("debug should be filtered at info level")
	}
	for _, want := range []string{"info-shown", "warn-shown", "error-shown"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in log", want)
		}
	}

	SetDebug(true)
	Debug("debug-now-shown")
	if !strings.Contains(readLog(t, logPath), "debug-now-shown") {
		t.Error("debug should be written after SetDebug(true)")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LevelDebug,
		"info":    LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"bogus":   LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestMirror(t *testing.T) {
	logPath := setupTestLogger(t)

	var buf bytes.Buffer
	Mirror(&buf)
	Warn("mirrored %d", 7)

	if !strings.Contains(buf.String(), "mirrored 7") {
		t.Errorf("mirror should receive the record, got %q", buf.String())
	}
	if !strings.Contains(readLog(t, logPath), "mirrored 7") {
		t.Error("file should still receive the record")
	}

	Mirror(nil)
	buf.Reset()
	Warn("not mirrored")
	if buf.Len() != 0 {
		t.Errorf("mirror disabled but got %q", buf.String())
	}
}

func TestWithComponent(t *testing.T) {
	logPath := setupTestLogger(t)

	WithComponent("channel").Info("dialing", "url", "ws://localhost:8000/ws")

	content := readLog(t, logPath)
	if !strings.Contains(content, "component=channel") {
		t.Errorf("expected component attribute, got %q", content)
	}
	if !strings.Contains(content, "url=ws://localhost:8000/ws") {
		t.Errorf("expected url attribute, got %q", content)
	}
}

func TestWithSession(t *testing.T) {
	logPath := setupTestLogger(t)

	WithSession("sess-42").Info("review submitted")

	if !strings.Contains(readLog(t, logPath), "sessionID=sess-42") {
		t.Error("expected sessionID attribute")
	}
}

func TestConcurrent(t *testing.T) {
	setupTestLogger(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				Info("concurrent test %d-%d", n, j)
			}
		}(i)
	}
	wg.Wait()
}

func TestClose(t *testing.T) {
	setupTestLogger(t)

	Close()
	// Logging after close must not panic.
	Info("after close")
}
