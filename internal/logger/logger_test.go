package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

// initFile points the global logger at a file only and returns its path.
func initFile(t *testing.T, level string, cfg FileConfig) string {
	t.Helper()
	if cfg.Path == "" {
		cfg.Path = filepath.Join(t.TempDir(), "stereotri.log")
	}
	if err := InitWithFileConfig(level, cfg, false); err != nil {
		t.Fatalf("InitWithFileConfig: %v", err)
	}
	t.Cleanup(Sync)
	return cfg.Path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	Sync()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(content)
}

func TestFileRotation(t *testing.T) {
	dir := t.TempDir()
	// 1MB is the smallest size lumberjack accepts
	initFile(t, "debug", FileConfig{
		Path:       filepath.Join(dir, "frames.log"),
		MaxSizeMB:  1,
		MaxBackups: 2,
	})

	payload := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		Sugar.Debugf("frame %d: %s", i, payload)
	}
	Sync()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read log dir: %v", err)
	}

	var current, rotated int
	for _, e := range entries {
		switch name := e.Name(); {
		case name == "frames.log":
			current++
		case strings.HasPrefix(name, "frames-") && strings.HasSuffix(name, ".log"):
			rotated++
		}
	}
	if current != 1 {
		t.Error("active log file is missing")
	}
	if rotated == 0 {
		t.Errorf("expected rotated backups, dir holds %d entries", len(entries))
	}
}

func TestLevelFiltering(t *testing.T) {
	all := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	tests := []struct {
		level  string
		lowest int // index into all
	}{
		{"debug", 0},
		{"info", 1},
		{"warn", 2},
		{"error", 3},
		{"bogus", 1},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			path := initFile(t, tt.level, FileConfig{})

			Log.Debug("pad moved")
			Log.Info("slider changed")
			Log.Warn("screenshot failed")
			Log.Error("shader failed")

			content := readLog(t, path)
			for i, lvl := range all {
				got := strings.Contains(content, lvl)
				if want := i >= tt.lowest; got != want {
					t.Errorf("level %s: %s present = %v, want %v", tt.level, lvl, got, want)
				}
			}
		})
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("logs/stereotri.log")

	want := FileConfig{
		Path:       "logs/stereotri.log",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
	if cfg != want {
		t.Errorf("DefaultFileConfig = %+v, want %+v", cfg, want)
	}
}

func TestInitCreatesLogDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "logs", "stereotri.log")
	initFile(t, "info", FileConfig{Path: path, MaxSizeMB: 1})

	Info("demo initialized")

	if !strings.Contains(readLog(t, path), "demo initialized") {
		t.Error("expected the entry in a file under a freshly created directory")
	}
}

func TestInitWithoutOutputs(t *testing.T) {
	if err := InitWithFileConfig("info", FileConfig{}, false); err != nil {
		t.Fatalf("InitWithFileConfig: %v", err)
	}
	// Nothing to write to; logging must still be safe.
	Info("dropped")
	Error("dropped")
	Sync()
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
		"fatal":   zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNamedTargetEntry(t *testing.T) {
	path := initFile(t, "info", FileConfig{})

	Named("renderer").Info("render target created", Target("left eye"))

	content := readLog(t, path)
	for _, want := range []string{"renderer", "render target created", "target", "left eye"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in log, got %q", want, content)
		}
	}
}
