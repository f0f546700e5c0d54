package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tilechase/engine"
	"github.com/lixenwraith/tilechase/vmath"
)

func TestInit_DisabledDiscards(t *testing.T) {
	f, err := Init(Options{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != nil {
		t.Error("Expected nil log file when disabled")
		f.Close()
	}
	if Log.Out != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", Log.Out)
	}
}

func TestInit_EnabledWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	f, err := Init(Options{Enabled: true, Dir: dir, Level: "debug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer f.Close()

	if Log.Out == os.Stdout || Log.Out == os.Stderr {
		t.Error("Log output must not be the terminal")
	}
	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %s", Log.GetLevel())
	}

	Log.Info("test log message")

	info, err := os.Stat(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestInit_Rotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	if err := os.WriteFile(path, make([]byte, MaxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	f, err := Init(Options{Enabled: true, Dir: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotated := false
	for _, e := range entries {
		if e.Name() != FileName && strings.HasPrefix(e.Name(), "tilechase-") && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	if !rotated {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > MaxLogSize {
		t.Errorf("Expected new log file below %d bytes, got %d", MaxLogSize, info.Size())
	}
}

func TestParseLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"", logrus.WarnLevel},
		{"trace", logrus.TraceLevel},
		{"ERROR", logrus.ErrorLevel},
		{"nonsense", logrus.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestEventLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)

	el := NewEventLogger(l)
	el.OnEvent(engine.Event{Type: engine.EventTargetEaten, Player: 0, Pos: vmath.P(3, 4), Value: 7})
	el.OnEvent(engine.Event{Type: engine.EventAgentMove, Player: engine.NoPlayer, Role: engine.Runner})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected one line at info level, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	want := map[string]any{"event": "target_eaten", "player": 1.0, "x": 3.0, "y": 4.0, "score": 7.0, "msg": "target eaten"}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("field %s = %v, want %v", k, entry[k], v)
		}
	}
}
