package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "test.log")

	InitWithRotation("debug", DefaultRotation(logFile), false)
	defer Sync()

	Sugar.Infow("converted file", "triangles", 42)
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "converted file") {
		t.Errorf("log file missing entry: %s", data)
	}
}

func TestParseLevel(t *testing.T) {
	if parseLevel("debug").String() != "debug" {
		t.Error("debug level not parsed")
	}
	if parseLevel("nonsense").String() != "info" {
		t.Error("unknown level should default to info")
	}
}
