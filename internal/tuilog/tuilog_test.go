package tuilog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tui.log")
	if err := Init(path, true); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Debug("frame set", "viewer", "dataset", "frame", 4)
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(b)
	if !strings.Contains(out, "logger initialized") || !strings.Contains(out, "frame=4") {
		t.Fatalf("unexpected log contents: %q", out)
	}
}

func TestInit_EmptyPathDisables(t *testing.T) {
	if err := Init("", false); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Info("dropped")
}
