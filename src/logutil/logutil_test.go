package logutil

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupFileLogging(t *testing.T) {
	dir := t.TempDir()
	defer log.SetOutput(os.Stderr)

	Setup(true, dir)
	log.Printf("hello from test")

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file missing message: %q", data)
	}
}

func TestSetupDisabledDiscards(t *testing.T) {
	dir := t.TempDir()
	defer log.SetOutput(os.Stderr)

	Setup(false, dir)
	if log.Writer() != io.Discard {
		t.Error("expected discard writer when file logging is disabled")
	}
	if _, err := os.Stat(filepath.Join(dir, LogFileName)); !os.IsNotExist(err) {
		t.Errorf("expected no log file, stat err=%v", err)
	}
}

func TestRotateShiftsArchives(t *testing.T) {
	path := filepath.Join(t.TempDir(), LogFileName)
	for i, content := range []string{"current", "one", "two", "three"} {
		name := path
		if i > 0 {
			name = archiveName(path, i)
		}
		if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	rotate(path)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected base file moved away")
	}
	want := map[int]string{1: "current", 2: "one", 3: "two"}
	for n, content := range want {
		got, err := os.ReadFile(archiveName(path, n))
		if err != nil {
			t.Fatalf("archive %d: %v", n, err)
		}
		if !bytes.Equal(got, []byte(content)) {
			t.Errorf("archive %d = %q, want %q", n, got, content)
		}
	}
}
