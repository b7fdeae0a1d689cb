package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestWriteNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "NetList.rpt")

	w := &Writer{}
	if err := w.Write(path, []byte("report one\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got := readFile(t, path); got != "report one\n" {
		t.Errorf("Unexpected content: %q", got)
	}
}

func TestWriteBacksUpExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "NetList.rpt")

	w := &Writer{}
	if err := w.Write(path, []byte("first\n")); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	if err := w.Write(path, []byte("second\n")); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	if got := readFile(t, path); got != "second\n" {
		t.Errorf("Target should hold the second version, got %q", got)
	}
	if got := readFile(t, path+",01"); got != "first\n" {
		t.Errorf("Backup should hold the first version, got %q", got)
	}

	// A third write takes the next slot.
	if err := w.Write(path, []byte("third\n")); err != nil {
		t.Fatalf("Third write failed: %v", err)
	}
	if got := readFile(t, path+",02"); got != "second\n" {
		t.Errorf("Second backup should hold the second version, got %q", got)
	}
}

func TestWriteBackupLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "NetList.rpt")

	if err := os.WriteFile(path, []byte("original\n"), 0o644); err != nil {
		t.Fatalf("Failed to seed target: %v", err)
	}
	for i := 1; i <= 99; i++ {
		name := fmt.Sprintf("%s,%02d", path, i)
		if err := os.WriteFile(name, []byte("old\n"), 0o644); err != nil {
			t.Fatalf("Failed to seed backup %s: %v", name, err)
		}
	}

	w := &Writer{}
	err := w.Write(path, []byte("new\n"))
	if !errors.Is(err, ErrBackupLimit) {
		t.Fatalf("Expected ErrBackupLimit, got %v", err)
	}
	if got := readFile(t, path); got != "original\n" {
		t.Errorf("Target must be untouched after a failed backup, got %q", got)
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "NetList.rpt")

	w := &Writer{}
	if err := w.Write(path, []byte("data\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to list dir: %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("Temporary file left behind: %s", e.Name())
		}
	}
}
