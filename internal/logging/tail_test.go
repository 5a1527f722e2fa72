package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeLog(t *testing.T, dir, name string, n int) []string {
	t.Helper()
	var content strings.Builder
	var lines []string
	for i := 1; i <= n; i++ {
		line := fmt.Sprintf("%s line %d", name, i)
		content.WriteString(line + "\n")
		lines = append(lines, line)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}
	return lines
}

func TestTail(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "recipebox-2026-01-01.log", 3)
	expectedAll := writeLog(t, dir, "recipebox-2026-01-02.log", 10)
	writeLog(t, dir, "other.log", 2)

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tail(dir, tt.maxLines)
			if err != nil {
				t.Fatalf("Tail() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tail() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTail_MissingDir(t *testing.T) {
	got, err := Tail(filepath.Join(t.TempDir(), "nope"), 10)
	if err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Tail() = %v, want nil", got)
	}
}

func TestLatestFile(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "recipebox-2026-03-09.log", 1)
	writeLog(t, dir, "recipebox-2026-03-10.log", 1)

	got, err := LatestFile(dir)
	if err != nil {
		t.Fatalf("LatestFile() error = %v", err)
	}
	if want := filepath.Join(dir, "recipebox-2026-03-10.log"); got != want {
		t.Fatalf("LatestFile() = %q, want %q", got, want)
	}
}
