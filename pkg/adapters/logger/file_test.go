package logger

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/user/framegrab/pkg/ports"
)

func TestFileLogger_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extraction_log.txt")

	log, err := NewFile(path, ports.LevelDebug)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Info("starting extraction")
	log.Warn("frame %d skipped", 3)
	if err := log.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	linePattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} - (INFO|WARNING) - `)
	for _, line := range lines {
		if !linePattern.MatchString(line) {
			t.Errorf("line does not match log format: %q", line)
		}
	}
	if !strings.HasSuffix(lines[0], "INFO - starting extraction") {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "WARNING - frame 3 skipped") {
		t.Errorf("unexpected second line: %q", lines[1])
	}
}

func TestFileLogger_LevelFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extraction_log.txt")

	log, err := NewFile(path, ports.LevelWarn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Debug("hidden")
	log.Info("also hidden")
	log.Error("kept")
	log.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Errorf("filtered levels leaked into the log: %s", data)
	}
	if !strings.Contains(string(data), "ERROR - kept") {
		t.Errorf("expected error line, got: %s", data)
	}
}

func TestFileLogger_ComponentPrefix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extraction_log.txt")

	log, err := NewFile(path, ports.LevelDebug)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.WithComponent("sampler").Info("seeking")
	log.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "INFO - [sampler] seeking") {
		t.Errorf("expected component prefix, got: %s", data)
	}
}
