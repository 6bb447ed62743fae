package summarizer

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func testSummary() *Summary {
	end := 20.0
	return NewBuilder().
		WithSource("https://example.com/clip.mp4").
		WithStream(24, 480, 1920, 1080).
		WithSpec(2, 95, 800).
		WithWindow(10, &end).
		WithResults(5, 18.0).
		WithOutputDir("frames").
		WithExtractionTime(time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)).
		Build()
}

func TestBuilder(t *testing.T) {
	s := testSummary()

	if s.DurationSeconds != 20.0 {
		t.Errorf("duration: expected 20.0, got %v", s.DurationSeconds)
	}
	if s.FramesExtracted != 5 {
		t.Errorf("frames extracted: expected 5, got %d", s.FramesExtracted)
	}
	if s.EndTime == nil || *s.EndTime != 20 {
		t.Errorf("end time: expected 20, got %v", s.EndTime)
	}
}

func TestJSONFormatter(t *testing.T) {
	data, err := NewJSONFormatter().Format(testSummary())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2-space indentation.
	if !strings.Contains(string(data), "\n  \"source_url\"") {
		t.Error("expected 2-space indented source_url key")
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	expectations := map[string]interface{}{
		"source_url":          "https://example.com/clip.mp4",
		"fps":                 24.0,
		"total_frames":        480.0,
		"width":               1920.0,
		"height":              1080.0,
		"duration_seconds":    20.0,
		"extraction_interval": 2.0,
		"extraction_time":     "2026-08-28T12:00:00Z",
		"start_time":          10.0,
		"end_time":            20.0,
		"frames_extracted":    5.0,
		"actual_end_time":     18.0,
	}
	for key, want := range expectations {
		if got := doc[key]; got != want {
			t.Errorf("%s: expected %v, got %v", key, want, got)
		}
	}
}

func TestJSONFormatter_NullEndTime(t *testing.T) {
	s := testSummary()
	s.EndTime = nil

	data, err := NewJSONFormatter().Format(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), `"end_time": null`) {
		t.Error("expected end_time to serialize as null")
	}
}

func TestReportFormatter(t *testing.T) {
	data, err := NewReportFormatter().Format(testSummary())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	report := string(data)

	expectedLines := []string{
		"VIDEO FRAME EXTRACTION REPORT",
		strings.Repeat("=", 40),
		"Source URL: https://example.com/clip.mp4",
		"Extraction Time: 2026-08-28 12:00:00",
		"Video Duration: 20.0 seconds",
		"Video Resolution: 1920x1080",
		"Video FPS: 24.0",
		"Extraction Interval: 2 seconds",
		"Frames Extracted: 5",
		"Output Folder: frames",
		"Time Range: 10s to 20s",
		"Image Quality: 95%",
		"Max Width: 800px",
	}
	for _, line := range expectedLines {
		if !strings.Contains(report, line) {
			t.Errorf("report missing line %q\n---\n%s", line, report)
		}
	}
}

func TestReportFormatter_OmitsOptionalLines(t *testing.T) {
	s := testSummary()
	s.StartTime = 0
	s.EndTime = nil
	s.MaxWidth = 0

	data, err := NewReportFormatter().Format(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	report := string(data)

	if strings.Contains(report, "Time Range:") {
		t.Error("report must omit Time Range for a full-video run")
	}
	if strings.Contains(report, "Max Width:") {
		t.Error("report must omit Max Width when the cap is not set")
	}
}

func TestReportFormatter_OpenEndedRange(t *testing.T) {
	s := testSummary()
	s.EndTime = nil

	data, err := NewReportFormatter().Format(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), "Time Range: 10s to ends") {
		t.Errorf("expected open-ended time range, got:\n%s", string(data))
	}
}
