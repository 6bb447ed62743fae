package summarizer

import (
	"encoding/json"
	"time"
)

// metadataDoc is the serialized shape of video_metadata.json.
type metadataDoc struct {
	SourceURL          string   `json:"source_url"`
	FPS                float64  `json:"fps"`
	TotalFrames        int      `json:"total_frames"`
	Width              int      `json:"width"`
	Height             int      `json:"height"`
	DurationSeconds    float64  `json:"duration_seconds"`
	ExtractionInterval float64  `json:"extraction_interval"`
	ExtractionTime     string   `json:"extraction_time"`
	StartTime          float64  `json:"start_time"`
	EndTime            *float64 `json:"end_time"`
	FramesExtracted    int      `json:"frames_extracted"`
	ActualEndTime      float64  `json:"actual_end_time"`
}

// JSONFormatter serializes a Summary as the video_metadata.json document.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format renders the metadata document with 2-space indentation.
func (f *JSONFormatter) Format(summary *Summary) ([]byte, error) {
	doc := metadataDoc{
		SourceURL:          summary.SourceURL,
		FPS:                summary.FPS,
		TotalFrames:        summary.TotalFrames,
		Width:              summary.Width,
		Height:             summary.Height,
		DurationSeconds:    summary.DurationSeconds,
		ExtractionInterval: summary.IntervalSeconds,
		ExtractionTime:     summary.ExtractionTime.Format(time.RFC3339),
		StartTime:          summary.StartTime,
		EndTime:            summary.EndTime,
		FramesExtracted:    summary.FramesExtracted,
		ActualEndTime:      summary.ActualEndTime,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Ensure JSONFormatter implements Formatter
var _ Formatter = (*JSONFormatter)(nil)
