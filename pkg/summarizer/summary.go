// Package summarizer provides metadata and report generation for
// extraction runs.
package summarizer

import "time"

// Summary contains all metadata collected during an extraction run.
// It is assembled incrementally and serialized once at run end.
type Summary struct {
	// Source
	SourceURL string

	// Stream properties
	FPS             float64
	TotalFrames     int
	Width           int
	Height          int
	DurationSeconds float64

	// Requested window and spec
	IntervalSeconds float64
	Quality         int
	MaxWidth        int // 0 when not set
	StartTime       float64
	EndTime         *float64 // nil when extracting to the end

	// Results
	FramesExtracted int
	ActualEndTime   float64

	// Run metadata
	ExtractionTime time.Time
	OutputDir      string
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		ExtractionTime: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSource sets the source URL.
func (b *Builder) WithSource(url string) *Builder {
	b.summary.SourceURL = url
	return b
}

// WithStream sets the stream properties.
func (b *Builder) WithStream(fps float64, totalFrames, width, height int) *Builder {
	b.summary.FPS = fps
	b.summary.TotalFrames = totalFrames
	b.summary.Width = width
	b.summary.Height = height
	if fps > 0 {
		b.summary.DurationSeconds = float64(totalFrames) / fps
	}
	return b
}

// WithSpec sets the sampling spec.
func (b *Builder) WithSpec(intervalSec float64, quality, maxWidth int) *Builder {
	b.summary.IntervalSeconds = intervalSec
	b.summary.Quality = quality
	b.summary.MaxWidth = maxWidth
	return b
}

// WithWindow sets the requested time window.
func (b *Builder) WithWindow(startTime float64, endTime *float64) *Builder {
	b.summary.StartTime = startTime
	b.summary.EndTime = endTime
	return b
}

// WithResults sets the post-hoc extraction results.
func (b *Builder) WithResults(framesExtracted int, actualEndTime float64) *Builder {
	b.summary.FramesExtracted = framesExtracted
	b.summary.ActualEndTime = actualEndTime
	return b
}

// WithOutputDir sets the output directory.
func (b *Builder) WithOutputDir(dir string) *Builder {
	b.summary.OutputDir = dir
	return b
}

// WithExtractionTime overrides the run timestamp.
func (b *Builder) WithExtractionTime(t time.Time) *Builder {
	b.summary.ExtractionTime = t
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
