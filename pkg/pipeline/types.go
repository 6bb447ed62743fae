package pipeline

import (
	"github.com/user/framegrab/pkg/ports"
)

// =============================================================================
// Common Types
// =============================================================================

// TimeWindow bounds a traversal in source time.
// EndTime nil means "to the end of the source". A window is immutable once
// extraction starts.
type TimeWindow struct {
	StartTime float64  // seconds, >= 0
	EndTime   *float64 // seconds, must exceed StartTime when set
}

// SampleSpec controls frame selection and output encoding.
type SampleSpec struct {
	IntervalSec float64 // seconds between sampled frames, > 0
	Quality     int     // JPEG quality 1-100
	MaxWidth    int     // maximum output width in pixels, 0 = no downsampling
}

// ExtractedFrame records one saved frame. Sequence indices are dense and
// 0-based regardless of the absolute frame numbers sampled.
type ExtractedFrame struct {
	SequenceIndex int
	TimestampSec  float64
	FilePath      string
}

// =============================================================================
// Fetch Stage Types
// =============================================================================

// FetchInput contains parameters for downloading the source video.
type FetchInput struct {
	URL     string
	WorkDir string // directory for the temporary download
}

// FetchResult contains the downloaded file location.
type FetchResult struct {
	Path  string
	Bytes int64
}

// =============================================================================
// Sample Stage Types
// =============================================================================

// SampleInput contains parameters for the frame sampler.
type SampleInput struct {
	Path   string
	Window TimeWindow
	Spec   SampleSpec
}

// SampleResult contains the sampler output.
type SampleResult struct {
	Frames          []ExtractedFrame
	FinalFrameIndex int     // first absolute index NOT read
	ActualEndTime   float64 // FinalFrameIndex / frame rate
	Info            ports.MediaInfo
	Interrupted     bool // true when the traversal stopped on cancellation
}

// =============================================================================
// Playback Stage Types
// =============================================================================

// PlaybackInput contains parameters for the playback controller.
type PlaybackInput struct {
	Path   string
	Window TimeWindow
}

// PlaybackResult contains the playback outcome. Playback state is task-local
// and discarded; only the terminal counts are reported.
type PlaybackResult struct {
	FramesShown    int
	LastFrameIndex int
}
