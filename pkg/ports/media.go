package ports

import (
	"errors"
	"image"
)

// ErrSourceUnavailable indicates that the source video could not be
// downloaded or opened. It aborts the whole run.
var ErrSourceUnavailable = errors.New("source unavailable")

// ErrEndOfStream is returned by MediaHandle.ReadNext when no more frames
// can be read. Mid-stream decode failures are folded into it at the adapter
// boundary and treated as a natural end of the traversal.
var ErrEndOfStream = errors.New("end of stream")

// MediaInfo describes the stream properties of an open handle.
// The values are read once at open and stay fixed for the handle's lifetime.
type MediaInfo struct {
	FrameRate  float64
	FrameCount int
	Width      int
	Height     int
}

// Duration returns the total source duration in seconds.
func (i MediaInfo) Duration() float64 {
	if i.FrameRate <= 0 {
		return 0
	}
	return float64(i.FrameCount) / i.FrameRate
}

// Frame is a decoded video frame together with its absolute frame index.
type Frame struct {
	Image image.Image
	Index int
}

// MediaHandle is a single sequential decode session over one video file.
// A handle serves exactly one traversal; extraction and playback each open
// their own handle so that seeking in one never perturbs the other.
type MediaHandle interface {
	// Info returns the immutable stream properties.
	Info() MediaInfo

	// Seek positions the handle so the next ReadNext returns frameIndex.
	Seek(frameIndex int) error

	// ReadNext decodes and returns the next frame, or ErrEndOfStream.
	ReadNext() (Frame, error)

	// Close releases the decode session.
	Close() error
}

// MediaOpener opens decode sessions over a local video file.
type MediaOpener interface {
	// Open starts a new decode session. A failure to open maps to
	// ErrSourceUnavailable.
	Open(path string) (MediaHandle, error)
}
