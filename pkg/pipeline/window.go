package pipeline

import (
	"errors"
	"math"
)

// ErrInvalidWindow indicates a time window whose end does not exceed its
// start, or a negative start. Checked before any work begins.
var ErrInvalidWindow = errors.New("end time must be greater than start time")

// ErrIntervalTooSmall indicates a sampling interval shorter than one frame
// period. Selecting every frame is never what the caller intended, so this
// is a configuration error rather than a silent fallback.
var ErrIntervalTooSmall = errors.New("interval is shorter than one frame period")

// Validate checks the window invariants.
func (w TimeWindow) Validate() error {
	if w.StartTime < 0 {
		return ErrInvalidWindow
	}
	if w.EndTime != nil && *w.EndTime <= w.StartTime {
		return ErrInvalidWindow
	}
	return nil
}

// StartFrame returns the first absolute frame index of the window.
func (w TimeWindow) StartFrame(frameRate float64) int {
	if w.StartTime <= 0 {
		return 0
	}
	return int(math.Floor(w.StartTime * frameRate))
}

// EndFrame returns the exclusive end frame index, clamped to frameCount.
func (w TimeWindow) EndFrame(frameRate float64, frameCount int) int {
	if w.EndTime == nil {
		return frameCount
	}
	end := int(math.Ceil(*w.EndTime * frameRate))
	if end > frameCount {
		end = frameCount
	}
	return end
}

// IntervalFrames converts the sampling interval to a frame stride.
// The stride must be at least 1.
func (s SampleSpec) IntervalFrames(frameRate float64) (int, error) {
	n := int(math.Round(frameRate * s.IntervalSec))
	if n < 1 {
		return 0, ErrIntervalTooSmall
	}
	return n, nil
}

// FitWidth scales (width, height) down to maxWidth preserving aspect ratio.
// The input is returned unchanged when width already fits or maxWidth is
// not set.
func FitWidth(width, height, maxWidth int) (int, int) {
	if maxWidth <= 0 || width <= maxWidth {
		return width, height
	}
	h := int(math.Round(float64(height) * float64(maxWidth) / float64(width)))
	return maxWidth, h
}
