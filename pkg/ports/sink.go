package ports

import "image"

// FrameSink persists sampled frames and yields the written path.
// Only the sampler writes frame files, so implementations need not be
// safe for concurrent use.
type FrameSink interface {
	// Save writes a frame identified by its dense 0-based sequence index
	// and its source timestamp in seconds, returning the file path.
	Save(img image.Image, sequenceIndex int, timestampSec float64) (string, error)
}
