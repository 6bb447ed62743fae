// Package jpegsink saves extracted frames as JPEG files.
package jpegsink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/framegrab/pkg/ports"
)

// Sink writes frames into a directory using a stable naming scheme.
type Sink struct {
	dir      string
	quality  int
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a Sink writing JPEG files into dir at the given quality.
func New(dir string, quality int, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		dir:      dir,
		quality:  quality,
		fs:       fs,
		renderer: renderer,
	}
}

// Save encodes the frame and writes it as
// frame_<sequence>_time_<timestamp>s.jpg, returning the file path.
func (s *Sink) Save(img image.Image, sequenceIndex int, timestampSec float64) (string, error) {
	name := fmt.Sprintf("frame_%04d_time_%.1fs.jpg", sequenceIndex, timestampSec)
	path := filepath.Join(s.dir, name)

	data, err := s.renderer.EncodeImage(img, ports.FormatJPEG, s.quality)
	if err != nil {
		return "", fmt.Errorf("encode frame: %w", err)
	}
	if err := s.fs.WriteFile(path, data); err != nil {
		return "", fmt.Errorf("write frame: %w", err)
	}
	return path, nil
}

// Ensure Sink implements ports.FrameSink
var _ ports.FrameSink = (*Sink)(nil)
