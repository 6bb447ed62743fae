// Package display provides playback display and input adapters.
package display

import (
	"image"

	"github.com/user/framegrab/pkg/ports"
)

// NullDisplay accepts frames without presenting them. Playback pacing,
// seeking, and transport commands still run against it, which keeps the
// player usable on headless machines.
type NullDisplay struct {
	frames int
}

// NewNull creates a display that discards frames.
func NewNull() *NullDisplay {
	return &NullDisplay{}
}

// Render consumes a frame.
func (d *NullDisplay) Render(img image.Image) error {
	d.frames++
	return nil
}

// Frames reports how many frames were rendered.
func (d *NullDisplay) Frames() int {
	return d.frames
}

// Close releases the display.
func (d *NullDisplay) Close() error {
	return nil
}

// Ensure NullDisplay implements ports.Display
var _ ports.Display = (*NullDisplay)(nil)
