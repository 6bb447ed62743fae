package ports

import "image"

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
)

// Renderer abstracts image processing operations.
type Renderer interface {
	// EncodeImage encodes an image to the specified format.
	// Quality applies to JPEG only (1-100).
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resizes an image to the specified dimensions.
	ResizeImage(img image.Image, width, height int) image.Image

	// OverlayTimestamp returns a copy of img with the playback timestamp
	// drawn in the top-left corner.
	OverlayTimestamp(img image.Image, seconds float64) image.Image
}
