// Package ffmpegsource decodes video files through an external ffmpeg
// process, exposing them as a sequence of frames.
package ffmpegsource

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os/exec"

	"github.com/user/framegrab/pkg/adapters/mp4probe"
	"github.com/user/framegrab/pkg/ports"
)

// Options configures the ffmpeg source.
type Options struct {
	// FFmpegPath overrides ffmpeg discovery when set.
	FFmpegPath string
	// FFprobePath overrides ffprobe discovery when set.
	FFprobePath string
}

// Opener opens video files as decodable media handles.
type Opener struct {
	opts Options
}

// New creates a new Opener.
func New(opts Options) *Opener {
	return &Opener{opts: opts}
}

// Open probes the file and prepares a decode handle positioned at frame 0.
// Every call returns an independent handle with its own decoder process,
// so concurrent readers never share position.
func (o *Opener) Open(path string) (ports.MediaHandle, error) {
	ffmpegPath, err := FindFFmpeg(o.opts.FFmpegPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrSourceUnavailable, err)
	}

	info, err := mp4probe.Probe(path)
	if err != nil {
		// Not a progressive MP4. Fall back to ffprobe.
		ffprobePath, probeErr := FindFFprobe(o.opts.FFprobePath)
		if probeErr != nil {
			return nil, fmt.Errorf("%w: %v", ports.ErrSourceUnavailable, probeErr)
		}
		info, probeErr = probeWithFFprobe(ffprobePath, path)
		if probeErr != nil {
			return nil, fmt.Errorf("%w: %v", ports.ErrSourceUnavailable, probeErr)
		}
	}

	h := &handle{
		ffmpegPath: ffmpegPath,
		path:       path,
		info:       info,
	}
	if err := h.start(0); err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrSourceUnavailable, err)
	}
	return h, nil
}

// handle decodes frames from a running ffmpeg process that writes raw
// RGBA video to its stdout.
type handle struct {
	ffmpegPath string
	path       string
	info       ports.MediaInfo

	cmd    *exec.Cmd
	stdout io.ReadCloser
	stderr bytes.Buffer

	// next is the absolute index of the next frame stdout will yield.
	next int
}

// Info returns the stream metadata.
func (h *handle) Info() ports.MediaInfo {
	return h.info
}

// start launches a decoder process positioned at frameIndex, replacing
// any running one.
func (h *handle) start(frameIndex int) error {
	h.stop()

	args := []string{"-v", "error"}
	if frameIndex > 0 {
		// Output seeking decodes from the preceding keyframe, which keeps
		// the position frame-accurate.
		seconds := float64(frameIndex) / h.info.FrameRate
		args = append(args, "-i", h.path, "-ss", fmt.Sprintf("%.6f", seconds))
	} else {
		args = append(args, "-i", h.path)
	}
	args = append(args,
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"pipe:1",
	)

	h.stderr.Reset()
	cmd := exec.Command(h.ffmpegPath, args...)
	cmd.Stderr = &h.stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	h.cmd = cmd
	h.stdout = stdout
	h.next = frameIndex
	return nil
}

// stop terminates the decoder process if one is running.
func (h *handle) stop() {
	if h.stdout != nil {
		h.stdout.Close()
		h.stdout = nil
	}
	if h.cmd != nil {
		if h.cmd.Process != nil {
			h.cmd.Process.Kill()
		}
		h.cmd.Wait()
		h.cmd = nil
	}
}

// Seek repositions the handle so the next ReadNext returns frameIndex.
func (h *handle) Seek(frameIndex int) error {
	if frameIndex < 0 {
		return fmt.Errorf("negative frame index %d", frameIndex)
	}
	if frameIndex == h.next && h.cmd != nil {
		return nil
	}
	return h.start(frameIndex)
}

// ReadNext decodes the next frame. It returns ports.ErrEndOfStream once
// the decoder has no more output.
func (h *handle) ReadNext() (ports.Frame, error) {
	if h.stdout == nil {
		return ports.Frame{}, ports.ErrEndOfStream
	}

	frameBytes := h.info.Width * h.info.Height * 4
	pix := make([]uint8, frameBytes)
	if _, err := io.ReadFull(h.stdout, pix); err != nil {
		// A short read means the decoder finished or failed mid-frame.
		// Both end the stream.
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ports.Frame{}, ports.ErrEndOfStream
		}
		return ports.Frame{}, fmt.Errorf("read frame: %w", err)
	}

	img := &image.RGBA{
		Pix:    pix,
		Stride: h.info.Width * 4,
		Rect:   image.Rect(0, 0, h.info.Width, h.info.Height),
	}
	frame := ports.Frame{Image: img, Index: h.next}
	h.next++
	return frame, nil
}

// Close terminates the decoder process and releases the handle.
func (h *handle) Close() error {
	h.stop()
	return nil
}

// Ensure interfaces are implemented
var (
	_ ports.MediaOpener = (*Opener)(nil)
	_ ports.MediaHandle = (*handle)(nil)
)
