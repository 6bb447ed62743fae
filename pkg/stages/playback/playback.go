// Package playback implements the interactive playback stage.
package playback

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ideamans/go-l10n"

	"github.com/user/framegrab/pkg/pipeline"
	"github.com/user/framegrab/pkg/ports"
)

// State is the playback state machine state.
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateStopped // terminal
)

// maxDisplayWidth caps the rendered frame width.
const maxDisplayWidth = 1200

// defaultDelayMs is the per-frame wait when the source reports no usable
// frame rate.
const defaultDelayMs = 33

// skipSeconds is the transport skip distance for forward/backward commands.
const skipSeconds = 10

// Stage plays the source for display, honoring transport commands polled
// from an input source within a bounded per-frame wait. It functions without
// a display surface: rendering through a no-op display leaves the state
// machine unaffected.
type Stage struct {
	media    ports.MediaOpener
	display  ports.Display
	input    ports.InputSource
	renderer ports.Renderer
	logger   ports.Logger
}

// New creates a new playback stage.
func New(media ports.MediaOpener, display ports.Display, input ports.InputSource, renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		media:    media,
		display:  display,
		input:    input,
		renderer: renderer,
		logger:   logger.WithComponent("player"),
	}
}

// Execute runs playback until a terminal state. It opens its own decode
// handle; the concurrent sampler traversal never shares it, and nothing
// here can influence which frames the sampler selects.
func (s *Stage) Execute(ctx context.Context, input pipeline.PlaybackInput) (pipeline.PlaybackResult, error) {
	handle, err := s.media.Open(input.Path)
	if err != nil {
		return pipeline.PlaybackResult{}, fmt.Errorf("open source for playback: %w", err)
	}
	defer handle.Close()

	info := handle.Info()

	delay := time.Duration(defaultDelayMs) * time.Millisecond
	if info.FrameRate > 0 {
		delay = time.Duration(math.Round(1000/info.FrameRate)) * time.Millisecond
	}

	startFrame := input.Window.StartFrame(info.FrameRate)
	if startFrame > 0 {
		if err := handle.Seek(startFrame); err != nil {
			return pipeline.PlaybackResult{}, fmt.Errorf("seek to frame %d: %w", startFrame, err)
		}
	}

	endFrame := -1
	if input.Window.EndTime != nil {
		endFrame = int(*input.Window.EndTime * info.FrameRate)
	}

	s.logger.Info(l10n.T("Playing video... Controls:"))
	s.logger.Info(l10n.T("'q' - quit, 'p' - pause/unpause, 'r' - restart"))
	s.logger.Info(l10n.T("'f' - fast forward 10s, 'b' - rewind 10s"))

	state := StatePlaying
	current := startFrame
	result := pipeline.PlaybackResult{LastFrameIndex: startFrame}

	for state != StateStopped {
		if ctx.Err() != nil {
			break
		}

		if state == StatePlaying {
			frame, err := handle.ReadNext()
			if err != nil {
				// End of stream (or a decode failure folded into it).
				break
			}
			current = frame.Index
			if endFrame >= 0 && current >= endFrame {
				break
			}

			s.render(frame, info.FrameRate)
			result.FramesShown++
			result.LastFrameIndex = current
		}

		// Paused keeps polling input but suppresses frame advancement.
		switch s.input.Poll(delay) {
		case ports.CmdQuit:
			state = StateStopped

		case ports.CmdPauseToggle:
			if state == StatePaused {
				state = StatePlaying
				s.logger.Info(l10n.T("Resumed"))
			} else {
				state = StatePaused
				s.logger.Info(l10n.T("Paused"))
			}

		case ports.CmdRestart:
			if err := handle.Seek(startFrame); err != nil {
				s.logger.Warn(l10n.F("Restart seek failed: %s", err))
				break
			}
			current = startFrame
			state = StatePlaying
			s.logger.Info(l10n.T("Video restarted"))

		case ports.CmdForward:
			target := current + int(skipSeconds*info.FrameRate)
			if target > info.FrameCount-1 {
				target = info.FrameCount - 1
			}
			if err := handle.Seek(target); err != nil {
				s.logger.Warn(l10n.F("Forward seek failed: %s", err))
				break
			}
			current = target
			s.logger.Info(l10n.T("Fast forward 10s"))

		case ports.CmdBackward:
			target := current - int(skipSeconds*info.FrameRate)
			if target < 0 {
				target = 0
			}
			if err := handle.Seek(target); err != nil {
				s.logger.Warn(l10n.F("Rewind seek failed: %s", err))
				break
			}
			current = target
			s.logger.Info(l10n.T("Rewind 10s"))
		}
	}

	return result, nil
}

func (s *Stage) render(frame ports.Frame, frameRate float64) {
	img := frame.Image
	bounds := img.Bounds()
	if w, h := pipeline.FitWidth(bounds.Dx(), bounds.Dy(), maxDisplayWidth); w != bounds.Dx() {
		img = s.renderer.ResizeImage(img, w, h)
	}

	timestamp := 0.0
	if frameRate > 0 {
		timestamp = float64(frame.Index) / frameRate
	}
	img = s.renderer.OverlayTimestamp(img, timestamp)

	if err := s.display.Render(img); err != nil {
		s.logger.Debug(l10n.F("Render failed: %s", err))
	}
}
