// Package sample implements the frame sampling stage.
package sample

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ideamans/go-l10n"

	"github.com/user/framegrab/pkg/pipeline"
	"github.com/user/framegrab/pkg/ports"
)

// Stage walks the source sequentially within a time window, selects frames
// on a fixed interval, optionally downsamples them, and persists them
// through a frame sink.
type Stage struct {
	media    ports.MediaOpener
	renderer ports.Renderer
	sink     ports.FrameSink
	logger   ports.Logger
}

// New creates a new sample stage.
func New(media ports.MediaOpener, renderer ports.Renderer, sink ports.FrameSink, logger ports.Logger) *Stage {
	return &Stage{
		media:    media,
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("sampler"),
	}
}

// Execute extracts frames from the source. It owns its own decode handle;
// a concurrent playback traversal never shares it.
//
// Frame selection is a pure function of the frame index:
// (f - start_frame) % interval_frames == 0. A failed frame write is logged
// and skipped without incrementing the sequence index; only a source that
// cannot be opened fails the whole operation.
func (s *Stage) Execute(ctx context.Context, input pipeline.SampleInput) (pipeline.SampleResult, error) {
	handle, err := s.media.Open(input.Path)
	if err != nil {
		return pipeline.SampleResult{}, fmt.Errorf("open source: %w", err)
	}
	defer handle.Close()

	info := handle.Info()
	result := pipeline.SampleResult{Info: info}

	startFrame := input.Window.StartFrame(info.FrameRate)
	endFrame := input.Window.EndFrame(info.FrameRate, info.FrameCount)
	intervalFrames, err := input.Spec.IntervalFrames(info.FrameRate)
	if err != nil {
		return result, err
	}

	endTime := info.Duration()
	if input.Window.EndTime != nil {
		endTime = *input.Window.EndTime
	}
	s.logger.Info(l10n.F("Extracting frames from %.1fs to %.1fs", input.Window.StartTime, endTime))
	s.logger.Info(l10n.F("Frame range: %d to %d", startFrame, endFrame))

	if startFrame > 0 {
		if err := handle.Seek(startFrame); err != nil {
			return result, fmt.Errorf("seek to frame %d: %w", startFrame, err)
		}
	}

	// Log extraction progress roughly every 10 seconds of source time.
	progressEvery := int(info.FrameRate * 10)

	frameIndex := startFrame
	for frameIndex < endFrame {
		select {
		case <-ctx.Done():
			s.logger.Warn(l10n.T("Extraction interrupted"))
			result.Interrupted = true
			return s.finalize(result, frameIndex, info), nil
		default:
		}

		frame, err := handle.ReadNext()
		if err != nil {
			// Decode failures mid-stream count as a natural end.
			if !errors.Is(err, ports.ErrEndOfStream) {
				s.logger.Warn(l10n.F("Frame read failed at %d: %s", frameIndex, err))
			}
			break
		}
		frameIndex = frame.Index

		if (frameIndex-startFrame)%intervalFrames == 0 {
			s.saveFrame(frame, &result, info.FrameRate, input.Spec)
		}

		frameIndex++

		if progressEvery > 0 && (frameIndex-startFrame)%progressEvery == 0 && endFrame > startFrame {
			percent := float64(frameIndex-startFrame) / float64(endFrame-startFrame) * 100
			s.logger.Debug(l10n.F("Extraction progress: %.1f%%", percent))
		}
	}

	result = s.finalize(result, frameIndex, info)
	s.logger.Info(l10n.F("Frame extraction completed. Total frames saved: %d", len(result.Frames)))
	return result, nil
}

func (s *Stage) saveFrame(frame ports.Frame, result *pipeline.SampleResult, frameRate float64, spec pipeline.SampleSpec) {
	timestamp := float64(frame.Index) / frameRate

	img := frame.Image
	bounds := img.Bounds()
	if w, h := pipeline.FitWidth(bounds.Dx(), bounds.Dy(), spec.MaxWidth); w != bounds.Dx() {
		img = s.renderer.ResizeImage(img, w, h)
	}

	path, err := s.sink.Save(img, len(result.Frames), timestamp)
	if err != nil {
		// Non-fatal: skip the frame, keep the sequence dense.
		s.logger.Warn(l10n.F("Failed to save frame at %.1fs: %s", timestamp, err))
		return
	}

	s.logger.Info(l10n.F("Saved: %s", filepath.Base(path)))
	result.Frames = append(result.Frames, pipeline.ExtractedFrame{
		SequenceIndex: len(result.Frames),
		TimestampSec:  timestamp,
		FilePath:      path,
	})
}

func (s *Stage) finalize(result pipeline.SampleResult, frameIndex int, info ports.MediaInfo) pipeline.SampleResult {
	result.FinalFrameIndex = frameIndex
	if info.FrameRate > 0 {
		result.ActualEndTime = float64(frameIndex) / info.FrameRate
	}
	return result
}
