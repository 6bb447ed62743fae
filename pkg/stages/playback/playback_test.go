package playback

import (
	"context"
	"image"
	"testing"
	"time"

	"github.com/user/framegrab/pkg/pipeline"
	"github.com/user/framegrab/pkg/ports"
)

type fakeMedia struct {
	info  ports.MediaInfo
	seeks *[]int
}

func (m *fakeMedia) Open(path string) (ports.MediaHandle, error) {
	return &fakeHandle{info: m.info, seeks: m.seeks}, nil
}

type fakeHandle struct {
	info  ports.MediaInfo
	pos   int
	seeks *[]int
}

func (h *fakeHandle) Info() ports.MediaInfo { return h.info }

func (h *fakeHandle) Seek(frameIndex int) error {
	h.pos = frameIndex
	if h.seeks != nil {
		*h.seeks = append(*h.seeks, frameIndex)
	}
	return nil
}

func (h *fakeHandle) ReadNext() (ports.Frame, error) {
	if h.pos >= h.info.FrameCount {
		return ports.Frame{}, ports.ErrEndOfStream
	}
	frame := ports.Frame{
		Image: image.NewRGBA(image.Rect(0, 0, h.info.Width, h.info.Height)),
		Index: h.pos,
	}
	h.pos++
	return frame, nil
}

func (h *fakeHandle) Close() error { return nil }

// countingDisplay counts rendered frames and records the last width seen.
type countingDisplay struct {
	rendered  int
	lastWidth int
}

func (d *countingDisplay) Render(img image.Image) error {
	d.rendered++
	d.lastWidth = img.Bounds().Dx()
	return nil
}

func (d *countingDisplay) Close() error { return nil }

// script replays a fixed command sequence, one command per poll.
type script struct {
	cmds []ports.Command
	pos  int
}

func (s *script) Poll(timeout time.Duration) ports.Command {
	if s.pos >= len(s.cmds) {
		return ports.CmdNone
	}
	cmd := s.cmds[s.pos]
	s.pos++
	return cmd
}

func (s *script) Close() error { return nil }

type stubRenderer struct{}

func (stubRenderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	return nil, nil
}

func (stubRenderer) ResizeImage(img image.Image, width, height int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (stubRenderer) OverlayTimestamp(img image.Image, seconds float64) image.Image {
	return img
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{})         {}
func (nopLogger) Info(msg string, args ...interface{})          {}
func (nopLogger) Warn(msg string, args ...interface{})          {}
func (nopLogger) Error(msg string, args ...interface{})         {}
func (l nopLogger) WithComponent(component string) ports.Logger { return l }

func newStage(media *fakeMedia, display ports.Display, input ports.InputSource) *Stage {
	return New(media, display, input, stubRenderer{}, nopLogger{})
}

func TestExecute_RunsToEndOfStream(t *testing.T) {
	media := &fakeMedia{info: ports.MediaInfo{FrameRate: 30, FrameCount: 10, Width: 320, Height: 240}}
	display := &countingDisplay{}
	stage := newStage(media, display, &script{})

	result, err := stage.Execute(context.Background(), pipeline.PlaybackInput{Path: "clip.mp4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FramesShown != 10 {
		t.Errorf("frames shown: expected 10, got %d", result.FramesShown)
	}
	if display.rendered != 10 {
		t.Errorf("rendered: expected 10, got %d", display.rendered)
	}
}

func TestExecute_QuitStopsImmediately(t *testing.T) {
	media := &fakeMedia{info: ports.MediaInfo{FrameRate: 30, FrameCount: 1000, Width: 320, Height: 240}}
	stage := newStage(media, &countingDisplay{}, &script{cmds: []ports.Command{ports.CmdQuit}})

	result, err := stage.Execute(context.Background(), pipeline.PlaybackInput{Path: "clip.mp4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FramesShown != 1 {
		t.Errorf("frames shown before quit: expected 1, got %d", result.FramesShown)
	}
}

func TestExecute_PauseSuppressesAdvancement(t *testing.T) {
	media := &fakeMedia{info: ports.MediaInfo{FrameRate: 30, FrameCount: 1000, Width: 320, Height: 240}}
	display := &countingDisplay{}
	// Pause after the first frame, idle for three polls, resume, then quit.
	input := &script{cmds: []ports.Command{
		ports.CmdPauseToggle,
		ports.CmdNone,
		ports.CmdNone,
		ports.CmdNone,
		ports.CmdPauseToggle,
		ports.CmdQuit,
	}}
	stage := newStage(media, display, input)

	result, err := stage.Execute(context.Background(), pipeline.PlaybackInput{Path: "clip.mp4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// One frame before the pause, one after the resume.
	if result.FramesShown != 2 {
		t.Errorf("frames shown: expected 2, got %d", result.FramesShown)
	}
}

func TestExecute_RestartSeeksToStartFrame(t *testing.T) {
	var seeks []int
	media := &fakeMedia{info: ports.MediaInfo{FrameRate: 30, FrameCount: 1000, Width: 320, Height: 240}, seeks: &seeks}
	input := &script{cmds: []ports.Command{ports.CmdRestart, ports.CmdQuit}}
	stage := newStage(media, &countingDisplay{}, input)

	_, err := stage.Execute(context.Background(), pipeline.PlaybackInput{
		Path:   "clip.mp4",
		Window: pipeline.TimeWindow{StartTime: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Initial seek to start frame, then the restart seek back to it.
	if len(seeks) != 2 || seeks[0] != 60 || seeks[1] != 60 {
		t.Errorf("expected seeks [60 60], got %v", seeks)
	}
}

func TestExecute_ForwardClampsToLastFrame(t *testing.T) {
	var seeks []int
	media := &fakeMedia{info: ports.MediaInfo{FrameRate: 30, FrameCount: 100, Width: 320, Height: 240}, seeks: &seeks}
	input := &script{cmds: []ports.Command{ports.CmdForward, ports.CmdQuit}}
	stage := newStage(media, &countingDisplay{}, input)

	_, err := stage.Execute(context.Background(), pipeline.PlaybackInput{Path: "clip.mp4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 10s ahead of frame 0 at 30 fps would be 300, clamped to 99.
	if len(seeks) != 1 || seeks[0] != 99 {
		t.Errorf("expected seek to 99, got %v", seeks)
	}
}

func TestExecute_BackwardClampsToZero(t *testing.T) {
	var seeks []int
	media := &fakeMedia{info: ports.MediaInfo{FrameRate: 30, FrameCount: 1000, Width: 320, Height: 240}, seeks: &seeks}
	input := &script{cmds: []ports.Command{ports.CmdBackward, ports.CmdQuit}}
	stage := newStage(media, &countingDisplay{}, input)

	_, err := stage.Execute(context.Background(), pipeline.PlaybackInput{Path: "clip.mp4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(seeks) != 1 || seeks[0] != 0 {
		t.Errorf("expected seek clamped to 0, got %v", seeks)
	}
}

func TestExecute_EndTimeStopsPlayback(t *testing.T) {
	media := &fakeMedia{info: ports.MediaInfo{FrameRate: 30, FrameCount: 1000, Width: 320, Height: 240}}
	display := &countingDisplay{}
	stage := newStage(media, display, &script{})

	end := 1.0
	result, err := stage.Execute(context.Background(), pipeline.PlaybackInput{
		Path:   "clip.mp4",
		Window: pipeline.TimeWindow{StartTime: 0, EndTime: &end},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Frames 0..29 render; frame 30 crosses end_time*fps and stops playback.
	if result.FramesShown != 30 {
		t.Errorf("frames shown: expected 30, got %d", result.FramesShown)
	}
}

func TestExecute_DisplayWidthCapped(t *testing.T) {
	media := &fakeMedia{info: ports.MediaInfo{FrameRate: 30, FrameCount: 1, Width: 1920, Height: 1080}}
	display := &countingDisplay{}
	stage := newStage(media, display, &script{})

	_, err := stage.Execute(context.Background(), pipeline.PlaybackInput{Path: "clip.mp4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if display.lastWidth != 1200 {
		t.Errorf("display width: expected 1200, got %d", display.lastWidth)
	}
}

func TestExecute_Cancellation(t *testing.T) {
	media := &fakeMedia{info: ports.MediaInfo{FrameRate: 30, FrameCount: 100000, Width: 320, Height: 240}}
	stage := newStage(media, &countingDisplay{}, &script{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := stage.Execute(ctx, pipeline.PlaybackInput{Path: "clip.mp4"})
	if err != nil {
		t.Fatalf("cancellation must not surface as an error, got %v", err)
	}
	if result.FramesShown != 0 {
		t.Errorf("expected no frames shown after cancellation, got %d", result.FramesShown)
	}
}
