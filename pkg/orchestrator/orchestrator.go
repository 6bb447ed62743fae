// Package orchestrator coordinates the extraction run.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ideamans/go-l10n"

	"github.com/user/framegrab/pkg/pipeline"
	"github.com/user/framegrab/pkg/ports"
)

// ErrInterrupted indicates the run was cancelled. The returned RunResult
// still carries the partial outcome for best-effort reporting.
var ErrInterrupted = errors.New("run interrupted")

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	URL     string
	WorkDir string

	// Output
	OutputDir string

	// Sampling
	IntervalSec float64
	Quality     int
	MaxWidth    int

	// Window
	StartTime float64
	EndTime   *float64

	// Playback
	PlayVideo bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		WorkDir:     ".",
		OutputDir:   "frames",
		IntervalSec: 5,
		Quality:     95,
		PlayVideo:   true,
	}
}

// RunResult aggregates source properties, the requested window and spec,
// and the post-hoc extraction results for report generation.
type RunResult struct {
	SourceURL   string
	StartedAt   time.Time
	OutputDir   string
	Info        ports.MediaInfo
	Window      pipeline.TimeWindow
	Spec        pipeline.SampleSpec
	Frames      []pipeline.ExtractedFrame
	ActualEnd   float64
	Interrupted bool
}

// FramesExtracted returns the number of frames saved.
func (r RunResult) FramesExtracted() int {
	return len(r.Frames)
}

// Orchestrator runs the sampler and the playback controller concurrently
// against two independent decode handles onto the same downloaded file and
// joins them before assembling the run result.
type Orchestrator struct {
	fetchStage    pipeline.Stage[pipeline.FetchInput, pipeline.FetchResult]
	sampleStage   pipeline.Stage[pipeline.SampleInput, pipeline.SampleResult]
	playbackStage pipeline.Stage[pipeline.PlaybackInput, pipeline.PlaybackResult]
	fs            ports.FileSystem
	logger        ports.Logger
}

// New creates a new Orchestrator.
func New(
	fetchStage pipeline.Stage[pipeline.FetchInput, pipeline.FetchResult],
	sampleStage pipeline.Stage[pipeline.SampleInput, pipeline.SampleResult],
	playbackStage pipeline.Stage[pipeline.PlaybackInput, pipeline.PlaybackResult],
	fs ports.FileSystem,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		fetchStage:    fetchStage,
		sampleStage:   sampleStage,
		playbackStage: playbackStage,
		fs:            fs,
		logger:        logger,
	}
}

// Run executes the complete extraction run.
//
// Validation happens before any work: an invalid window aborts with no
// output. The downloaded temporary file is removed on every exit path.
// With PlayVideo disabled only the sampler runs, synchronously; playback
// must never influence which frames are sampled, so its result is joined
// but otherwise ignored.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	window := pipeline.TimeWindow{StartTime: config.StartTime, EndTime: config.EndTime}
	if err := window.Validate(); err != nil {
		return RunResult{}, err
	}
	if config.IntervalSec <= 0 {
		return RunResult{}, fmt.Errorf("%w: interval must be greater than 0", pipeline.ErrIntervalTooSmall)
	}

	result := RunResult{
		SourceURL: config.URL,
		StartedAt: time.Now(),
		OutputDir: config.OutputDir,
		Window:    window,
		Spec: pipeline.SampleSpec{
			IntervalSec: config.IntervalSec,
			Quality:     config.Quality,
			MaxWidth:    config.MaxWidth,
		},
	}

	o.logger.Info(l10n.T("Starting extraction run"))

	if err := o.fs.MkdirAll(config.OutputDir); err != nil {
		return result, fmt.Errorf("create output directory: %w", err)
	}

	// The download must complete (or fail) before either traversal starts.
	fetchRes, err := o.fetchStage.Execute(ctx, pipeline.FetchInput{URL: config.URL, WorkDir: config.WorkDir})
	if err != nil {
		return result, fmt.Errorf("fetch stage: %w", err)
	}
	defer func() {
		if rmErr := o.fs.Remove(fetchRes.Path); rmErr != nil {
			o.logger.Warn(l10n.F("Could not remove temporary video file: %s", rmErr))
		} else {
			o.logger.Info(l10n.F("Cleaned up downloaded video: %s", fetchRes.Path))
		}
	}()

	sampleInput := pipeline.SampleInput{
		Path:   fetchRes.Path,
		Window: window,
		Spec:   result.Spec,
	}

	var sampleRes pipeline.SampleResult
	var sampleErr error

	if config.PlayVideo {
		// Sampler and playback each open their own decode handle; the only
		// coordination point is this join barrier.
		done := make(chan struct{})
		go func() {
			defer close(done)
			sampleRes, sampleErr = o.sampleStage.Execute(ctx, sampleInput)
		}()

		playbackInput := pipeline.PlaybackInput{Path: fetchRes.Path, Window: window}
		if _, playErr := o.playbackStage.Execute(ctx, playbackInput); playErr != nil {
			o.logger.Warn(l10n.F("Playback failed: %s", playErr))
		}

		<-done
	} else {
		sampleRes, sampleErr = o.sampleStage.Execute(ctx, sampleInput)
	}

	if sampleErr != nil {
		return result, fmt.Errorf("sample stage: %w", sampleErr)
	}

	result.Info = sampleRes.Info
	result.Frames = sampleRes.Frames
	result.ActualEnd = sampleRes.ActualEndTime
	result.Interrupted = sampleRes.Interrupted || ctx.Err() != nil

	if result.Interrupted {
		o.logger.Warn(l10n.T("Process interrupted by user"))
		return result, ErrInterrupted
	}

	o.logger.Info(l10n.F("Extraction run completed: %d frames saved", len(result.Frames)))
	return result, nil
}
