// Package main provides the CLI entry point for framegrab.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/framegrab/pkg/adapters/display"
	"github.com/user/framegrab/pkg/adapters/ffmpegsource"
	"github.com/user/framegrab/pkg/adapters/ggrenderer"
	"github.com/user/framegrab/pkg/adapters/httpfetch"
	"github.com/user/framegrab/pkg/adapters/jpegsink"
	"github.com/user/framegrab/pkg/adapters/logger"
	"github.com/user/framegrab/pkg/adapters/osfilesystem"
	"github.com/user/framegrab/pkg/config"
	"github.com/user/framegrab/pkg/orchestrator"
	"github.com/user/framegrab/pkg/ports"
	"github.com/user/framegrab/pkg/stages/fetch"
	"github.com/user/framegrab/pkg/stages/playback"
	"github.com/user/framegrab/pkg/stages/sample"
	"github.com/user/framegrab/pkg/summarizer"
)

const (
	logFileName      = "extraction_log.txt"
	metadataFileName = "video_metadata.json"
	reportFileName   = "extraction_report.txt"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:      "framegrab",
		Usage:     l10n.T("Download a video and extract still frames at a fixed interval"),
		ArgsUsage: "URL",
		Version:   version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "frames",
				Usage:   l10n.T("Output directory for extracted frames"),
			},
			&cli.Float64Flag{
				Name:    "interval",
				Aliases: []string{"i"},
				Value:   5,
				Usage:   l10n.T("Extraction interval in seconds"),
			},
			&cli.IntFlag{
				Name:    "quality",
				Aliases: []string{"q"},
				Value:   95,
				Usage:   l10n.T("JPEG quality (1-100)"),
			},
			&cli.IntFlag{
				Name:    "max-width",
				Aliases: []string{"w"},
				Usage:   l10n.T("Downsample frames wider than this (0 = keep original size)"),
			},
			&cli.Float64Flag{
				Name:    "start",
				Aliases: []string{"s"},
				Usage:   l10n.T("Start of the extraction window in seconds"),
			},
			&cli.Float64Flag{
				Name:    "end",
				Aliases: []string{"e"},
				Usage:   l10n.T("End of the extraction window in seconds (default: end of video)"),
			},
			&cli.BoolFlag{
				Name:  "no-play",
				Usage: l10n.T("Skip playback during extraction"),
			},
			&cli.BoolFlag{
				Name:  "no-report",
				Usage: l10n.T("Skip writing metadata and report files"),
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: l10n.T("Path to a YAML config file"),
			},
			&cli.StringFlag{
				Name:  "ffmpeg-path",
				Usage: l10n.T("Path to the ffmpeg executable"),
			},
			&cli.StringFlag{
				Name:  "ffprobe-path",
				Usage: l10n.T("Path to the ffprobe executable"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildConfig layers the optional config file and CLI flags over defaults.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.Args().Len() > 0 {
		cfg.URL = c.Args().First()
	}
	if c.IsSet("output") || cfg.OutputDir == "" {
		cfg.OutputDir = c.String("output")
	}
	if c.IsSet("interval") {
		cfg.IntervalSec = c.Float64("interval")
	}
	if c.IsSet("quality") {
		cfg.Quality = c.Int("quality")
	}
	if c.IsSet("max-width") {
		cfg.MaxWidth = c.Int("max-width")
	}
	if c.IsSet("start") {
		cfg.StartTime = c.Float64("start")
	}
	if c.IsSet("end") {
		end := c.Float64("end")
		cfg.EndTime = &end
	}
	if c.Bool("no-play") {
		cfg.Play = false
	}
	if c.Bool("no-report") {
		cfg.Report = false
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("ffmpeg-path") {
		cfg.FFmpegPath = c.String("ffmpeg-path")
	}
	if c.IsSet("ffprobe-path") {
		cfg.FFprobePath = c.String("ffprobe-path")
	}
	return cfg, nil
}

func run(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}

	// Validation runs before the output directory or log file exists, so a
	// bad invocation leaves nothing behind.
	if err := cfg.Validate(); err != nil {
		return err
	}

	var log ports.Logger
	var fileLog *logger.FileLogger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		level := ports.ParseLogLevel(cfg.LogLevel)
		consoleLog := logger.NewConsole(level)

		if err := osfilesystem.New().MkdirAll(cfg.OutputDir); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		fileLog, err = logger.NewFile(filepath.Join(cfg.OutputDir, logFileName), level)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer fileLog.Close()
		log = logger.NewTee(consoleLog, fileLog)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	// Adapters
	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	downloader := httpfetch.New()
	opener := ffmpegsource.New(ffmpegsource.Options{
		FFmpegPath:  cfg.FFmpegPath,
		FFprobePath: cfg.FFprobePath,
	})
	sink := jpegsink.New(cfg.OutputDir, cfg.Quality, fs, renderer)

	input := display.NewConsole()
	defer input.Close()
	screen := display.NewNull()
	defer screen.Close()

	// Stages
	fetchStage := fetch.New(downloader, fs, log, downloadProgress(c.Bool("quiet")))
	sampleStage := sample.New(opener, renderer, sink, log)
	playbackStage := playback.New(opener, screen, input, renderer, log)

	orch := orchestrator.New(fetchStage, sampleStage, playbackStage, fs, log)

	log.Info(l10n.F("Extracting frames from %s every %gs", cfg.URL, cfg.IntervalSec))

	result, runErr := orch.Run(ctx, cfg.ToOrchestratorConfig())
	if runErr != nil && !errors.Is(runErr, orchestrator.ErrInterrupted) {
		return runErr
	}

	// An interrupted run still reports what it managed to extract.
	if cfg.Report {
		if err := writeReports(result, fs); err != nil {
			log.Warn(l10n.F("Failed to write reports: %s", err))
		}
	}

	if runErr != nil {
		return runErr
	}

	log.Info(l10n.F("Saved %d frames to %s", result.FramesExtracted(), cfg.OutputDir))
	return nil
}

// downloadProgress returns a progress callback printing a single updating
// line, or nil when output is suppressed.
func downloadProgress(quiet bool) func(ports.DownloadProgress) {
	if quiet {
		return nil
	}
	return func(p ports.DownloadProgress) {
		if p.TotalBytes <= 0 {
			return
		}
		percent := float64(p.DownloadedBytes) / float64(p.TotalBytes) * 100
		fmt.Printf("\r%s", l10n.F("Download progress: %.1f%%", percent))
		if p.DownloadedBytes >= p.TotalBytes {
			fmt.Println()
		}
	}
}

// writeReports writes the metadata JSON and human-readable report into the
// output directory.
func writeReports(result orchestrator.RunResult, fs ports.FileSystem) error {
	summary := summarizer.NewBuilder().
		WithSource(result.SourceURL).
		WithStream(result.Info.FrameRate, result.Info.FrameCount, result.Info.Width, result.Info.Height).
		WithSpec(result.Spec.IntervalSec, result.Spec.Quality, result.Spec.MaxWidth).
		WithWindow(result.Window.StartTime, result.Window.EndTime).
		WithResults(result.FramesExtracted(), result.ActualEnd).
		WithOutputDir(result.OutputDir).
		WithExtractionTime(result.StartedAt).
		Build()

	metadataWriter := summarizer.NewWriter(summarizer.NewJSONFormatter(), fs)
	if err := metadataWriter.Write(filepath.Join(result.OutputDir, metadataFileName), summary); err != nil {
		return err
	}
	reportWriter := summarizer.NewWriter(summarizer.NewReportFormatter(), fs)
	return reportWriter.Write(filepath.Join(result.OutputDir, reportFileName), summary)
}
