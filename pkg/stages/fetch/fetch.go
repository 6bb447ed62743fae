// Package fetch implements the source download stage.
package fetch

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/ideamans/go-l10n"

	"github.com/user/framegrab/pkg/pipeline"
	"github.com/user/framegrab/pkg/ports"
)

// Stage downloads the source video to a local temporary file.
// The download is a blocking operation that must complete (or fail) before
// either traversal starts; the coordinator owns removal of the file on every
// terminal outcome, while this stage removes partial output on failure.
type Stage struct {
	downloader ports.Downloader
	fs         ports.FileSystem
	logger     ports.Logger
	progress   func(ports.DownloadProgress)
}

// New creates a new fetch stage. progress may be nil.
func New(downloader ports.Downloader, fs ports.FileSystem, logger ports.Logger, progress func(ports.DownloadProgress)) *Stage {
	return &Stage{
		downloader: downloader,
		fs:         fs,
		logger:     logger.WithComponent("download"),
		progress:   progress,
	}
}

// Execute downloads the video and returns its local path.
func (s *Stage) Execute(ctx context.Context, input pipeline.FetchInput) (pipeline.FetchResult, error) {
	if !s.downloader.Validate(ctx, input.URL) {
		s.logger.Warn(l10n.T("URL might not be a video file"))
	}

	dest := filepath.Join(input.WorkDir, FileNameForURL(input.URL, time.Now()))

	s.logger.Info(l10n.F("Downloading video from: %s", input.URL))

	var downloaded int64
	report := func(p ports.DownloadProgress) {
		downloaded = p.DownloadedBytes
		if s.progress != nil {
			s.progress(p)
		}
	}

	if err := s.downloader.Download(ctx, input.URL, dest, report); err != nil {
		// Never leave a partial download behind.
		if exists, _ := s.fs.Exists(dest); exists {
			if rmErr := s.fs.Remove(dest); rmErr != nil {
				s.logger.Warn(l10n.F("Could not remove partial download: %s", rmErr))
			}
		}
		return pipeline.FetchResult{}, fmt.Errorf("%w: %v", ports.ErrSourceUnavailable, err)
	}

	s.logger.Info(l10n.F("Video downloaded successfully: %s", dest))
	return pipeline.FetchResult{Path: dest, Bytes: downloaded}, nil
}

var invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*]`)
var underscoreRuns = regexp.MustCompile(`_+`)

// SanitizeFileName strips characters that are unsafe in file names and
// collapses runs of underscores. An empty result falls back to a
// timestamped name.
func SanitizeFileName(name string, now time.Time) string {
	sanitized := invalidFileChars.ReplaceAllString(name, "_")
	sanitized = underscoreRuns.ReplaceAllString(sanitized, "_")
	if sanitized == "" || sanitized == "_" {
		sanitized = fmt.Sprintf("video_%d.mp4", now.Unix())
	}
	return sanitized
}

// FileNameForURL derives a local file name from the URL path basename.
// A basename without an extension gets a generated name so the media
// adapter can recognize the container.
func FileNameForURL(rawURL string, now time.Time) string {
	base := path.Base(strings.SplitN(rawURL, "?", 2)[0])
	if base == "." || base == "/" || !strings.Contains(base, ".") {
		base = fmt.Sprintf("downloaded_video_%d.mp4", now.Unix())
	}
	return SanitizeFileName(base, now)
}
