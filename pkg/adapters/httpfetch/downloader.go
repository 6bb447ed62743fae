// Package httpfetch provides an HTTP video downloader.
package httpfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/user/framegrab/pkg/ports"
)

const (
	// chunkSize is the copy buffer size for streaming downloads.
	chunkSize = 8192

	// probeTimeout bounds the HEAD request used for URL validation.
	probeTimeout = 10 * time.Second
)

// videoExtensions lists file extensions recognized as video content.
var videoExtensions = []string{
	".mp4", ".avi", ".mov", ".mkv", ".flv", ".wmv", ".webm", ".m4v",
}

// Downloader implements ports.Downloader over HTTP.
type Downloader struct {
	client *http.Client
}

// New creates a new HTTP downloader.
func New() *Downloader {
	return &Downloader{
		client: &http.Client{},
	}
}

// Validate probes the URL with a HEAD request and checks whether it
// looks like video content, by content type or by file extension.
// Probe failures count as valid so that servers rejecting HEAD requests
// do not block the download.
func (d *Downloader) Validate(ctx context.Context, rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return false
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodHead, rawURL, nil)
	if err != nil {
		return false
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return true
	}
	defer resp.Body.Close()

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	if strings.Contains(contentType, "video") {
		return true
	}

	ext := strings.ToLower(path.Ext(parsed.Path))
	for _, known := range videoExtensions {
		if ext == known {
			return true
		}
	}
	return false
}

// Download streams the URL to destPath, invoking progress after each
// chunk when the callback is set.
func (d *Downloader) Download(ctx context.Context, rawURL, destPath string, progress func(ports.DownloadProgress)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	var downloaded int64
	buf := make([]byte, chunkSize)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				return fmt.Errorf("write chunk: %w", writeErr)
			}
			downloaded += int64(n)
			if progress != nil {
				progress(ports.DownloadProgress{
					DownloadedBytes: downloaded,
					TotalBytes:      resp.ContentLength,
				})
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("read body: %w", readErr)
		}
	}
	return nil
}

// Ensure Downloader implements ports.Downloader
var _ ports.Downloader = (*Downloader)(nil)
