package ports

import "context"

// DownloadProgress reports streaming download progress.
type DownloadProgress struct {
	DownloadedBytes int64
	TotalBytes      int64 // 0 when the server does not send Content-Length
}

// Downloader fetches a remote video resource to a local file.
type Downloader interface {
	// Download writes the resource at url to destPath, reporting progress
	// through the callback when it is non-nil. Download blocks until the
	// transfer completes or fails; a partial file may remain on failure and
	// must be removed by the caller.
	Download(ctx context.Context, url, destPath string, progress func(DownloadProgress)) error

	// Validate reports whether the URL appears to point at a video resource.
	// Probe errors count as valid so that an unreachable HEAD endpoint does
	// not block the download attempt.
	Validate(ctx context.Context, url string) bool
}
