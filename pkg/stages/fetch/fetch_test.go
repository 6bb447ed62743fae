package fetch

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/user/framegrab/pkg/pipeline"
	"github.com/user/framegrab/pkg/ports"
)

type fakeDownloader struct {
	valid bool
	data  []byte
	err   error
	dest  string
}

func (d *fakeDownloader) Download(ctx context.Context, url, destPath string, progress func(ports.DownloadProgress)) error {
	d.dest = destPath
	if d.err != nil {
		return d.err
	}
	if progress != nil {
		progress(ports.DownloadProgress{DownloadedBytes: int64(len(d.data)), TotalBytes: int64(len(d.data))})
	}
	return nil
}

func (d *fakeDownloader) Validate(ctx context.Context, url string) bool {
	return d.valid
}

type fakeFS struct {
	files   map[string][]byte
	removed []string
}

func newFakeFS() *fakeFS {
	return &fakeFS{files: map[string][]byte{}}
}

func (f *fakeFS) ReadFile(path string) ([]byte, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (f *fakeFS) WriteFile(path string, data []byte) error {
	f.files[path] = data
	return nil
}

func (f *fakeFS) MkdirAll(path string) error { return nil }

func (f *fakeFS) Exists(path string) (bool, error) {
	_, ok := f.files[path]
	return ok, nil
}

func (f *fakeFS) Remove(path string) error {
	delete(f.files, path)
	f.removed = append(f.removed, path)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{})      {}
func (nopLogger) Info(msg string, args ...interface{})       {}
func (nopLogger) Warn(msg string, args ...interface{})       {}
func (nopLogger) Error(msg string, args ...interface{})      {}
func (l nopLogger) WithComponent(component string) ports.Logger { return l }

func TestExecute_Success(t *testing.T) {
	dl := &fakeDownloader{valid: true, data: []byte("video-bytes")}
	fs := newFakeFS()
	stage := New(dl, fs, nopLogger{}, nil)

	result, err := stage.Execute(context.Background(), pipeline.FetchInput{
		URL:     "https://example.com/media/clip.mp4",
		WorkDir: ".",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Path != "clip.mp4" {
		t.Errorf("path: expected clip.mp4, got %s", result.Path)
	}
	if result.Bytes != int64(len(dl.data)) {
		t.Errorf("bytes: expected %d, got %d", len(dl.data), result.Bytes)
	}
}

func TestExecute_FailureRemovesPartial(t *testing.T) {
	dl := &fakeDownloader{valid: true, err: errors.New("connection reset")}
	fs := newFakeFS()
	// Simulate the partial file left behind by the failed transfer.
	dlWrap := &partialWritingDownloader{inner: dl, fs: fs}
	stage := New(dlWrap, fs, nopLogger{}, nil)

	_, err := stage.Execute(context.Background(), pipeline.FetchInput{
		URL:     "https://example.com/clip.mp4",
		WorkDir: ".",
	})
	if !errors.Is(err, ports.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if len(fs.removed) != 1 || fs.removed[0] != "clip.mp4" {
		t.Errorf("expected partial clip.mp4 removed, got %v", fs.removed)
	}
}

// partialWritingDownloader writes a partial file before delegating, so the
// cleanup path has something to remove.
type partialWritingDownloader struct {
	inner ports.Downloader
	fs    ports.FileSystem
}

func (d *partialWritingDownloader) Download(ctx context.Context, url, destPath string, progress func(ports.DownloadProgress)) error {
	d.fs.WriteFile(destPath, []byte("partial"))
	return d.inner.Download(ctx, url, destPath, progress)
}

func (d *partialWritingDownloader) Validate(ctx context.Context, url string) bool {
	return d.inner.Validate(ctx, url)
}

func TestSanitizeFileName(t *testing.T) {
	now := time.Unix(1700000000, 0)

	tests := []struct {
		in       string
		expected string
	}{
		{"my video.mp4", "my video.mp4"},
		{`a<b>c:d.mp4`, "a_b_c_d.mp4"},
		{"a___b.mp4", "a_b.mp4"},
	}
	for _, tt := range tests {
		if got := SanitizeFileName(tt.in, now); got != tt.expected {
			t.Errorf("SanitizeFileName(%q): expected %q, got %q", tt.in, tt.expected, got)
		}
	}

	if got := SanitizeFileName("", now); got != "video_1700000000.mp4" {
		t.Errorf("empty name fallback: got %q", got)
	}
}

func TestFileNameForURL(t *testing.T) {
	now := time.Unix(1700000000, 0)

	if got := FileNameForURL("https://example.com/a/b/clip.mp4?token=1", now); got != "clip.mp4" {
		t.Errorf("expected clip.mp4, got %q", got)
	}

	got := FileNameForURL("https://example.com/stream", now)
	if !strings.HasPrefix(got, "downloaded_video_") || !strings.HasSuffix(got, ".mp4") {
		t.Errorf("expected generated name, got %q", got)
	}
}
