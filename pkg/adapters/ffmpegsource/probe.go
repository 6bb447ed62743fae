package ffmpegsource

import (
	"bytes"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"github.com/user/framegrab/pkg/ports"
)

// probeWithFFprobe extracts stream metadata using ffprobe. It covers the
// containers the built-in MP4 prober cannot handle.
func probeWithFFprobe(ffprobePath, path string) (ports.MediaInfo, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(ffprobePath,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height,r_frame_rate,nb_frames",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1",
		path,
	)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return ports.MediaInfo{}, fmt.Errorf("ffprobe failed: %w\nstderr: %s", err, stderr.String())
	}

	fields := make(map[string]string)
	for _, line := range strings.Split(stdout.String(), "\n") {
		key, value, found := strings.Cut(strings.TrimSpace(line), "=")
		if found {
			fields[key] = value
		}
	}

	info := ports.MediaInfo{}
	var err error
	if info.Width, err = strconv.Atoi(fields["width"]); err != nil {
		return ports.MediaInfo{}, fmt.Errorf("parse width: %w", err)
	}
	if info.Height, err = strconv.Atoi(fields["height"]); err != nil {
		return ports.MediaInfo{}, fmt.Errorf("parse height: %w", err)
	}
	if info.FrameRate, err = parseRational(fields["r_frame_rate"]); err != nil {
		return ports.MediaInfo{}, fmt.Errorf("parse frame rate: %w", err)
	}
	if info.FrameRate <= 0 {
		return ports.MediaInfo{}, fmt.Errorf("stream has no frame rate")
	}

	// Some containers do not carry a frame count. Derive it from the
	// duration when missing.
	if count, err := strconv.Atoi(fields["nb_frames"]); err == nil && count > 0 {
		info.FrameCount = count
	} else {
		duration, err := strconv.ParseFloat(fields["duration"], 64)
		if err != nil {
			return ports.MediaInfo{}, fmt.Errorf("stream has neither frame count nor duration")
		}
		info.FrameCount = int(math.Round(duration * info.FrameRate))
	}
	if info.FrameCount <= 0 {
		return ports.MediaInfo{}, fmt.Errorf("stream has no frames")
	}

	return info, nil
}

// parseRational parses an ffprobe rational like "30000/1001" or "25/1".
func parseRational(s string) (float64, error) {
	num, den, found := strings.Cut(s, "/")
	if !found {
		return strconv.ParseFloat(s, 64)
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, err
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, fmt.Errorf("zero denominator in %q", s)
	}
	return n / d, nil
}
