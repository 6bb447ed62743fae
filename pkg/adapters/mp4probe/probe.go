// Package mp4probe inspects MP4 containers to recover stream metadata
// without decoding any video data.
package mp4probe

import (
	"fmt"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/framegrab/pkg/ports"
)

// Probe reads the MP4 sample tables at path and derives the stream
// metadata. Fragmented MP4 files have no flat sample table, so they
// return an error and callers fall back to an external prober.
func Probe(path string) (ports.MediaInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.MediaInfo{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	mp4File, err := mp4.DecodeFile(f)
	if err != nil {
		return ports.MediaInfo{}, fmt.Errorf("decode mp4: %w", err)
	}
	if mp4File.IsFragmented() {
		return ports.MediaInfo{}, fmt.Errorf("fragmented mp4 has no sample table")
	}
	if mp4File.Moov == nil {
		return ports.MediaInfo{}, fmt.Errorf("no moov box found")
	}

	var videoTrack *mp4.TrakBox
	for _, trak := range mp4File.Moov.Traks {
		if trak.Mdia != nil && trak.Mdia.Hdlr != nil && trak.Mdia.Hdlr.HandlerType == "vide" {
			videoTrack = trak
			break
		}
	}
	if videoTrack == nil {
		return ports.MediaInfo{}, fmt.Errorf("no video track found")
	}

	if videoTrack.Mdia == nil || videoTrack.Mdia.Mdhd == nil {
		return ports.MediaInfo{}, fmt.Errorf("no mdhd box found")
	}
	mdhd := videoTrack.Mdia.Mdhd
	if mdhd.Timescale == 0 || mdhd.Duration == 0 {
		return ports.MediaInfo{}, fmt.Errorf("track has no duration")
	}
	durationSec := float64(mdhd.Duration) / float64(mdhd.Timescale)

	if videoTrack.Mdia.Minf == nil || videoTrack.Mdia.Minf.Stbl == nil || videoTrack.Mdia.Minf.Stbl.Stsz == nil {
		return ports.MediaInfo{}, fmt.Errorf("no stsz box found")
	}
	frameCount := int(videoTrack.Mdia.Minf.Stbl.Stsz.SampleNumber)
	if frameCount == 0 {
		return ports.MediaInfo{}, fmt.Errorf("video track has no samples")
	}

	// Tkhd dimensions are 16.16 fixed point.
	width := int(videoTrack.Tkhd.Width >> 16)
	height := int(videoTrack.Tkhd.Height >> 16)
	if width == 0 || height == 0 {
		return ports.MediaInfo{}, fmt.Errorf("track has no dimensions")
	}

	return ports.MediaInfo{
		FrameRate:  float64(frameCount) / durationSec,
		FrameCount: frameCount,
		Width:      width,
		Height:     height,
	}, nil
}
