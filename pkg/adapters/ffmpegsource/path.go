package ffmpegsource

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// ErrToolNotFound is returned when an ffmpeg tool cannot be located.
var ErrToolNotFound = errors.New("ffmpeg tool not found")

// findTool searches for an ffmpeg-family executable.
// Priority: 1) customPath from Options, 2) <TOOL>_PATH env, 3) PATH, 4) common locations.
func findTool(name, customPath, envVar string) (string, error) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err == nil {
			return customPath, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", ErrToolNotFound, customPath)
	}

	if envPath := os.Getenv(envVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
		return "", fmt.Errorf("%w: %s %s not found", ErrToolNotFound, envVar, envPath)
	}

	execName := name
	if runtime.GOOS == "windows" {
		execName = name + ".exe"
	}
	if path, err := exec.LookPath(execName); err == nil {
		return path, nil
	}

	var commonPaths []string
	if runtime.GOOS == "windows" {
		commonPaths = []string{
			`C:\ffmpeg\bin\` + execName,
			`C:\Program Files\ffmpeg\bin\` + execName,
			`C:\Program Files (x86)\ffmpeg\bin\` + execName,
		}
	} else if runtime.GOOS == "darwin" {
		commonPaths = []string{
			"/opt/homebrew/bin/" + name,
			"/usr/local/bin/" + name,
			"/usr/bin/" + name,
		}
	} else {
		commonPaths = []string{
			"/usr/bin/" + name,
			"/usr/local/bin/" + name,
			"/opt/homebrew/bin/" + name,
			"/snap/bin/" + name,
		}
	}
	for _, p := range commonPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrToolNotFound, name)
}

// FindFFmpeg locates the ffmpeg executable.
func FindFFmpeg(customPath string) (string, error) {
	return findTool("ffmpeg", customPath, "FFMPEG_PATH")
}

// FindFFprobe locates the ffprobe executable.
func FindFFprobe(customPath string) (string, error) {
	return findTool("ffprobe", customPath, "FFPROBE_PATH")
}
