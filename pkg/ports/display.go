package ports

import (
	"image"
	"time"
)

// Command is a transport command polled from an input source.
type Command int

const (
	// CmdNone means no command arrived within the poll window.
	CmdNone Command = iota
	// CmdQuit stops playback.
	CmdQuit
	// CmdPauseToggle toggles between Playing and Paused.
	CmdPauseToggle
	// CmdRestart seeks back to the start of the playback window.
	CmdRestart
	// CmdForward skips ahead 10 seconds.
	CmdForward
	// CmdBackward skips back 10 seconds.
	CmdBackward
)

// Display presents playback frames. Implementations must work in headless
// environments, where rendering may be a no-op.
type Display interface {
	Render(img image.Image) error
	Close() error
}

// InputSource polls transport commands with a bounded wait.
// The bounded wait doubles as the per-frame playback delay, so Poll must not
// return earlier than timeout when no command is pending unless the
// implementation is a scripted test double.
type InputSource interface {
	// Poll waits up to timeout for a command, returning CmdNone when none
	// arrived.
	Poll(timeout time.Duration) Command
	Close() error
}
