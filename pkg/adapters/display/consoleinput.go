package display

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/user/framegrab/pkg/ports"
)

// ConsoleInput reads transport commands from stdin. A background reader
// pushes parsed commands into a buffered channel so Poll never blocks on
// the terminal.
type ConsoleInput struct {
	commands chan ports.Command
	done     chan struct{}
	tty      bool
}

// NewConsole creates an input source over stdin. When stdin is not a
// terminal the reader is never started and Poll just sleeps out its
// timeout.
func NewConsole() *ConsoleInput {
	c := &ConsoleInput{
		commands: make(chan ports.Command, 8),
		done:     make(chan struct{}),
		tty:      isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}
	if c.tty {
		go c.readLoop()
	}
	return c
}

func (c *ConsoleInput) readLoop() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-c.done:
			return
		default:
		}

		cmd := parseCommand(scanner.Text())
		if cmd == ports.CmdNone {
			continue
		}
		select {
		case c.commands <- cmd:
		case <-c.done:
			return
		}
	}
}

// parseCommand maps a typed line to a transport command.
func parseCommand(line string) ports.Command {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "q":
		return ports.CmdQuit
	case "p":
		return ports.CmdPauseToggle
	case "r":
		return ports.CmdRestart
	case "f":
		return ports.CmdForward
	case "b":
		return ports.CmdBackward
	default:
		return ports.CmdNone
	}
}

// Poll waits up to timeout for a command.
func (c *ConsoleInput) Poll(timeout time.Duration) ports.Command {
	select {
	case cmd := <-c.commands:
		return cmd
	case <-time.After(timeout):
		return ports.CmdNone
	case <-c.done:
		return ports.CmdQuit
	}
}

// Close stops the reader.
func (c *ConsoleInput) Close() error {
	close(c.done)
	return nil
}

// Ensure ConsoleInput implements ports.InputSource
var _ ports.InputSource = (*ConsoleInput)(nil)
