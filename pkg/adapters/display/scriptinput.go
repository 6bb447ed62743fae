package display

import (
	"time"

	"github.com/user/framegrab/pkg/ports"
)

// ScriptInput replays a fixed command sequence, one command per poll.
// After the script runs out every poll returns CmdNone immediately.
// Useful for driving playback without a terminal.
type ScriptInput struct {
	script []ports.Command
	pos    int
}

// NewScript creates an input source replaying the given commands.
func NewScript(script ...ports.Command) *ScriptInput {
	return &ScriptInput{script: script}
}

// Poll returns the next scripted command without waiting.
func (s *ScriptInput) Poll(timeout time.Duration) ports.Command {
	if s.pos >= len(s.script) {
		return ports.CmdNone
	}
	cmd := s.script[s.pos]
	s.pos++
	return cmd
}

// Close releases the source.
func (s *ScriptInput) Close() error {
	return nil
}

// Ensure ScriptInput implements ports.InputSource
var _ ports.InputSource = (*ScriptInput)(nil)
