package speech

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandPlayer plays audio by running an external command with the file
// path appended as the last argument.
type CommandPlayer struct {
	Command []string
}

// Play implements Player.
func (p CommandPlayer) Play(ctx context.Context, path string) error {
	if len(p.Command) == 0 {
		return fmt.Errorf("no audio player configured")
	}

	args := append(append([]string{}, p.Command[1:]...), path)
	cmd := exec.CommandContext(ctx, p.Command[0], args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", p.Command[0], err, msg)
		}
		return fmt.Errorf("%s: %w", p.Command[0], err)
	}
	return nil
}
