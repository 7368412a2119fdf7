package quiz

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"
)

// Typer prints text one rune at a time with a random delay between runes.
type Typer struct {
	out   io.Writer
	sleep func(time.Duration)
	rand  *rand.Rand
}

// NewTyper creates a Typer.
func NewTyper(out io.Writer, sleep func(time.Duration), r *rand.Rand) *Typer {
	return &Typer{out: out, sleep: sleep, rand: r}
}

// Type writes text followed by a newline. After each rune it sleeps
// rand[0,1) * 10 / rate seconds; higher rates type faster.
func (t *Typer) Type(text string, rate float64) error {
	for _, r := range text {
		if _, err := io.WriteString(t.out, string(r)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		t.sleep(t.delay(rate))
	}
	if _, err := fmt.Fprintln(t.out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (t *Typer) delay(rate float64) time.Duration {
	return time.Duration(t.rand.Float64() * 10 / rate * float64(time.Second))
}
