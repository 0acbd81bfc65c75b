package testutil

import (
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"

	"github.com/arthur-debert/inkwell/pkg/color"
	"github.com/arthur-debert/inkwell/pkg/console"
	"github.com/arthur-debert/inkwell/pkg/terminal"
)

// Recorder is an io.Writer that keeps every write. It is safe for use from
// several goroutines.
type Recorder struct {
	mu     sync.Mutex
	writes []string
}

// Write implements io.Writer
func (r *Recorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, string(p))
	return len(p), nil
}

// String returns everything written so far
func (r *Recorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.writes, "")
}

// Writes returns the individual writes in order
func (r *Recorder) Writes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.writes...)
}

// Reset forgets all writes
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = nil
}

// Count returns how many times substr occurs in the recorded output
func (r *Recorder) Count(substr string) int {
	return strings.Count(r.String(), substr)
}

// PlainConsole returns a console with no ANSI support writing to a Recorder
func PlainConsole(width int, opts ...console.Option) (*console.Console, *Recorder) {
	rec := &Recorder{}
	return console.New(rec, terminal.Plain(width), opts...), rec
}

// ANSIConsole returns a terminal console with the given color system
// writing to a Recorder
func ANSIConsole(width int, sys color.System, opts ...console.Option) (*console.Console, *Recorder) {
	rec := &Recorder{}
	return console.New(rec, terminal.Forced(width, sys), opts...), rec
}

// Strip removes escape sequences
func Strip(s string) string {
	return ansi.Strip(s)
}

// Lines splits output into lines, dropping the empty string after a
// trailing newline
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
