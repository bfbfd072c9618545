// Package observ provides lightweight phase timing for the CLI.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// phase is one finished timed span with the note attached at stop time.
type phase struct {
	name string
	dur  time.Duration
	note string
}

// Timer collects named phases. Not safe for concurrent use; the CLI times
// sequential pipeline steps on one goroutine.
type Timer struct {
	phases []phase
}

func NewTimer() *Timer { return &Timer{} }

// Phase starts a named phase and returns its stop function. Call the stop
// function exactly once when the phase finishes; the note (may be empty)
// describes what the phase covered, e.g. "3 traces".
func (t *Timer) Phase(name string) func(note string) {
	start := time.Now()
	return func(note string) {
		t.phases = append(t.phases, phase{name: name, dur: time.Since(start), note: note})
	}
}

// Summary renders all recorded phases plus a total line, in the order the
// phases finished.
func (t *Timer) Summary() string {
	var sb strings.Builder
	sb.WriteString("timings:\n")
	var total time.Duration
	for _, p := range t.phases {
		total += p.dur
		fmt.Fprintf(&sb, "  %-12s %8.2f ms", p.name, millis(p.dur))
		if p.note != "" {
			fmt.Fprintf(&sb, "  (%s)", p.note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-12s %8.2f ms\n", "total", millis(total))
	return sb.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
