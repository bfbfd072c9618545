// Package replay implements the trace-reading engine interfaces over
// synthetic traces. Events are either held in memory or persisted as
// msgpack snapshots in a directory the trace locator recognizes.
//
// The package exists for tests, acceptance runs and tooling; it is not a
// parser for natively recorded traces.
package replay

import (
	"errors"
	"fmt"

	"ctfkit/ctf"
)

// Engine implements ctf.Engine. A zero-argument Engine loads events from the
// trace directory it is asked to open; FromEvents serves a fixed in-memory
// event list instead.
type Engine struct {
	// FailAdvanceAfter makes iterators fail to advance after that many
	// delivered events. Zero disables the knob. It exists to exercise
	// mid-trace engine failures.
	FailAdvanceAfter int

	events []Event
}

// New returns a file-backed engine: OpenSession reads the snapshot stored in
// the trace directory.
func New() *Engine {
	return &Engine{}
}

// FromEvents returns an in-memory engine serving the given events for any
// directory.
func FromEvents(events ...Event) *Engine {
	return &Engine{events: events}
}

// OpenSession opens a session over the resolved trace directory.
func (e *Engine) OpenSession(dir string) (ctf.Session, error) {
	events := e.events
	if events == nil {
		loaded, err := ReadTrace(dir)
		if err != nil {
			return nil, err
		}
		events = loaded
	}
	return &session{events: events, failAfter: e.FailAdvanceAfter}, nil
}

type session struct {
	events    []Event
	failAfter int
	closed    bool
}

func (s *session) Iterate() (ctf.Iterator, error) {
	if s.closed {
		return nil, errors.New("replay: session is closed")
	}
	return &iterator{events: s.events, failAfter: s.failAfter}, nil
}

func (s *session) Close() error {
	s.closed = true
	return nil
}

type iterator struct {
	events    []Event
	pos       int
	cb        ctf.EventCallback
	failAfter int
}

func (it *iterator) OnEvent(fn ctf.EventCallback) { it.cb = fn }

func (it *iterator) ReadCurrent() (ctf.CallbackStatus, bool) {
	if it.pos >= len(it.events) {
		return 0, false
	}
	return it.cb(rawEvent{ev: &it.events[it.pos]}), true
}

func (it *iterator) Advance() error {
	it.pos++
	if it.failAfter > 0 && it.pos >= it.failAfter {
		return fmt.Errorf("replay: injected advance failure at event %d", it.pos)
	}
	return nil
}

func (it *iterator) Close() error { return nil }
