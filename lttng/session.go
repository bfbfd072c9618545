package lttng

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// lttngExecutable is the control executable invoked for every operation.
const lttngExecutable = "lttng"

// runner executes one control invocation. It is injected so tests can run
// without the lttng executable installed.
type runner func(args ...string) error

// runControl is the real runner. stderr is captured and folded into the
// returned error.
func runControl(args ...string) error {
	cmd := exec.Command(lttngExecutable, args...)
	cmd.Stdout = os.Stdout
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return err
		}
		return fmt.Errorf("%s: %w", msg, err)
	}
	return nil
}

// Tracer is the entry point to the recording control plane: a factory for
// sessions within one tracing domain.
type Tracer struct {
	domain Domain
}

// NewTracer returns a tracer for the given domain.
func NewTracer(domain Domain) *Tracer {
	return &Tracer{domain: domain}
}

// CreateSession creates a new remote recording session with the given name,
// recording into the given consumer.
func (t *Tracer) CreateSession(name string, consumer Consumer) (*Session, error) {
	return newSession(t.domain, name, consumer, runControl)
}

// Session is one remote recording session. All methods are synchronous
// control invocations.
type Session struct {
	domain   Domain
	name     string
	consumer Consumer
	run      runner
}

// NewSession creates a remote recording session, invoking
// `lttng create <name> --set-url <url>`.
func NewSession(domain Domain, name string, consumer Consumer) (*Session, error) {
	return newSession(domain, name, consumer, runControl)
}

func newSession(domain Domain, name string, consumer Consumer, run runner) (*Session, error) {
	s := &Session{domain: domain, name: name, consumer: consumer, run: run}
	if err := run("create", name, "--set-url", consumer.ToURL()); err != nil {
		return nil, &ControlError{Op: "create", Err: err}
	}
	return s, nil
}

// Name returns the name of the session.
func (s *Session) Name() string { return s.name }

// AddContext enables the given context for all enabled events in this
// session.
func (s *Session) AddContext(ctx Context) error {
	if err := s.run("add-context", "-t", ctx.String(), "--"+s.domain.String(), "-s", s.name); err != nil {
		return &ControlError{Op: "add-context", Err: err}
	}
	return nil
}

// EnableEvent enables the events matching the given name pattern in the
// session's domain. The pattern is passed through verbatim; glob-style
// provider wildcards are understood by the daemon.
func (s *Session) EnableEvent(pattern string) error {
	if err := s.run("enable-event", pattern, "--"+s.domain.String(), "-s", s.name); err != nil {
		return &ControlError{Op: "enable-event", Err: err}
	}
	return nil
}

// Start starts the recording.
func (s *Session) Start() error {
	if err := s.run("start", s.name); err != nil {
		return &ControlError{Op: "start", Err: err}
	}
	return nil
}

// Stop stops the recording.
func (s *Session) Stop() error {
	if err := s.run("stop", s.name); err != nil {
		return &ControlError{Op: "stop", Err: err}
	}
	return nil
}

// Destroy tears down the remote session. The session must not be used
// afterwards.
func (s *Session) Destroy() error {
	if err := s.run("destroy", s.name); err != nil {
		return &ControlError{Op: "destroy", Err: err}
	}
	return nil
}
