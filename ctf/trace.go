package ctf

import "fmt"

// Verdict is the caller's per-event instruction to the enumeration driver.
type Verdict uint8

const (
	// VerdictOK: processing of the event went fine, keep going.
	VerdictOK Verdict = iota
	// VerdictStop: processing of the event went fine, stop enumeration.
	VerdictStop
	// VerdictStopWithError: something went wrong while processing the
	// event, stop.
	VerdictStopWithError
	// VerdictContinueWithError: something went wrong, keep going though.
	VerdictContinueWithError
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictOK:
		return "ok"
	case VerdictStop:
		return "stop"
	case VerdictStopWithError:
		return "stop_with_error"
	case VerdictContinueWithError:
		return "continue_with_error"
	default:
		return fmt.Sprintf("Verdict(%d)", v)
	}
}

// callbackStatus translates the caller's verdict into the engine's expected
// callback return code.
func (v Verdict) callbackStatus() CallbackStatus {
	switch v {
	case VerdictOK:
		return StatusOK
	case VerdictStop:
		return StatusOKStop
	case VerdictStopWithError:
		return StatusErrorStop
	case VerdictContinueWithError:
		return StatusErrorContinue
	}
	panic(fmt.Sprintf("ctf: unknown verdict %d", v))
}

// EventEnumerator is invoked for every decoded event of an enumeration pass.
// Its verdict decides whether the pass keeps going. The event argument is
// only guaranteed to stay valid until the enumerator returns.
type EventEnumerator func(*Event) Verdict

// Trace is one opened recording. It exclusively owns the underlying engine
// session; the association with the on-disk directory is established at Open
// and never changes. A Trace must not be copied and must be confined to a
// single goroutine while an enumeration pass is running. Independent traces
// may be used from different goroutines.
type Trace struct {
	dir     string
	session Session
}

// Open resolves the trace directory below root and opens an engine session
// over it.
func Open(root string, eng Engine) (*Trace, error) {
	dir, err := FindTraceDir(root)
	if err != nil {
		return nil, err
	}
	session, err := eng.OpenSession(dir)
	if err != nil {
		return nil, fmt.Errorf("opening trace %q: %w", dir, err)
	}
	return &Trace{dir: dir, session: session}, nil
}

// Dir returns the resolved trace directory.
func (t *Trace) Dir() string { return t.dir }

// Close releases the engine session. The trace must not be used afterwards.
func (t *Trace) Close() error {
	return t.session.Close()
}

// ForEachEvent decodes every event of the trace in order and hands it to fn.
// The call is synchronous and blocking: it returns after the trace is
// exhausted, fn asked to stop, a field failed to decode, or the engine failed
// to advance. A decode failure aborts the pass and leaves the trace at an
// indeterminate position; reopen before enumerating again.
func (t *Trace) ForEachEvent(fn EventEnumerator) error {
	it, err := t.session.Iterate()
	if err != nil {
		return fmt.Errorf("iterating trace %q: %w", t.dir, err)
	}
	drv := &enumeration{it: it, fn: fn}
	return drv.run()
}

// passState tracks the lifecycle of one enumeration pass.
type passState uint8

const (
	passCreated passState = iota
	passIterating
	passStopped
	passExhausted
	passFailed
)

// enumeration drives one pass over the engine iterator: it registers the
// decoding callback, pumps read/advance until a terminal state, and maps the
// caller's verdict onto the engine's callback status.
type enumeration struct {
	it        Iterator
	fn        EventEnumerator
	state     passState
	decodeErr error // first decode failure, aborts the pass
}

func (d *enumeration) run() error {
	defer d.it.Close()

	d.it.OnEvent(func(raw RawEvent) CallbackStatus {
		ev, err := decodeEvent(raw)
		if err != nil {
			d.decodeErr = err
			return StatusErrorStop
		}
		return d.fn(ev).callbackStatus()
	})

	d.state = passIterating
	for {
		status, ok := d.it.ReadCurrent()
		if !ok {
			d.state = passExhausted
			break
		}
		if status.Halts() {
			// A halt forced by a decode failure is a failed pass, not a
			// caller-requested stop.
			if d.decodeErr != nil {
				d.state = passFailed
			} else {
				d.state = passStopped
			}
			break
		}
		if err := d.it.Advance(); err != nil {
			// Advancing failed mid-trace. Unlike exhaustion this is
			// surfaced to the caller.
			d.state = passFailed
			return fmt.Errorf("advancing trace iterator: %w", err)
		}
	}
	return d.decodeErr
}
