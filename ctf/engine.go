package ctf

import "fmt"

// This file is the boundary to the trace-reading engine. The decoder only
// ever sees these interfaces; concrete engines (the replay engine, a native
// babeltrace binding) live behind them. All getters report the engine's
// extraction errors verbatim; the decoder never retries.

// Engine opens sessions over on-disk trace directories.
type Engine interface {
	// OpenSession opens the trace stored in dir. The directory has already
	// been resolved by the trace locator.
	OpenSession(dir string) (Session, error)
}

// Session is one opened engine context over a trace. It is mutable,
// unsynchronized state: confine a session and its iterators to one goroutine.
type Session interface {
	// Iterate positions a fresh iterator at the first event of the trace.
	Iterate() (Iterator, error)
	// Close releases the engine context.
	Close() error
}

// CallbackStatus is the return code an event callback hands back to the
// engine, instructing it whether to keep delivering events.
type CallbackStatus uint8

const (
	// StatusOK: processing went fine, keep delivering.
	StatusOK CallbackStatus = iota
	// StatusOKStop: processing went fine, stop delivering.
	StatusOKStop
	// StatusErrorStop: the callback saw an error, stop delivering.
	StatusErrorStop
	// StatusErrorContinue: the callback saw an error, keep delivering anyway.
	StatusErrorContinue
)

// String returns a human-readable name for the status.
func (s CallbackStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusOKStop:
		return "ok_stop"
	case StatusErrorStop:
		return "error_stop"
	case StatusErrorContinue:
		return "error_continue"
	default:
		return fmt.Sprintf("CallbackStatus(%d)", s)
	}
}

// Halts reports whether the status asks the engine to stop delivering.
func (s CallbackStatus) Halts() bool {
	return s == StatusOKStop || s == StatusErrorStop
}

// EventCallback is invoked by the engine for every raw event it reads.
type EventCallback func(RawEvent) CallbackStatus

// Iterator walks the events of a session in trace order.
type Iterator interface {
	// OnEvent registers the callback dispatched by ReadCurrent. It is
	// registered once per enumeration pass.
	OnEvent(fn EventCallback)
	// ReadCurrent delivers the event under the cursor to the registered
	// callback and relays the callback's status. ok is false once the
	// trace is exhausted; the callback is not invoked in that case.
	ReadCurrent() (status CallbackStatus, ok bool)
	// Advance moves the cursor to the next event. A non-nil error means
	// the engine failed to advance mid-trace; exhaustion is reported by
	// ReadCurrent, not here.
	Advance() error
	// Close releases the iterator.
	Close() error
}

// RawEvent is one event notification as delivered by the engine. It is only
// valid during the callback that received it.
type RawEvent interface {
	// Name returns the event name. May be empty.
	Name() string
	// Cycles returns the raw cycle counter recorded with the event.
	Cycles() uint64
	// TimestampNS returns the event timestamp in nanoseconds since the
	// epoch.
	TimestampNS() int64
	// ScopeFields returns the top-level field handles of the given scope
	// in declaration order. ok is false when the event has no such scope;
	// that is not an error, the scope simply contributes no fields.
	ScopeFields(scope Scope) (fields []RawField, ok bool)
}

// IntegerLayout describes an integer declaration: signedness, width in bits
// and display base, exactly as the engine reports them.
type IntegerLayout struct {
	Signed bool
	Width  uint64
	Base   uint64
}

// RawField is one field definition/declaration handle pair. Getters for a
// payload the declared kind does not carry fail with an engine error. Payload
// buffers are only guaranteed to live for the duration of the call; the
// decoder copies them into owned values immediately.
type RawField interface {
	// Name returns the declared field name.
	Name() string
	// Kind returns the declared field kind.
	Kind() FieldKind

	// Layout returns the integer declaration of an integer field or of
	// the integer leg of an enumeration.
	Layout() (IntegerLayout, error)
	// Int64 reads the signed integer payload.
	Int64() (int64, error)
	// Uint64 reads the unsigned integer payload.
	Uint64() (uint64, error)
	// Float64 reads the floating-point payload.
	Float64() (float64, error)
	// Str reads the string payload.
	Str() (string, error)
	// EnumLabel reads the enumeration's string label.
	EnumLabel() (string, error)
	// EnumInteger resolves the enumeration's underlying integer
	// definition.
	EnumInteger() (RawField, error)
	// Members returns a structure's member definitions in declaration
	// order.
	Members() ([]RawField, error)
	// Active resolves the currently active inner definition of a variant.
	Active() (RawField, error)
	// Elements returns an array's or sequence's element definitions in
	// order.
	Elements() ([]RawField, error)
}
