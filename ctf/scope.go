package ctf

import "fmt"

// Scope identifies one of the six top-level namespaces a field may live in
// within a single event. The numeric order of the constants is the decode
// order and the ordering used in composite field keys.
type Scope uint8

const (
	// ScopeTracePacketHeader covers the per-packet trace header.
	ScopeTracePacketHeader Scope = iota
	// ScopeStreamPacketContext covers the per-stream packet context.
	ScopeStreamPacketContext
	// ScopeStreamEventHeader covers the per-stream event header.
	ScopeStreamEventHeader
	// ScopeStreamEventContext covers the per-stream event context.
	ScopeStreamEventContext
	// ScopeEventContext covers the per-event context.
	ScopeEventContext
	// ScopeEventFields covers the event payload.
	ScopeEventFields

	scopeCount = iota
)

var scopeOrder = [scopeCount]Scope{
	ScopeTracePacketHeader,
	ScopeStreamPacketContext,
	ScopeStreamEventHeader,
	ScopeStreamEventContext,
	ScopeEventContext,
	ScopeEventFields,
}

// Scopes returns the six scopes in decode order. The returned slice is a
// fresh copy on every call.
func Scopes() []Scope {
	order := scopeOrder
	return order[:]
}

// String returns the canonical name of the scope.
func (s Scope) String() string {
	switch s {
	case ScopeTracePacketHeader:
		return "trace_packet_header"
	case ScopeStreamPacketContext:
		return "stream_packet_context"
	case ScopeStreamEventHeader:
		return "stream_event_header"
	case ScopeStreamEventContext:
		return "stream_event_context"
	case ScopeEventContext:
		return "event_context"
	case ScopeEventFields:
		return "event_fields"
	default:
		return fmt.Sprintf("Scope(%d)", s)
	}
}

// ParseScope converts a scope name to a Scope.
func ParseScope(s string) (Scope, error) {
	for _, scope := range scopeOrder {
		if scope.String() == s {
			return scope, nil
		}
	}
	return 0, fmt.Errorf("invalid scope: %q (expected: trace_packet_header|stream_packet_context|stream_event_header|stream_event_context|event_context|event_fields)", s)
}
