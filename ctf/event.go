package ctf

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Event is one decoded trace event. It is assembled fresh for every raw
// notification during an enumeration pass and owns all of its data; it stays
// valid after the engine iterator advances or the trace is closed.
//
// Events are not mutated after assembly. A caller that wants to retain event
// data past its enumerator invocation must copy it out before returning.
type Event struct {
	// Name of the event. May be empty.
	Name string
	// Cycles is the raw hardware cycle counter as recorded.
	Cycles uint64
	// Timestamp is the event time in nanoseconds since the epoch.
	Timestamp time.Duration
	// Fields maps (scope, name) to the decoded field.
	Fields map[FieldKey]Field
}

// Field looks up the field with the given scope and name.
func (e *Event) Field(scope Scope, name string) (Field, bool) {
	f, ok := e.Fields[FieldKey{Scope: scope, Name: name}]
	return f, ok
}

// String renders the event with its fields in scope order, names sorted
// within a scope.
func (e *Event) String() string {
	keys := make([]FieldKey, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Scope != keys[j].Scope {
			return keys[i].Scope < keys[j].Scope
		}
		return keys[i].Name < keys[j].Name
	})

	var sb strings.Builder
	sb.WriteString("{\n")
	fmt.Fprintf(&sb, "  %s\n", e.Name)
	fmt.Fprintf(&sb, "  %d [cycles]\n", e.Cycles)
	fmt.Fprintf(&sb, "  %d [ns]\n", e.Timestamp.Nanoseconds())
	for _, k := range keys {
		fmt.Fprintf(&sb, "    %s -> %s\n", k.Scope, e.Fields[k])
	}
	sb.WriteString("}")
	return sb.String()
}
