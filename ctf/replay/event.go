package replay

import (
	"fmt"

	"ctfkit/ctf"
)

// Field is one synthetic field definition. The decoder reads it through the
// engine's raw-field interface; Fail injects an extraction error into the
// named getter for failure-path tests.
type Field struct {
	Name string
	Kind ctf.FieldKind

	// Integer declaration.
	Signed bool
	Width  uint64
	Base   uint64

	// Payloads, one populated per kind.
	Int   int64
	Uint  uint64
	Float float64
	Str   string
	Label string // enumeration label

	// Fields carries structure members, collection elements, and the
	// single inner definition of an enumeration's integer leg or a
	// variant's active field.
	Fields []Field

	// Fail names the getter that should report an extraction error:
	// one of layout, int64, uint64, float64, str, enum_label,
	// enum_integer, members, active, elements.
	Fail string
}

// Uint builds an unsigned integer field.
func Uint(name string, v uint64, width, base uint64) Field {
	return Field{Name: name, Kind: ctf.KindInteger, Width: width, Base: base, Uint: v}
}

// Int builds a signed integer field.
func Int(name string, v int64, width, base uint64) Field {
	return Field{Name: name, Kind: ctf.KindInteger, Signed: true, Width: width, Base: base, Int: v}
}

// Float builds a floating-point field.
func Float(name string, v float64) Field {
	return Field{Name: name, Kind: ctf.KindFloatingPoint, Float: v}
}

// String builds a string field.
func String(name, s string) Field {
	return Field{Name: name, Kind: ctf.KindString, Str: s}
}

// Enum builds an enumeration field with the given label and integer leg.
func Enum(name, label string, integer Field) Field {
	return Field{Name: name, Kind: ctf.KindEnumeration, Label: label, Fields: []Field{integer}}
}

// Structure builds a structure field with the given members in order.
func Structure(name string, members ...Field) Field {
	return Field{Name: name, Kind: ctf.KindStructure, Fields: members}
}

// Variant builds a tagged variant field with the given active inner field.
func Variant(name string, inner Field) Field {
	return Field{Name: name, Kind: ctf.KindVariant, Fields: []Field{inner}}
}

// UntaggedVariant builds an untagged variant field.
func UntaggedVariant(name string, inner Field) Field {
	return Field{Name: name, Kind: ctf.KindUntaggedVariant, Fields: []Field{inner}}
}

// Array builds a fixed-length collection field.
func Array(name string, elems ...Field) Field {
	return Field{Name: name, Kind: ctf.KindArray, Fields: elems}
}

// Sequence builds a variable-length collection field.
func Sequence(name string, elems ...Field) Field {
	return Field{Name: name, Kind: ctf.KindSequence, Fields: elems}
}

// Event is one synthetic trace event with its per-scope field lists.
type Event struct {
	Name        string
	Cycles      uint64
	TimestampNS int64
	Scopes      map[ctf.Scope][]Field
}

// rawEvent adapts an Event to the engine's raw-event interface.
type rawEvent struct {
	ev *Event
}

func (r rawEvent) Name() string       { return r.ev.Name }
func (r rawEvent) Cycles() uint64     { return r.ev.Cycles }
func (r rawEvent) TimestampNS() int64 { return r.ev.TimestampNS }

func (r rawEvent) ScopeFields(scope ctf.Scope) ([]ctf.RawField, bool) {
	fields, ok := r.ev.Scopes[scope]
	if !ok {
		return nil, false
	}
	return wrapFields(fields), true
}

func wrapFields(fields []Field) []ctf.RawField {
	raw := make([]ctf.RawField, len(fields))
	for i := range fields {
		raw[i] = rawField{f: &fields[i]}
	}
	return raw
}

// rawField adapts a Field to the engine's raw-field interface.
type rawField struct {
	f *Field
}

func (r rawField) check(op string) error {
	if r.f.Fail == op {
		return fmt.Errorf("replay: injected %s failure for field %q", op, r.f.Name)
	}
	return nil
}

func (r rawField) Name() string        { return r.f.Name }
func (r rawField) Kind() ctf.FieldKind { return r.f.Kind }

func (r rawField) Layout() (ctf.IntegerLayout, error) {
	if err := r.check("layout"); err != nil {
		return ctf.IntegerLayout{}, err
	}
	return ctf.IntegerLayout{Signed: r.f.Signed, Width: r.f.Width, Base: r.f.Base}, nil
}

func (r rawField) Int64() (int64, error)     { return r.f.Int, r.check("int64") }
func (r rawField) Uint64() (uint64, error)   { return r.f.Uint, r.check("uint64") }
func (r rawField) Float64() (float64, error) { return r.f.Float, r.check("float64") }
func (r rawField) Str() (string, error)      { return r.f.Str, r.check("str") }
func (r rawField) EnumLabel() (string, error) {
	return r.f.Label, r.check("enum_label")
}

func (r rawField) EnumInteger() (ctf.RawField, error) {
	if err := r.check("enum_integer"); err != nil {
		return nil, err
	}
	if len(r.f.Fields) == 0 {
		return nil, fmt.Errorf("replay: enumeration %q has no integer leg", r.f.Name)
	}
	return rawField{f: &r.f.Fields[0]}, nil
}

func (r rawField) Members() ([]ctf.RawField, error) {
	if err := r.check("members"); err != nil {
		return nil, err
	}
	return wrapFields(r.f.Fields), nil
}

func (r rawField) Active() (ctf.RawField, error) {
	if err := r.check("active"); err != nil {
		return nil, err
	}
	if len(r.f.Fields) == 0 {
		return nil, fmt.Errorf("replay: variant %q has no active field", r.f.Name)
	}
	return rawField{f: &r.f.Fields[0]}, nil
}

func (r rawField) Elements() ([]ctf.RawField, error) {
	if err := r.check("elements"); err != nil {
		return nil, err
	}
	return wrapFields(r.f.Fields), nil
}
