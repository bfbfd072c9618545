package ctf

import "fmt"

// FieldKind is the declared type of a field as reported by the engine.
type FieldKind uint8

const (
	// KindUnknown marks a declared type the engine does not recognize.
	KindUnknown FieldKind = iota
	// KindInteger is a signed or unsigned integer field.
	KindInteger
	// KindFloatingPoint is a floating-point field.
	KindFloatingPoint
	// KindEnumeration is an enumeration field.
	KindEnumeration
	// KindString is a string field.
	KindString
	// KindStructure is a structure of named member fields.
	KindStructure
	// KindUntaggedVariant is a variant without an explicit tag field.
	KindUntaggedVariant
	// KindVariant is a tagged variant field.
	KindVariant
	// KindArray is a fixed-length collection field.
	KindArray
	// KindSequence is a variable-length collection field.
	KindSequence
)

// String returns a human-readable name for the field kind.
func (k FieldKind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindInteger:
		return "integer"
	case KindFloatingPoint:
		return "floating_point"
	case KindEnumeration:
		return "enumeration"
	case KindString:
		return "string"
	case KindStructure:
		return "structure"
	case KindUntaggedVariant:
		return "untagged_variant"
	case KindVariant:
		return "variant"
	case KindArray:
		return "array"
	case KindSequence:
		return "sequence"
	default:
		return fmt.Sprintf("FieldKind(%d)", k)
	}
}

// valueKind returns the Value shape a field of this kind must carry.
func (k FieldKind) valueKind() ValueKind {
	switch k {
	case KindInteger:
		return ValueInteger
	case KindFloatingPoint:
		return ValueFloat
	case KindEnumeration:
		return ValueEnumerator
	case KindString:
		return ValueString
	case KindStructure:
		return ValueStructure
	case KindUntaggedVariant, KindVariant:
		return ValueVariant
	case KindArray, KindSequence:
		return ValueCollection
	default:
		return ValueEmpty
	}
}

// Field is one named, typed value attached to an event within a scope.
type Field struct {
	name  string
	kind  FieldKind
	value Value
}

// NewField builds a field, enforcing that the value's runtime shape matches
// the declared kind.
func NewField(name string, kind FieldKind, value Value) (Field, error) {
	if want := kind.valueKind(); value.Kind() != want {
		return Field{}, fmt.Errorf("field %q: %w", name,
			&TypeMismatchError{Want: want.String(), Got: value.Kind().String()})
	}
	return Field{name: name, kind: kind, value: value}, nil
}

// Name returns the name of the field.
func (f Field) Name() string { return f.name }

// Kind returns the declared kind of the field.
func (f Field) Kind() FieldKind { return f.kind }

// Value returns the decoded value of the field.
func (f Field) Value() Value { return f.value }

// Is reports whether the field has the given declared kind.
func (f Field) Is(kind FieldKind) bool { return f.kind == kind }

// String renders the field as [name kind value].
func (f Field) String() string {
	return fmt.Sprintf("[%s %s %s]", f.name, f.kind, f.value)
}

// FieldKey addresses one field of an event: scope plus field name. Scope is
// part of the key, so equally named fields in different scopes never collide.
type FieldKey struct {
	Scope Scope
	Name  string
}
