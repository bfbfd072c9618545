package ctf

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind identifies the runtime shape of a Value.
type ValueKind uint8

const (
	// ValueEmpty is the designated "not set" value. It is distinct from a
	// field being absent from an event.
	ValueEmpty ValueKind = iota
	// ValueInteger holds an Integer.
	ValueInteger
	// ValueFloat holds a float64.
	ValueFloat
	// ValueEnumerator holds an Enumerator.
	ValueEnumerator
	// ValueString holds a string.
	ValueString
	// ValueStructure holds an ordered list of member values.
	ValueStructure
	// ValueVariant holds exactly one boxed inner value.
	ValueVariant
	// ValueCollection holds an ordered list of element values.
	ValueCollection
)

// String returns a human-readable name for the value kind.
func (k ValueKind) String() string {
	switch k {
	case ValueEmpty:
		return "empty"
	case ValueInteger:
		return "integer"
	case ValueFloat:
		return "float"
	case ValueEnumerator:
		return "enumerator"
	case ValueString:
		return "string"
	case ValueStructure:
		return "structure"
	case ValueVariant:
		return "variant"
	case ValueCollection:
		return "collection"
	default:
		return fmt.Sprintf("ValueKind(%d)", k)
	}
}

// Value is a decoded field value. It is a tagged union over the closed set of
// kinds a trace field can carry; the self-referential variant case is boxed
// behind a pointer. A Value owns its payload in full: nothing in it refers
// back to engine memory.
type Value struct {
	kind  ValueKind
	num   Integer
	fp    float64
	enum  Enumerator
	str   string
	elems []Value // ValueStructure, ValueCollection
	boxed *Value  // ValueVariant
}

// EmptyValue returns the designated empty value.
func EmptyValue() Value {
	return Value{kind: ValueEmpty}
}

// IntegerValue wraps an Integer.
func IntegerValue(i Integer) Value {
	return Value{kind: ValueInteger, num: i}
}

// FloatValue wraps a float64.
func FloatValue(f float64) Value {
	return Value{kind: ValueFloat, fp: f}
}

// EnumeratorValue wraps an Enumerator.
func EnumeratorValue(e Enumerator) Value {
	return Value{kind: ValueEnumerator, enum: e}
}

// StringValue wraps a string.
func StringValue(s string) Value {
	return Value{kind: ValueString, str: s}
}

// StructureValue wraps the ordered member values of a structure.
func StructureValue(members []Value) Value {
	return Value{kind: ValueStructure, elems: members}
}

// VariantValue boxes the single active inner value of a variant.
func VariantValue(inner Value) Value {
	return Value{kind: ValueVariant, boxed: &inner}
}

// CollectionValue wraps the ordered elements of an array or sequence.
func CollectionValue(elems []Value) Value {
	return Value{kind: ValueCollection, elems: elems}
}

// Kind returns the runtime kind of the value.
func (v Value) Kind() ValueKind { return v.kind }

// IsEmpty reports whether the value is the designated empty value.
func (v Value) IsEmpty() bool { return v.kind == ValueEmpty }

func (v Value) mismatch(want ValueKind) error {
	return &TypeMismatchError{Want: want.String(), Got: v.kind.String()}
}

// AsInteger extracts the contained Integer.
func (v Value) AsInteger() (Integer, error) {
	if v.kind != ValueInteger {
		return Integer{}, v.mismatch(ValueInteger)
	}
	return v.num, nil
}

// AsFloat64 extracts the contained floating-point value.
func (v Value) AsFloat64() (float64, error) {
	if v.kind != ValueFloat {
		return 0, v.mismatch(ValueFloat)
	}
	return v.fp, nil
}

// AsEnumerator extracts the contained Enumerator.
func (v Value) AsEnumerator() (Enumerator, error) {
	if v.kind != ValueEnumerator {
		return Enumerator{}, v.mismatch(ValueEnumerator)
	}
	return v.enum, nil
}

// AsString extracts the contained string.
func (v Value) AsString() (string, error) {
	if v.kind != ValueString {
		return "", v.mismatch(ValueString)
	}
	return v.str, nil
}

// Elements extracts the ordered member or element values of a structure or
// collection.
func (v Value) Elements() ([]Value, error) {
	switch v.kind {
	case ValueStructure, ValueCollection:
		return v.elems, nil
	default:
		return nil, v.mismatch(ValueCollection)
	}
}

// Unwrap extracts the boxed inner value of a variant.
func (v Value) Unwrap() (Value, error) {
	if v.kind != ValueVariant {
		return Value{}, v.mismatch(ValueVariant)
	}
	return *v.boxed, nil
}

// String returns a human-readable representation of the value.
func (v Value) String() string {
	switch v.kind {
	case ValueEmpty:
		return ""
	case ValueInteger:
		return v.num.String()
	case ValueFloat:
		return strconv.FormatFloat(v.fp, 'g', -1, 64)
	case ValueEnumerator:
		return v.enum.String()
	case ValueString:
		return v.str
	case ValueStructure, ValueCollection:
		var sb strings.Builder
		for _, e := range v.elems {
			sb.WriteString(e.String())
			sb.WriteString(" ")
		}
		return sb.String()
	case ValueVariant:
		return v.boxed.String()
	default:
		return fmt.Sprintf("<unknown:%d>", v.kind)
	}
}

type intSign uint8

const (
	signNone intSign = iota
	signSigned
	signUnsigned
)

// Integer is a decoded integer field value. The zero Integer is empty: it has
// no signedness and rejects numeric extraction.
type Integer struct {
	sign  intSign
	width uint8  // width in bits
	base  uint64 // display base, formatting only
	i     int64
	u     uint64
}

// NewSignedInteger builds a signed Integer with the given width and base.
func NewSignedInteger(i int64, width uint8, base uint64) Integer {
	return Integer{sign: signSigned, width: width, base: base, i: i}
}

// NewUnsignedInteger builds an unsigned Integer with the given width and base.
func NewUnsignedInteger(u uint64, width uint8, base uint64) Integer {
	return Integer{sign: signUnsigned, width: width, base: base, u: u}
}

// Width returns the width of the integer in bits.
func (n Integer) Width() uint8 { return n.width }

// Base returns the display base of the integer.
func (n Integer) Base() uint64 { return n.base }

// IsSigned reports whether the contained value is signed.
func (n Integer) IsSigned() bool { return n.sign == signSigned }

// IsEmpty reports whether the integer carries no value.
func (n Integer) IsEmpty() bool { return n.sign == signNone }

// Int64 extracts the signed payload. It fails on an empty or unsigned
// Integer.
func (n Integer) Int64() (int64, error) {
	if n.sign != signSigned {
		return 0, &TypeMismatchError{Want: "signed integer", Got: n.signString()}
	}
	return n.i, nil
}

// Uint64 extracts the unsigned payload. It fails on an empty or signed
// Integer.
func (n Integer) Uint64() (uint64, error) {
	if n.sign != signUnsigned {
		return 0, &TypeMismatchError{Want: "unsigned integer", Got: n.signString()}
	}
	return n.u, nil
}

func (n Integer) signString() string {
	switch n.sign {
	case signSigned:
		return "signed integer"
	case signUnsigned:
		return "unsigned integer"
	default:
		return "empty integer"
	}
}

// String renders the integer with its width, base and payload in the base
// the trace declared for display.
func (n Integer) String() string {
	if n.IsEmpty() {
		return "(empty integer)"
	}
	base := int(n.base)
	if base < 2 || base > 36 {
		base = 10
	}
	var payload string
	if n.sign == signSigned {
		payload = strconv.FormatInt(n.i, base)
	} else {
		payload = strconv.FormatUint(n.u, base)
	}
	switch base {
	case 16:
		payload = "0x" + payload
	case 8:
		payload = "0" + payload
	case 2:
		payload = "0b" + payload
	}
	return fmt.Sprintf("(w: %d b: %d v: %s)", n.width, n.base, payload)
}

// Enumerator is a decoded enumeration field value: the human-readable label
// together with the underlying integer representation. The decoder always
// populates both legs.
type Enumerator struct {
	Label   string
	Integer Integer
}

// String renders the label followed by the integer representation.
func (e Enumerator) String() string {
	return e.Label + " " + e.Integer.String()
}
