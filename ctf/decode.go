package ctf

import (
	"time"

	"fortio.org/safecast"
)

// The recursive field decoder. It converts one engine field handle into an
// owned Value, dispatching on the declared kind. Recursion depth is bounded
// by the schema's nesting depth. Errors are never recovered per-field: the
// first extraction failure aborts the whole enumeration pass.

func decodeInteger(raw RawField) (Integer, error) {
	layout, err := raw.Layout()
	if err != nil {
		return Integer{}, &DecodeError{Field: raw.Name(), Kind: KindInteger, Err: err}
	}
	width, err := safecast.Conv[uint8](layout.Width)
	if err != nil {
		return Integer{}, &DecodeError{Field: raw.Name(), Kind: KindInteger, Err: err}
	}
	if layout.Signed {
		i, err := raw.Int64()
		if err != nil {
			return Integer{}, &DecodeError{Field: raw.Name(), Kind: KindInteger, Err: err}
		}
		return NewSignedInteger(i, width, layout.Base), nil
	}
	u, err := raw.Uint64()
	if err != nil {
		return Integer{}, &DecodeError{Field: raw.Name(), Kind: KindInteger, Err: err}
	}
	return NewUnsignedInteger(u, width, layout.Base), nil
}

func decodeFloat(raw RawField) (float64, error) {
	f, err := raw.Float64()
	if err != nil {
		return 0, &DecodeError{Field: raw.Name(), Kind: KindFloatingPoint, Err: err}
	}
	return f, nil
}

func decodeEnumerator(raw RawField) (Enumerator, error) {
	label, err := raw.EnumLabel()
	if err != nil {
		return Enumerator{}, &DecodeError{Field: raw.Name(), Kind: KindEnumeration, Err: err}
	}
	inner, err := raw.EnumInteger()
	if err != nil {
		return Enumerator{}, &DecodeError{Field: raw.Name(), Kind: KindEnumeration, Err: err}
	}
	num, err := decodeInteger(inner)
	if err != nil {
		return Enumerator{}, err
	}
	return Enumerator{Label: label, Integer: num}, nil
}

func decodeString(raw RawField) (string, error) {
	// Str copies out of the engine buffer; the result is owned.
	s, err := raw.Str()
	if err != nil {
		return "", &DecodeError{Field: raw.Name(), Kind: KindString, Err: err}
	}
	return s, nil
}

func decodeStructure(raw RawField) (Value, error) {
	members, err := raw.Members()
	if err != nil {
		return Value{}, &DecodeError{Field: raw.Name(), Kind: KindStructure, Err: err}
	}
	values := make([]Value, 0, len(members))
	for _, m := range members {
		v, err := decodeValue(m)
		if err != nil {
			return Value{}, err
		}
		values = append(values, v)
	}
	return StructureValue(values), nil
}

func decodeVariant(raw RawField) (Value, error) {
	inner, err := raw.Active()
	if err != nil {
		return Value{}, &DecodeError{Field: raw.Name(), Kind: raw.Kind(), Err: err}
	}
	v, err := decodeValue(inner)
	if err != nil {
		return Value{}, err
	}
	return VariantValue(v), nil
}

func decodeCollection(raw RawField) (Value, error) {
	elems, err := raw.Elements()
	if err != nil {
		return Value{}, &DecodeError{Field: raw.Name(), Kind: raw.Kind(), Err: err}
	}
	values := make([]Value, 0, len(elems))
	for _, e := range elems {
		v, err := decodeValue(e)
		if err != nil {
			return Value{}, err
		}
		values = append(values, v)
	}
	return CollectionValue(values), nil
}

// decodeValue materializes the full value tree for one field definition.
func decodeValue(raw RawField) (Value, error) {
	switch raw.Kind() {
	case KindInteger:
		n, err := decodeInteger(raw)
		if err != nil {
			return Value{}, err
		}
		return IntegerValue(n), nil
	case KindFloatingPoint:
		f, err := decodeFloat(raw)
		if err != nil {
			return Value{}, err
		}
		return FloatValue(f), nil
	case KindEnumeration:
		e, err := decodeEnumerator(raw)
		if err != nil {
			return Value{}, err
		}
		return EnumeratorValue(e), nil
	case KindString:
		s, err := decodeString(raw)
		if err != nil {
			return Value{}, err
		}
		return StringValue(s), nil
	case KindStructure:
		return decodeStructure(raw)
	case KindUntaggedVariant, KindVariant:
		return decodeVariant(raw)
	case KindArray, KindSequence:
		return decodeCollection(raw)
	default:
		// Unknown declared kinds are tolerated, never fatal.
		return EmptyValue(), nil
	}
}

func decodeField(raw RawField) (Field, error) {
	v, err := decodeValue(raw)
	if err != nil {
		return Field{}, err
	}
	return NewField(raw.Name(), raw.Kind(), v)
}

// decodeEvent assembles one Event from a raw engine notification: name,
// both timestamp representations, and every field of every scope.
func decodeEvent(raw RawEvent) (*Event, error) {
	ev := &Event{
		Name:      raw.Name(),
		Cycles:    raw.Cycles(),
		Timestamp: time.Duration(raw.TimestampNS()),
		Fields:    make(map[FieldKey]Field),
	}
	for _, scope := range Scopes() {
		fields, ok := raw.ScopeFields(scope)
		if !ok {
			// The scope is legitimately empty for this event.
			continue
		}
		for _, rf := range fields {
			f, err := decodeField(rf)
			if err != nil {
				return nil, err
			}
			// Within one scope a duplicate name is not expected;
			// if it happens the last field wins.
			ev.Fields[FieldKey{Scope: scope, Name: f.Name()}] = f
		}
	}
	return ev, nil
}
