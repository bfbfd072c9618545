package ctf

// FieldSpec describes one field of an event as a (scope, name, kind) triple
// and offers typed queries against assembled events, so callers do not repeat
// kind-checking logic. A FieldSpec is a pure value object; construct it once
// and reuse it across events.
type FieldSpec[T any] struct {
	scope   Scope
	name    string
	kind    FieldKind
	extract func(Value) (T, error)
}

// IntegerSpec describes an integer field.
func IntegerSpec(scope Scope, name string) FieldSpec[Integer] {
	return FieldSpec[Integer]{scope: scope, name: name, kind: KindInteger, extract: Value.AsInteger}
}

// FloatSpec describes a floating-point field.
func FloatSpec(scope Scope, name string) FieldSpec[float64] {
	return FieldSpec[float64]{scope: scope, name: name, kind: KindFloatingPoint, extract: Value.AsFloat64}
}

// EnumSpec describes an enumeration field.
func EnumSpec(scope Scope, name string) FieldSpec[Enumerator] {
	return FieldSpec[Enumerator]{scope: scope, name: name, kind: KindEnumeration, extract: Value.AsEnumerator}
}

// StringSpec describes a string field.
func StringSpec(scope Scope, name string) FieldSpec[string] {
	return FieldSpec[string]{scope: scope, name: name, kind: KindString, extract: Value.AsString}
}

// StructureSpec describes a structure field; it projects the ordered member
// values.
func StructureSpec(scope Scope, name string) FieldSpec[[]Value] {
	return FieldSpec[[]Value]{scope: scope, name: name, kind: KindStructure, extract: Value.Elements}
}

// VariantSpec describes a tagged variant field; it projects the boxed inner
// value.
func VariantSpec(scope Scope, name string) FieldSpec[Value] {
	return FieldSpec[Value]{scope: scope, name: name, kind: KindVariant, extract: Value.Unwrap}
}

// UntaggedVariantSpec describes an untagged variant field.
func UntaggedVariantSpec(scope Scope, name string) FieldSpec[Value] {
	return FieldSpec[Value]{scope: scope, name: name, kind: KindUntaggedVariant, extract: Value.Unwrap}
}

// ArraySpec describes an array field; it projects the ordered elements.
func ArraySpec(scope Scope, name string) FieldSpec[[]Value] {
	return FieldSpec[[]Value]{scope: scope, name: name, kind: KindArray, extract: Value.Elements}
}

// SequenceSpec describes a sequence field; it projects the ordered elements.
func SequenceSpec(scope Scope, name string) FieldSpec[[]Value] {
	return FieldSpec[[]Value]{scope: scope, name: name, kind: KindSequence, extract: Value.Elements}
}

// Scope returns the scope this spec is bound to.
func (s FieldSpec[T]) Scope() Scope { return s.scope }

// Name returns the field name this spec is bound to.
func (s FieldSpec[T]) Name() string { return s.name }

// Kind returns the field kind this spec expects.
func (s FieldSpec[T]) Kind() FieldKind { return s.kind }

// AvailableIn reports whether the event carries this field with the expected
// kind. It never fails.
func (s FieldSpec[T]) AvailableIn(ev *Event) bool {
	f, ok := ev.Field(s.scope, s.name)
	return ok && f.Is(s.kind)
}

// Interpret extracts the typed value from the event. ok is false exactly when
// AvailableIn is false.
func (s FieldSpec[T]) Interpret(ev *Event) (T, bool) {
	if !s.AvailableIn(ev) {
		var zero T
		return zero, false
	}
	return s.MustInterpret(ev), true
}

// MustInterpret extracts the typed value from the event. Calling it for an
// event that does not carry the field with the expected kind is a programming
// error: it panics with a *TypeMismatchError.
func (s FieldSpec[T]) MustInterpret(ev *Event) T {
	f, ok := ev.Field(s.scope, s.name)
	if !ok {
		panic(&TypeMismatchError{Want: s.kind.String(), Got: "missing field " + s.name})
	}
	v, err := s.extract(f.Value())
	if err != nil {
		panic(err)
	}
	return v
}
