package ctf

import (
	"errors"
	"testing"
)

func TestZeroIntegerIsEmpty(t *testing.T) {
	var n Integer
	if !n.IsEmpty() {
		t.Fatalf("zero Integer must be empty")
	}
	if n.IsSigned() {
		t.Fatalf("empty Integer must not report signed")
	}
	if _, err := n.Int64(); err == nil {
		t.Fatalf("Int64 on empty Integer must fail")
	}
	if _, err := n.Uint64(); err == nil {
		t.Fatalf("Uint64 on empty Integer must fail")
	}
}

func TestIntegerWrongSignednessExtraction(t *testing.T) {
	s := NewSignedInteger(-5, 32, 10)
	if _, err := s.Uint64(); err == nil {
		t.Fatalf("Uint64 on signed Integer must fail")
	}
	var mismatch *TypeMismatchError
	_, err := s.Uint64()
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
	u := NewUnsignedInteger(5, 32, 10)
	if _, err := u.Int64(); err == nil {
		t.Fatalf("Int64 on unsigned Integer must fail")
	}
}

func TestIntegerString(t *testing.T) {
	cases := []struct {
		n    Integer
		want string
	}{
		{Integer{}, "(empty integer)"},
		{NewUnsignedInteger(255, 8, 16), "(w: 8 b: 16 v: 0xff)"},
		{NewSignedInteger(-42, 32, 10), "(w: 32 b: 10 v: -42)"},
		{NewUnsignedInteger(8, 8, 8), "(w: 8 b: 8 v: 010)"},
	}
	for _, tc := range cases {
		if got := tc.n.String(); got != tc.want {
			t.Fatalf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestValueKindsMatchConstructors(t *testing.T) {
	cases := []struct {
		v    Value
		kind ValueKind
	}{
		{EmptyValue(), ValueEmpty},
		{IntegerValue(NewSignedInteger(1, 8, 10)), ValueInteger},
		{FloatValue(2.5), ValueFloat},
		{EnumeratorValue(Enumerator{Label: "A"}), ValueEnumerator},
		{StringValue("s"), ValueString},
		{StructureValue(nil), ValueStructure},
		{VariantValue(StringValue("inner")), ValueVariant},
		{CollectionValue(nil), ValueCollection},
	}
	for _, tc := range cases {
		if tc.v.Kind() != tc.kind {
			t.Fatalf("Kind() = %v, want %v", tc.v.Kind(), tc.kind)
		}
		if tc.v.IsEmpty() != (tc.kind == ValueEmpty) {
			t.Fatalf("IsEmpty() wrong for %v", tc.kind)
		}
	}
}

func TestValueAccessorsFailLoudlyOnWrongKind(t *testing.T) {
	v := StringValue("not a number")
	var mismatch *TypeMismatchError
	if _, err := v.AsInteger(); !errors.As(err, &mismatch) {
		t.Fatalf("AsInteger on string: expected TypeMismatchError, got %v", err)
	}
	if _, err := v.AsFloat64(); err == nil {
		t.Fatalf("AsFloat64 on string must fail")
	}
	if _, err := v.AsEnumerator(); err == nil {
		t.Fatalf("AsEnumerator on string must fail")
	}
	if _, err := v.Elements(); err == nil {
		t.Fatalf("Elements on string must fail")
	}
	if _, err := v.Unwrap(); err == nil {
		t.Fatalf("Unwrap on string must fail")
	}
	if _, err := IntegerValue(NewSignedInteger(1, 8, 10)).AsString(); err == nil {
		t.Fatalf("AsString on integer must fail")
	}
}

func TestVariantUnwrapReturnsBoxedValue(t *testing.T) {
	inner := IntegerValue(NewUnsignedInteger(9, 16, 10))
	v := VariantValue(inner)
	got, err := v.Unwrap()
	if err != nil {
		t.Fatalf("Unwrap: %v", err)
	}
	n, err := got.AsInteger()
	if err != nil {
		t.Fatalf("AsInteger: %v", err)
	}
	if u, _ := n.Uint64(); u != 9 {
		t.Fatalf("boxed value = %v, want 9", n)
	}
}

func TestElementsWorksForStructureAndCollection(t *testing.T) {
	elems := []Value{StringValue("a"), StringValue("b")}
	for _, v := range []Value{StructureValue(elems), CollectionValue(elems)} {
		got, err := v.Elements()
		if err != nil {
			t.Fatalf("%v: Elements: %v", v.Kind(), err)
		}
		if len(got) != 2 {
			t.Fatalf("%v: got %d elements, want 2", v.Kind(), len(got))
		}
	}
}
