package types

import (
	"testing"
)

func TestArenaBuiltins(t *testing.T) {
	a := NewArena()
	for id, name := range map[TypeID]string{Integer: "integer", Char: "char", Bool: "bool", Invalid: "invalid"} {
		if got := a.String(id); got != name {
			t.Errorf("String(%v) = %q, want %q", id, got, name)
		}
	}
	if a.Len() != 4 {
		t.Errorf("Len() = %d, want 4", a.Len())
	}
}

func TestArraysAreNominal(t *testing.T) {
	a := NewArena()
	x := a.NewArray(Integer, 1, 3)
	y := a.NewArray(Integer, 1, 3)
	if x == y {
		t.Error("two array declarations share an id")
	}
	if !a.IsArray(x) || a.IsRecord(x) || a.IsArray(Invalid) {
		t.Error("wrong kind predicates")
	}
	if got := a.Get(x).Array.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if got := (&Array{Low: 5, High: 1}).Len(); got != 0 {
		t.Errorf("inverted bounds Len() = %d, want 0", got)
	}
}

func TestRecord(t *testing.T) {
	a := NewArena()
	r := &Record{}
	if !r.Add("a", Integer) || !r.Add("b", a.NewArray(Char, 0, 1)) {
		t.Fatal("Add() rejected a new field")
	}
	if r.Add("a", Char) {
		t.Error("Add() accepted a duplicate field")
	}
	id := a.NewRecord(r)
	if ft, ok := a.Get(id).Record.Field("a"); !ok || ft != Integer {
		t.Errorf("Field(a) = %v, %v", ft, ok)
	}
	if _, ok := a.Get(id).Record.Field("z"); ok {
		t.Error("Field(z) should not exist")
	}
	if got := a.String(id); got != "record integer a; array [0..1] of char b end" {
		t.Errorf("String() = %q", got)
	}
}

func TestGetPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get(Invalid) should panic")
		}
	}()
	NewArena().Get(Invalid)
}
