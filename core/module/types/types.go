package types

import (
	"fmt"
	"strconv"
	"strings"
)

// index into Arena.space
type TypeID int

func (this TypeID) String() string {
	return fmt.Sprintf("%d", int(this))
}

const (
	// Invalid marks an expression or declaration that was already
	// diagnosed. It is never stored in the arena.
	Invalid TypeID = -1

	placeholder TypeID = iota - 1
	Integer
	Char
	Bool
)

type Kind int

const (
	InvalidKind Kind = iota
	IntegerKind
	CharKind
	BoolKind
	ArrayKind
	RecordKind
)

type Type struct {
	ID   TypeID
	Kind Kind

	Array  *Array
	Record *Record
}

type Array struct {
	Elem TypeID
	Low  int
	High int
}

// Len is the number of elements, zero for inverted bounds.
func (this *Array) Len() int {
	if this.High < this.Low {
		return 0
	}
	return this.High - this.Low + 1
}

type Record struct {
	Fields   []Field
	FieldMap map[string]int
}

type Field struct {
	Name string
	Type TypeID
}

// Field returns the type of the named field and whether it exists.
func (this *Record) Field(name string) (TypeID, bool) {
	i, ok := this.FieldMap[name]
	if !ok {
		return Invalid, false
	}
	return this.Fields[i].Type, true
}

// Add appends a field unless the name is taken, reporting success.
func (this *Record) Add(name string, t TypeID) bool {
	if this.FieldMap == nil {
		this.FieldMap = map[string]int{}
	}
	if _, ok := this.FieldMap[name]; ok {
		return false
	}
	this.FieldMap[name] = len(this.Fields)
	this.Fields = append(this.Fields, Field{Name: name, Type: t})
	return true
}

// Arena is an append-only store of type descriptors. Equality of
// types is equality of their ids: two array declarations with the
// same shape get distinct ids.
type Arena struct {
	space []*Type
}

func NewArena() *Arena {
	arena := &Arena{space: make([]*Type, 0, 16)}
	arena.push(&Type{Kind: InvalidKind}) // index 0 is never handed out
	arena.push(&Type{Kind: IntegerKind})
	arena.push(&Type{Kind: CharKind})
	arena.push(&Type{Kind: BoolKind})
	return arena
}

func (this *Arena) push(t *Type) TypeID {
	id := TypeID(len(this.space))
	t.ID = id
	this.space = append(this.space, t)
	return id
}

func (this *Arena) NewArray(elem TypeID, low, high int) TypeID {
	return this.push(&Type{
		Kind:  ArrayKind,
		Array: &Array{Elem: elem, Low: low, High: high},
	})
}

func (this *Arena) NewRecord(r *Record) TypeID {
	if r.FieldMap == nil {
		r.FieldMap = map[string]int{}
	}
	return this.push(&Type{
		Kind:   RecordKind,
		Record: r,
	})
}

// Get panics on Invalid or an id that was never allocated: callers
// must filter Invalid before looking a type up.
func (this *Arena) Get(id TypeID) *Type {
	if id <= placeholder || int(id) >= len(this.space) {
		panic("types: lookup of unallocated type " + id.String())
	}
	return this.space[id]
}

func (this *Arena) Len() int {
	return len(this.space)
}

func (this *Arena) IsArray(id TypeID) bool {
	return id != Invalid && this.Get(id).Kind == ArrayKind
}

func (this *Arena) IsRecord(id TypeID) bool {
	return id != Invalid && this.Get(id).Kind == RecordKind
}

func (this *Arena) String(id TypeID) string {
	if id == Invalid {
		return "invalid"
	}
	t := this.Get(id)
	switch t.Kind {
	case IntegerKind:
		return "integer"
	case CharKind:
		return "char"
	case BoolKind:
		return "bool"
	case ArrayKind:
		a := t.Array
		return "array [" + strconv.Itoa(a.Low) + ".." + strconv.Itoa(a.High) +
			"] of " + this.String(a.Elem)
	case RecordKind:
		output := []string{}
		for _, f := range t.Record.Fields {
			output = append(output, this.String(f.Type)+" "+f.Name)
		}
		return "record " + strings.Join(output, "; ") + " end"
	}
	panic("types: invalid kind")
}
