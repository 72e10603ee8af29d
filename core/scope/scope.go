// Package scope is the symbol table of the checker: a stack of flat
// tables, innermost last, with lexical shadowing.
package scope

import (
	ir "github.com/isunjn/snlc/core/module"
	SK "github.com/isunjn/snlc/core/module/symbolkind"
	T "github.com/isunjn/snlc/core/module/types"

	"fmt"
)

// Access is how a variable is bound: Indirect variables are parameters
// passed by reference.
type Access int

const (
	Direct Access = iota
	Indirect
)

func (this Access) String() string {
	if this == Indirect {
		return "indirect"
	}
	return "direct"
}

type Entry struct {
	Name string
	Kind SK.SymbolKind

	Type   T.TypeID // Type and Var
	Access Access   // Var
	Params []*Entry // Proc

	N *ir.Node // declaring identifier
}

func (this *Entry) String() string {
	switch this.Kind {
	case SK.Var:
		return fmt.Sprintf("%v %v (type %v, %v)", this.Kind, this.Name, this.Type, this.Access)
	case SK.Proc:
		return fmt.Sprintf("%v %v (%d params)", this.Kind, this.Name, len(this.Params))
	}
	return fmt.Sprintf("%v %v (type %v)", this.Kind, this.Name, this.Type)
}

func TypeEntry(n *ir.Node, t T.TypeID) *Entry {
	return &Entry{Name: n.Text, Kind: SK.Type, Type: t, N: n}
}

func VarEntry(n *ir.Node, t T.TypeID, access Access) *Entry {
	return &Entry{Name: n.Text, Kind: SK.Var, Type: t, Access: access, N: n}
}

func ProcEntry(n *ir.Node, params []*Entry) *Entry {
	return &Entry{Name: n.Text, Kind: SK.Proc, Type: T.Invalid, Params: params, N: n}
}

type Scope struct {
	tables []map[string]*Entry
}

// New returns a scope of depth one where the program name is already
// bound as a procedure without parameters.
func New(program *ir.Node) *Scope {
	s := &Scope{}
	s.Enter()
	s.Define(ProcEntry(program, nil))
	return s
}

func (this *Scope) Enter() {
	this.tables = append(this.tables, map[string]*Entry{})
}

func (this *Scope) Leave() {
	if len(this.tables) == 0 {
		panic("scope: leaving the outermost scope")
	}
	this.tables = this.tables[:len(this.tables)-1]
}

func (this *Scope) Depth() int {
	return len(this.tables)
}

// Define binds e in the innermost table unless its name is already
// bound there, in which case the first binding is kept and returned
// with false.
func (this *Scope) Define(e *Entry) (*Entry, bool) {
	top := this.tables[len(this.tables)-1]
	if old, ok := top[e.Name]; ok {
		return old, false
	}
	top[e.Name] = e
	return e, true
}

// Lookup searches from the innermost table outwards.
func (this *Scope) Lookup(name string) (*Entry, bool) {
	for i := len(this.tables) - 1; i >= 0; i-- {
		if e, ok := this.tables[i][name]; ok {
			return e, true
		}
	}
	return nil, false
}
