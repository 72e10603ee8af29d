// Package typechecker binds the declarations of a parsed program and
// checks its statements. Every diagnostic is collected; a tree that does
// not have the shape the parsers build is an internal error.
package typechecker

import (
	. "github.com/isunjn/snlc/core"
	ir "github.com/isunjn/snlc/core/module"
	lex "github.com/isunjn/snlc/core/module/lexkind"
	nk "github.com/isunjn/snlc/core/module/nodekind"
	SK "github.com/isunjn/snlc/core/module/symbolkind"
	T "github.com/isunjn/snlc/core/module/types"
	"github.com/isunjn/snlc/core/scope"
	"github.com/isunjn/snlc/core/util"
	msg "github.com/isunjn/snlc/messages"
)

type checker struct {
	M      *ir.Module
	arena  *T.Arena
	scope  *scope.Scope
	errors []*Error
}

// Check returns the semantic errors of M.Root in source order of
// discovery, nil for a well typed program. The type arena is left in
// M.Types.
func Check(M *ir.Module) []*Error {
	root := M.Root
	if root == nil || root.Kind != nk.Program {
		panic(util.NewInternalSemanticError("typechecker: module without program"))
	}
	c := &checker{
		M:     M,
		arena: T.NewArena(),
		scope: scope.New(root.Leaf("name")),
	}
	c.declare(nil, root.Leaf("declare"))
	c.statements(root.Leaf("body").Leaf("stms"))
	M.Types = c.arena
	return c.errors
}

func (this *checker) report(err *Error) {
	this.errors = append(this.errors, err)
}

func (this *checker) internal(n *ir.Node, message string) {
	panic(util.NewInternalError(this.M, n, "typechecker: "+message))
}

func (this *checker) define(e *scope.Entry) {
	if _, ok := this.scope.Define(e); !ok {
		this.report(msg.ErrorNameAlreadyDefined(this.M, e.N))
	}
}

// declare binds a declaration part in the current scope: parameters
// first, then types, variables and procedures. A procedure sees the
// procedures declared before it and itself, never the later ones.
func (this *checker) declare(params []*scope.Entry, declare *ir.Node) {
	for _, p := range params {
		this.define(p)
	}
	for t := declare.Leaf("types"); t != nil; t = t.Sibling {
		ty := this.typeOf(t.Leaf("type"))
		this.define(scope.TypeEntry(t.Leaf("id"), ty))
	}
	for v := declare.Leaf("vars"); v != nil; v = v.Sibling {
		ty := this.typeOf(v.Leaf("type"))
		for id := v.Leaf("ids"); id != nil; id = id.Sibling {
			this.define(scope.VarEntry(id, ty, scope.Direct))
		}
	}
	for p := declare.Leaf("procs"); p != nil; p = p.Sibling {
		this.procedure(p)
	}
}

func (this *checker) procedure(p *ir.Node) {
	params := this.params(p.Leaf("params"))
	this.define(scope.ProcEntry(p.Leaf("name"), params))

	this.scope.Enter()
	this.declare(params, p.Leaf("declare"))
	this.statements(p.Leaf("body").Leaf("stms"))
	this.scope.Leave()
}

// params resolves parameter types in the enclosing scope. The entries
// are both the signature of the procedure and the bindings of its body.
func (this *checker) params(list *ir.Node) []*scope.Entry {
	output := []*scope.Entry{}
	for p := list; p != nil; p = p.Sibling {
		ty := this.typeOf(p.Leaf("type"))
		access := scope.Direct
		if p.ByRef {
			access = scope.Indirect
		}
		for id := p.Leaf("ids"); id != nil; id = id.Sibling {
			output = append(output, scope.VarEntry(id, ty, access))
		}
	}
	return output
}

func (this *checker) typeOf(n *ir.Node) T.TypeID {
	switch n.Kind {
	case nk.IntegerType:
		return T.Integer
	case nk.CharType:
		return T.Char
	case nk.ArrayType:
		low, high := n.Leaf("low"), n.Leaf("high")
		if low.Value > high.Value {
			this.report(msg.ErrorInvalidArrayBounds(this.M, low, high))
		}
		elem := this.typeOf(n.Leaf("elem"))
		if elem == T.Invalid {
			return T.Invalid
		}
		return this.arena.NewArray(elem, low.Value, high.Value)
	case nk.RecordType:
		r := &T.Record{}
		for f := n.Leaf("fields"); f != nil; f = f.Sibling {
			ty := this.typeOf(f.Leaf("type"))
			for id := f.Leaf("ids"); id != nil; id = id.Sibling {
				if !r.Add(id.Text, ty) {
					this.report(msg.ErrorNameAlreadyDefined(this.M, id))
				}
			}
		}
		return this.arena.NewRecord(r)
	case nk.IdType:
		id := n.Leaf("id")
		e, ok := this.scope.Lookup(id.Text)
		if !ok {
			this.report(msg.ErrorNameNotDefined(this.M, id))
			return T.Invalid
		}
		if e.Kind != SK.Type {
			this.report(msg.ErrorExpectedType(this.M, id))
			return T.Invalid
		}
		return e.Type
	}
	this.internal(n, "not a type: "+n.Kind.String())
	return T.Invalid
}

func (this *checker) statements(stm *ir.Node) {
	for ; stm != nil; stm = stm.Sibling {
		this.statement(stm)
	}
}

func (this *checker) statement(stm *ir.Node) {
	switch stm.Kind {
	case nk.IfStm:
		this.expression(stm.Leaf("test"))
		this.statements(stm.Leaf("then"))
		this.statements(stm.Leaf("else"))
	case nk.WhileStm:
		this.expression(stm.Leaf("test"))
		this.statements(stm.Leaf("body"))
	case nk.ReadStm:
		to := stm.Leaf("to")
		e, ok := this.scope.Lookup(to.Text)
		if !ok {
			this.report(msg.ErrorNameNotDefined(this.M, to))
		} else if e.Kind != SK.Var {
			this.report(msg.ErrorExpectedVariable(this.M, to))
		}
	case nk.WriteStm, nk.ReturnStm:
		this.expression(stm.Leaf("what"))
	case nk.AssignStm:
		left := stm.Leaf("left")
		lt := this.variable(left)
		rt := this.expression(stm.Leaf("right"))
		if lt != T.Invalid && rt != T.Invalid && lt != rt {
			this.report(msg.ErrorMismatchedTypeInAssign(this.M, left.Leaf("id")))
		}
	case nk.CallStm:
		this.call(stm)
	default:
		this.internal(stm, "not a statement: "+stm.Kind.String())
	}
}

// call checks every argument, whether or not the callee resolves.
func (this *checker) call(stm *ir.Node) {
	fn := stm.Leaf("fn")
	proc, ok := this.scope.Lookup(fn.Text)
	if !ok {
		this.report(msg.ErrorNameNotDefined(this.M, fn))
		proc = nil
	} else if proc.Kind != SK.Proc {
		this.report(msg.ErrorExpectedProcedure(this.M, fn))
		proc = nil
	}

	args := stm.Leaf("args").List()
	types := make([]T.TypeID, len(args))
	for i, arg := range args {
		types[i] = this.expression(arg)
	}
	if proc == nil {
		return
	}
	if len(args) != len(proc.Params) {
		this.report(msg.ErrorInvalidNumberOfArgs(this.M, fn, len(proc.Params), len(args)))
		return
	}
	for i, param := range proc.Params {
		if param.Access == scope.Indirect && args[i].Kind != nk.IdExp {
			this.report(msg.ErrorExpectedVariableArgument(this.M, args[i], i))
			continue
		}
		if types[i] != T.Invalid && param.Type != T.Invalid && types[i] != param.Type {
			this.report(msg.ErrorMismatchedTypeForArgument(this.M, fn, i))
		}
	}
}

func (this *checker) expression(n *ir.Node) T.TypeID {
	switch n.Kind {
	case nk.ConstExp:
		if n.Leaf("content").Kind == nk.CharLiteral {
			return T.Char
		}
		return T.Integer
	case nk.IdExp:
		return this.variable(n.Leaf("content"))
	case nk.OpExp:
		left, right := n.Leaves[0], n.Leaves[1]
		lt := this.expression(left)
		rt := this.expression(right)
		if lt == T.Invalid || rt == T.Invalid {
			return T.Invalid
		}
		if lt != rt {
			this.report(msg.ErrorOperationBetweenUnequalTypes(this.M, leftmost(left)))
			return T.Invalid
		}
		if n.Op == lex.LESS || n.Op == lex.EQUALS {
			return T.Bool
		}
		if lt != T.Integer {
			this.report(msg.ErrorExpectedInteger(this.M, leftmost(left), this.arena.String(lt)))
			return T.Invalid
		}
		return T.Integer
	}
	this.internal(n, "not an expression: "+n.Kind.String())
	return T.Invalid
}

func (this *checker) variable(v *ir.Node) T.TypeID {
	id := v.Leaf("id")
	more := v.Leaf("more")
	e, ok := this.scope.Lookup(id.Text)
	if !ok {
		this.report(msg.ErrorNameNotDefined(this.M, id))
		return this.access(id, T.Invalid, more)
	}
	if e.Kind != SK.Var {
		this.report(msg.ErrorExpectedVariable(this.M, id))
		return this.access(id, T.Invalid, more)
	}
	return this.access(id, e.Type, more)
}

// access follows the index and field accessors of a variable named
// base with type t. Index expressions are checked even after the base
// failed.
func (this *checker) access(base *ir.Node, t T.TypeID, more *ir.Node) T.TypeID {
	if more == nil {
		return t
	}
	switch more.Kind {
	case nk.ArrayVariMore:
		index := more.Leaf("index")
		it := this.expression(index)
		if t == T.Invalid {
			return T.Invalid
		}
		if !this.arena.IsArray(t) {
			this.report(msg.ErrorExpectedArray(this.M, base))
			return T.Invalid
		}
		if it == T.Invalid {
			return T.Invalid
		}
		if it != T.Integer {
			this.report(msg.ErrorIndexMustBeInteger(this.M, leftmost(index)))
			return T.Invalid
		}
		return this.arena.Get(t).Array.Elem
	case nk.FieldVariMore:
		field := more.Leaf("id")
		if t == T.Invalid {
			return this.access(field, T.Invalid, more.Leaf("more"))
		}
		if !this.arena.IsRecord(t) {
			this.report(msg.ErrorExpectedRecord(this.M, base))
			return this.access(field, T.Invalid, more.Leaf("more"))
		}
		ft, ok := this.arena.Get(t).Record.Field(field.Text)
		if !ok {
			this.report(msg.ErrorFieldNotDefined(this.M, field, base))
			return this.access(field, T.Invalid, more.Leaf("more"))
		}
		return this.access(field, ft, more.Leaf("more"))
	}
	this.internal(more, "not an accessor: "+more.Kind.String())
	return T.Invalid
}

// leftmost is the first token of an expression, where diagnostics
// about it point.
func leftmost(n *ir.Node) *ir.Node {
	for n.Kind == nk.OpExp {
		n = n.Leaves[0]
	}
	return n
}
