// Package ll1 is the table driven parser of SNL. It walks the predict
// table of the SNL grammar with an explicit symbol stack and builds the
// syntax tree through one action per applied rule.
package ll1

import (
	. "github.com/isunjn/snlc/core"
	ir "github.com/isunjn/snlc/core/module"
	lex "github.com/isunjn/snlc/core/module/lexkind"
	nk "github.com/isunjn/snlc/core/module/nodekind"
	"github.com/isunjn/snlc/core/util"
	"github.com/isunjn/snlc/grammar"
	msg "github.com/isunjn/snlc/messages"
	"github.com/isunjn/snlc/predict"

	"fmt"
)

// Parse builds the syntax tree of the token list M.Tokens, which must
// end with an EOF token. It stops at the first syntax error.
func Parse(M *ir.Module) (*ir.Node, *Error) {
	root, _, err := Derive(M)
	return root, err
}

// Derive is Parse that also returns the applied rules in order, the
// leftmost derivation of the program.
func Derive(M *ir.Module) (root *ir.Node, rules []grammar.RuleID, err *Error) {
	d := newDriver(M, predict.SNL())
	defer func() {
		if r := recover(); r != nil {
			root = nil
			err = util.Fatal(r)
		}
	}()
	root, err = d.run()
	return root, d.applied, err
}

// slot is a place in the tree that waits for a node: a leaf of parent,
// the sibling link of parent, or the operator of an OpExp.
type slot struct {
	parent *ir.Node
	field  int
}

const (
	siblingField  = -1
	operatorField = -2
)

func (this slot) set(n *ir.Node) {
	switch this.field {
	case siblingField:
		this.parent.Sibling = n
	case operatorField:
		panic(util.NewInternalSemanticError("ll1: node linked into an operator slot"))
	default:
		this.parent.Leaves[this.field] = n
	}
}

type driver struct {
	M       *ir.Module
	sets    *predict.Sets
	index   int
	symbols []grammar.Symbol
	slots   []slot
	expr    exprBuilder
	applied []grammar.RuleID

	// the identifier that starts an assignment or a call, read before
	// the parser knows which one it is
	callee *ir.Node
}

func newDriver(M *ir.Module, sets *predict.Sets) *driver {
	return &driver{
		M:    M,
		sets: sets,
		expr: newExprBuilder(),
	}
}

func (this *driver) word() ir.Token {
	if this.index >= len(this.M.Tokens) {
		return ir.Token{Kind: lex.EOF}
	}
	return this.M.Tokens[this.index]
}

func (this *driver) run() (*ir.Node, *Error) {
	g := this.sets.Grammar
	program := ir.New(nk.Program)
	program.Pos = this.word().Pos
	this.symbols = append(this.symbols, grammar.EOF, g.Start)
	this.push(program, "name", "declare", "body")

	for {
		tk := this.word()
		top := this.symbols[len(this.symbols)-1]
		if tk.Kind == lex.EOF && top == grammar.EOF {
			break
		}
		if tk.Kind == lex.EOF {
			return nil, this.unfinished(top)
		}
		if top.IsNonterminal() {
			id, ok := this.sets.Table.Lookup(top, tk.Kind)
			if !ok {
				return nil, this.expectedProd(top)
			}
			this.symbols = this.symbols[:len(this.symbols)-1]
			rule := g.Rule(id)
			for i := len(rule.Right) - 1; i >= 0; i-- {
				if rule.Right[i] != grammar.Epsilon {
					this.symbols = append(this.symbols, rule.Right[i])
				}
			}
			this.applied = append(this.applied, id)
			this.act(id)
			continue
		}
		if top.Kind() != tk.Kind {
			return nil, this.expectedSymbol(top)
		}
		this.symbols = this.symbols[:len(this.symbols)-1]
		this.index++
	}

	if len(this.slots) != 0 || !this.expr.empty() {
		panic(util.NewInternalSemanticError(
			fmt.Sprintf("ll1: %d slots and %d operands left after parsing",
				len(this.slots), len(this.expr.operands))))
	}
	return program, nil
}

// push stacks the named slots of n. The first name ends on top.
func (this *driver) push(n *ir.Node, names ...string) {
	for i := len(names) - 1; i >= 0; i-- {
		this.slots = append(this.slots, slotOf(n, names[i]))
	}
}

func slotOf(n *ir.Node, name string) slot {
	switch name {
	case "sibling":
		return slot{n, siblingField}
	case "op":
		return slot{n, operatorField}
	}
	return slot{n, nk.Leaf(n.Kind, name)}
}

func (this *driver) pop() slot {
	if len(this.slots) == 0 {
		panic(util.NewInternalSemanticError("ll1: slot stack underflow"))
	}
	top := this.slots[len(this.slots)-1]
	this.slots = this.slots[:len(this.slots)-1]
	return top
}

func (this *driver) unfinished(top grammar.Symbol) *Error {
	return msg.ErrorProgramNotFinished(this.M.FullPath, this.word(), top)
}

func (this *driver) expectedProd(top grammar.Symbol) *Error {
	return msg.ErrorExpectedProd(this.M.FullPath, this.word(), top)
}

func (this *driver) expectedSymbol(top grammar.Symbol) *Error {
	if top == grammar.EOF {
		return msg.ErrorExpectedEOF(this.M.FullPath, this.word())
	}
	return msg.ErrorExpectedSymbol(this.M.FullPath, this.word(), top)
}
