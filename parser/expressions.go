package parser

import (
	. "github.com/isunjn/snlc/core"
	ir "github.com/isunjn/snlc/core/module"
	T "github.com/isunjn/snlc/core/module/lexkind"
	nk "github.com/isunjn/snlc/core/module/nodekind"
	G "github.com/isunjn/snlc/grammar"
)

// RelExp := Exp ('<' | '=') Exp
func relExp(st *Parser) (*ir.Node, *Error) {
	_, err := Choose(st, G.RelExp)
	if err != nil {
		return nil, err
	}
	pos := st.Word.Pos
	left, err := exp(st)
	if err != nil {
		return nil, err
	}
	_, err = Choose(st, G.OtherRelE)
	if err != nil {
		return nil, err
	}
	_, err = Choose(st, G.CmpOp)
	if err != nil {
		return nil, err
	}
	op := Consume(st)
	right, err := exp(st)
	if err != nil {
		return nil, err
	}
	n := CreateNode(nk.OpExp, pos, left, right)
	n.Op = op.Kind
	return n, nil
}

/*
Exp := Term {('+' | '-') Term}

The grammar nests the rest of the sum to the right, the tree folds it
to the left.
*/
func exp(st *Parser) (*ir.Node, *Error) {
	_, err := Choose(st, G.Exp)
	if err != nil {
		return nil, err
	}
	left, err := term(st)
	if err != nil {
		return nil, err
	}
	for {
		rule, err := Choose(st, G.OtherTerm)
		if err != nil {
			return nil, err
		}
		if isEmpty(st, rule) {
			return left, nil
		}
		_, err = Choose(st, G.AddOp)
		if err != nil {
			return nil, err
		}
		op := Consume(st)
		_, err = Choose(st, G.Exp)
		if err != nil {
			return nil, err
		}
		right, err := term(st)
		if err != nil {
			return nil, err
		}
		left = binary(op, left, right)
	}
}

// Term := Factor {('*' | '/') Factor}
func term(st *Parser) (*ir.Node, *Error) {
	_, err := Choose(st, G.Term)
	if err != nil {
		return nil, err
	}
	left, err := factor(st)
	if err != nil {
		return nil, err
	}
	for {
		rule, err := Choose(st, G.OtherFactor)
		if err != nil {
			return nil, err
		}
		if isEmpty(st, rule) {
			return left, nil
		}
		_, err = Choose(st, G.MultOp)
		if err != nil {
			return nil, err
		}
		op := Consume(st)
		_, err = Choose(st, G.Term)
		if err != nil {
			return nil, err
		}
		right, err := factor(st)
		if err != nil {
			return nil, err
		}
		left = binary(op, left, right)
	}
}

func binary(op ir.Token, left, right *ir.Node) *ir.Node {
	n := CreateNode(nk.OpExp, op.Pos, left, right)
	n.Op = op.Kind
	return n
}

// Factor := '(' Exp ')' | int | char | Variable
func factor(st *Parser) (*ir.Node, *Error) {
	rule, err := Choose(st, G.Factor)
	if err != nil {
		return nil, err
	}
	switch rule {
	case G.RFactorParen:
		_, err = Expect(st, T.LEFTPAREN)
		if err != nil {
			return nil, err
		}
		n, err := exp(st)
		if err != nil {
			return nil, err
		}
		_, err = Expect(st, T.RIGHTPAREN)
		if err != nil {
			return nil, err
		}
		return n, nil
	case G.RFactorInt, G.RFactorChar:
		tk := Consume(st)
		return CreateNode(nk.ConstExp, tk.Pos, ir.NewLiteral(tk)), nil
	}
	pos := st.Word.Pos
	v, err := variable(st)
	if err != nil {
		return nil, err
	}
	return CreateNode(nk.IdExp, pos, v), nil
}

// Variable := id [ '[' Exp ']' | '.' id ['[' Exp ']'] ]
func variable(st *Parser) (*ir.Node, *Error) {
	_, err := Choose(st, G.Variable)
	if err != nil {
		return nil, err
	}
	pos := st.Word.Pos
	id, err := identifier(st)
	if err != nil {
		return nil, err
	}
	more, err := variMore(st)
	if err != nil {
		return nil, err
	}
	return CreateNode(nk.Variable, pos, id, more), nil
}

func variMore(st *Parser) (*ir.Node, *Error) {
	rule, err := Choose(st, G.VariMore)
	if err != nil {
		return nil, err
	}
	switch rule {
	case G.RVariMoreIndex:
		return index(st)
	case G.RVariMoreField:
		dot, err := Expect(st, T.DOT)
		if err != nil {
			return nil, err
		}
		_, err = Choose(st, G.FieldVar)
		if err != nil {
			return nil, err
		}
		id, err := identifier(st)
		if err != nil {
			return nil, err
		}
		rule, err := Choose(st, G.FieldVarMore)
		if err != nil {
			return nil, err
		}
		var more *ir.Node
		if !isEmpty(st, rule) {
			more, err = index(st)
			if err != nil {
				return nil, err
			}
		}
		return CreateNode(nk.FieldVariMore, dot.Pos, id, more), nil
	}
	return nil, nil
}

func index(st *Parser) (*ir.Node, *Error) {
	lb, err := Expect(st, T.LEFTBRACKET)
	if err != nil {
		return nil, err
	}
	n, err := exp(st)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.RIGHTBRACKET)
	if err != nil {
		return nil, err
	}
	return CreateNode(nk.ArrayVariMore, lb.Pos, n), nil
}
