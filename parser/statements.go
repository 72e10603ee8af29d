package parser

import (
	. "github.com/isunjn/snlc/core"
	ir "github.com/isunjn/snlc/core/module"
	T "github.com/isunjn/snlc/core/module/lexkind"
	nk "github.com/isunjn/snlc/core/module/nodekind"
	G "github.com/isunjn/snlc/grammar"
)

// StmList := Stm {';' Stm}
func stmList(st *Parser) (*ir.Node, *Error) {
	var first, last *ir.Node
	for {
		_, err := Choose(st, G.StmList)
		if err != nil {
			return nil, err
		}
		n, err := stm(st)
		if err != nil {
			return nil, err
		}
		first, last = AddSibling(first, last, n)

		rule, err := Choose(st, G.StmMore)
		if err != nil {
			return nil, err
		}
		if isEmpty(st, rule) {
			return first, nil
		}
		_, err = Expect(st, T.SEMICOLON)
		if err != nil {
			return nil, err
		}
	}
}

func stm(st *Parser) (*ir.Node, *Error) {
	rule, err := Choose(st, G.Stm)
	if err != nil {
		return nil, err
	}
	switch rule {
	case G.RStmConditional:
		return conditionalStm(st)
	case G.RStmLoop:
		return loopStm(st)
	case G.RStmInput:
		return inputStm(st)
	case G.RStmOutput:
		return exprStm(st, G.OutputStm, T.WRITE, nk.WriteStm)
	case G.RStmReturn:
		return exprStm(st, G.ReturnStm, T.RETURN, nk.ReturnStm)
	}
	callee, err := identifier(st)
	if err != nil {
		return nil, err
	}
	rule, err = Choose(st, G.AssCall)
	if err != nil {
		return nil, err
	}
	if rule == G.RAssCallAssign {
		return assignmentRest(st, callee)
	}
	return callStmRest(st, callee)
}

// AssignmentRest := VariMore ':=' Exp
func assignmentRest(st *Parser, callee *ir.Node) (*ir.Node, *Error) {
	_, err := Choose(st, G.AssignmentRest)
	if err != nil {
		return nil, err
	}
	more, err := variMore(st)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.ASSIGNMENT)
	if err != nil {
		return nil, err
	}
	right, err := exp(st)
	if err != nil {
		return nil, err
	}
	left := CreateNode(nk.Variable, callee.Pos, callee, more)
	return CreateNode(nk.AssignStm, callee.Pos, left, right), nil
}

// CallStmRest := '(' [Exp {',' Exp}] ')'
func callStmRest(st *Parser, callee *ir.Node) (*ir.Node, *Error) {
	_, err := Choose(st, G.CallStmRest)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.LEFTPAREN)
	if err != nil {
		return nil, err
	}
	args, err := actParamList(st)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.RIGHTPAREN)
	if err != nil {
		return nil, err
	}
	return CreateNode(nk.CallStm, callee.Pos, callee, args), nil
}

// the grammar accepts a trailing comma: "f(a,)"
func actParamList(st *Parser) (*ir.Node, *Error) {
	var first, last *ir.Node
	for {
		rule, err := Choose(st, G.ActParamList)
		if err != nil {
			return nil, err
		}
		if isEmpty(st, rule) {
			return first, nil
		}
		n, err := exp(st)
		if err != nil {
			return nil, err
		}
		first, last = AddSibling(first, last, n)

		rule, err = Choose(st, G.ActParamMore)
		if err != nil {
			return nil, err
		}
		if isEmpty(st, rule) {
			return first, nil
		}
		_, err = Expect(st, T.COMMA)
		if err != nil {
			return nil, err
		}
	}
}

// ConditionalStm := 'if' RelExp 'then' StmList 'else' StmList 'fi'
func conditionalStm(st *Parser) (*ir.Node, *Error) {
	_, err := Choose(st, G.ConditionalStm)
	if err != nil {
		return nil, err
	}
	kw, err := Expect(st, T.IF)
	if err != nil {
		return nil, err
	}
	test, err := relExp(st)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.THEN)
	if err != nil {
		return nil, err
	}
	then, err := stmList(st)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.ELSE)
	if err != nil {
		return nil, err
	}
	els, err := stmList(st)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.FI)
	if err != nil {
		return nil, err
	}
	return CreateNode(nk.IfStm, kw.Pos, test, then, els), nil
}

// LoopStm := 'while' RelExp 'do' StmList 'endwh'
func loopStm(st *Parser) (*ir.Node, *Error) {
	_, err := Choose(st, G.LoopStm)
	if err != nil {
		return nil, err
	}
	kw, err := Expect(st, T.WHILE)
	if err != nil {
		return nil, err
	}
	test, err := relExp(st)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.DO)
	if err != nil {
		return nil, err
	}
	body, err := stmList(st)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.ENDWH)
	if err != nil {
		return nil, err
	}
	return CreateNode(nk.WhileStm, kw.Pos, test, body), nil
}

// InputStm := 'read' '(' id ')'
func inputStm(st *Parser) (*ir.Node, *Error) {
	_, err := Choose(st, G.InputStm)
	if err != nil {
		return nil, err
	}
	kw, err := Expect(st, T.READ)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.LEFTPAREN)
	if err != nil {
		return nil, err
	}
	_, err = Choose(st, G.Invar)
	if err != nil {
		return nil, err
	}
	to, err := identifier(st)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.RIGHTPAREN)
	if err != nil {
		return nil, err
	}
	return CreateNode(nk.ReadStm, kw.Pos, to), nil
}

// exprStm parses write and return, both keyword '(' Exp ')'.
func exprStm(st *Parser, nt G.Symbol, keyword T.LexKind, kind nk.NodeKind) (*ir.Node, *Error) {
	_, err := Choose(st, nt)
	if err != nil {
		return nil, err
	}
	kw, err := Expect(st, keyword)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.LEFTPAREN)
	if err != nil {
		return nil, err
	}
	what, err := exp(st)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.RIGHTPAREN)
	if err != nil {
		return nil, err
	}
	return CreateNode(kind, kw.Pos, what), nil
}
