// Package parser is the hand written recursive descent parser of SNL.
// It picks alternatives by looking the current token up in the same
// predict table the ll1 driver uses, so both build identical trees and
// report identical syntax errors.
package parser

import (
	. "github.com/isunjn/snlc/core"
	ir "github.com/isunjn/snlc/core/module"
	T "github.com/isunjn/snlc/core/module/lexkind"
	nk "github.com/isunjn/snlc/core/module/nodekind"
	"github.com/isunjn/snlc/core/util"
	G "github.com/isunjn/snlc/grammar"
	msg "github.com/isunjn/snlc/messages"
	"github.com/isunjn/snlc/predict"

	"fmt"
)

type Parser struct {
	Word ir.Token

	M     *ir.Module
	sets  *predict.Sets
	index int
}

func Parse(M *ir.Module) (n *ir.Node, err *Error) {
	defer func() {
		if r := recover(); r != nil {
			n = nil
			err = util.Fatal(r)
		}
	}()
	st := &Parser{M: M, sets: predict.SNL()}
	st.load()
	n, err = program(st)
	if err != nil {
		return nil, err
	}
	if st.Word.Kind != T.EOF {
		return nil, msg.ErrorExpectedEOF(M.FullPath, st.Word)
	}
	return n, nil
}

func (st *Parser) load() {
	if st.index < len(st.M.Tokens) {
		st.Word = st.M.Tokens[st.index]
		return
	}
	st.Word = ir.Token{Kind: T.EOF}
}

func Consume(st *Parser) ir.Token {
	tk := st.Word
	st.index++
	st.load()
	return tk
}

// Choose returns the rule of nt selected by the current token.
func Choose(st *Parser, nt G.Symbol) (G.RuleID, *Error) {
	if st.Word.Kind == T.EOF {
		return 0, msg.ErrorProgramNotFinished(st.M.FullPath, st.Word, nt)
	}
	id, ok := st.sets.Table.Lookup(nt, st.Word.Kind)
	if !ok {
		return 0, msg.ErrorExpectedProd(st.M.FullPath, st.Word, nt)
	}
	return id, nil
}

func Expect(st *Parser, tp T.LexKind) (ir.Token, *Error) {
	if st.Word.Kind == T.EOF {
		return ir.Token{}, msg.ErrorProgramNotFinished(st.M.FullPath, st.Word, G.T(tp))
	}
	if st.Word.Kind != tp {
		return ir.Token{}, msg.ErrorExpectedSymbol(st.M.FullPath, st.Word, G.T(tp))
	}
	return Consume(st), nil
}

func isEmpty(st *Parser, id G.RuleID) bool {
	return st.sets.Grammar.Rule(id).IsEmpty()
}

// CreateNode builds a node of kind at pos with its leaves in layout
// order.
func CreateNode(kind nk.NodeKind, pos Position, leaves ...*ir.Node) *ir.Node {
	n := ir.New(kind)
	if len(leaves) != len(n.Leaves) {
		panic(util.NewInternalSemanticError(
			fmt.Sprintf("parser: %v takes %d leaves, got %d", kind, len(n.Leaves), len(leaves))))
	}
	n.Pos = pos
	copy(n.Leaves, leaves)
	return n
}

// AddSibling appends n to the list that starts at first and ends at
// last, returning the new ends.
func AddSibling(first, last, n *ir.Node) (*ir.Node, *ir.Node) {
	if first == nil {
		return n, n
	}
	last.Sibling = n
	return first, n
}

func identifier(st *Parser) (*ir.Node, *Error) {
	tk, err := Expect(st, T.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	return ir.NewIdentifier(tk), nil
}

func literal(st *Parser) (*ir.Node, *Error) {
	tk, err := Expect(st, T.INT_LIT)
	if err != nil {
		return nil, err
	}
	return ir.NewLiteral(tk), nil
}

// Program := ProgramHead DeclarePart ProgramBody '.'
func program(st *Parser) (*ir.Node, *Error) {
	_, err := Choose(st, G.Program)
	if err != nil {
		return nil, err
	}
	pos := st.Word.Pos
	name, err := programHead(st)
	if err != nil {
		return nil, err
	}
	declare, err := declarePart(st)
	if err != nil {
		return nil, err
	}
	body, err := programBody(st)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.DOT)
	if err != nil {
		return nil, err
	}
	return CreateNode(nk.Program, pos, name, declare, body), nil
}

// ProgramHead := 'program' id [';']
func programHead(st *Parser) (*ir.Node, *Error) {
	_, err := Choose(st, G.ProgramHead)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.PROGRAM)
	if err != nil {
		return nil, err
	}
	_, err = Choose(st, G.ProgramName)
	if err != nil {
		return nil, err
	}
	name, err := identifier(st)
	if err != nil {
		return nil, err
	}
	rule, err := Choose(st, G.ProgramHeadEnd)
	if err != nil {
		return nil, err
	}
	if rule == G.RProgramHeadEnd {
		_, err = Expect(st, T.SEMICOLON)
		if err != nil {
			return nil, err
		}
	}
	return name, nil
}

// DeclarePart := [TypeDec] [VarDec] [ProcDec]
func declarePart(st *Parser) (*ir.Node, *Error) {
	_, err := Choose(st, G.DeclarePart)
	if err != nil {
		return nil, err
	}
	pos := st.Word.Pos
	types, err := typeDec(st)
	if err != nil {
		return nil, err
	}
	vars, err := varDec(st)
	if err != nil {
		return nil, err
	}
	procs, err := procDec(st)
	if err != nil {
		return nil, err
	}
	return CreateNode(nk.DeclarePart, pos, types, vars, procs), nil
}

// TypeDec := 'type' TypeDecl {TypeDecl}
func typeDec(st *Parser) (*ir.Node, *Error) {
	rule, err := Choose(st, G.TypeDec)
	if err != nil || isEmpty(st, rule) {
		return nil, err
	}
	_, err = Choose(st, G.TypeDeclaration)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.TYPE)
	if err != nil {
		return nil, err
	}
	var first, last *ir.Node
	for {
		n, err := typeDecl(st)
		if err != nil {
			return nil, err
		}
		first, last = AddSibling(first, last, n)

		rule, err := Choose(st, G.TypeDecMore)
		if err != nil {
			return nil, err
		}
		if isEmpty(st, rule) {
			return first, nil
		}
	}
}

// TypeDecl := id '=' TypeName ';'
func typeDecl(st *Parser) (*ir.Node, *Error) {
	_, err := Choose(st, G.TypeDecList)
	if err != nil {
		return nil, err
	}
	pos := st.Word.Pos
	_, err = Choose(st, G.TypeId)
	if err != nil {
		return nil, err
	}
	id, err := identifier(st)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.EQUALS)
	if err != nil {
		return nil, err
	}
	t, err := typeName(st)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return CreateNode(nk.TypeDeclaration, pos, id, t), nil
}

// TypeName := BaseType | StructureType | id
func typeName(st *Parser) (*ir.Node, *Error) {
	rule, err := Choose(st, G.TypeName)
	if err != nil {
		return nil, err
	}
	switch rule {
	case G.RTypeNameBase:
		return baseType(st)
	case G.RTypeNameStructure:
		return structureType(st)
	}
	pos := st.Word.Pos
	id, err := identifier(st)
	if err != nil {
		return nil, err
	}
	return CreateNode(nk.IdType, pos, id), nil
}

// BaseType := 'integer' | 'char'
func baseType(st *Parser) (*ir.Node, *Error) {
	rule, err := Choose(st, G.BaseType)
	if err != nil {
		return nil, err
	}
	kind, tp := nk.IntegerType, T.INTEGER
	if rule == G.RBaseChar {
		kind, tp = nk.CharType, T.CHAR
	}
	tk, err := Expect(st, tp)
	if err != nil {
		return nil, err
	}
	return CreateNode(kind, tk.Pos), nil
}

// StructureType := ArrayType | RecordType
func structureType(st *Parser) (*ir.Node, *Error) {
	rule, err := Choose(st, G.StructureType)
	if err != nil {
		return nil, err
	}
	if rule == G.RStructureArray {
		return arrayType(st)
	}
	return recordType(st)
}

// ArrayType := 'array' '[' int '..' int ']' 'of' BaseType
func arrayType(st *Parser) (*ir.Node, *Error) {
	_, err := Choose(st, G.ArrayType)
	if err != nil {
		return nil, err
	}
	kw, err := Expect(st, T.ARRAY)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.LEFTBRACKET)
	if err != nil {
		return nil, err
	}
	_, err = Choose(st, G.Low)
	if err != nil {
		return nil, err
	}
	low, err := literal(st)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.RANGE)
	if err != nil {
		return nil, err
	}
	_, err = Choose(st, G.Top)
	if err != nil {
		return nil, err
	}
	high, err := literal(st)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.RIGHTBRACKET)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.OF)
	if err != nil {
		return nil, err
	}
	elem, err := baseType(st)
	if err != nil {
		return nil, err
	}
	return CreateNode(nk.ArrayType, kw.Pos, low, high, elem), nil
}

// RecordType := 'record' FieldDecl {FieldDecl} 'end'
func recordType(st *Parser) (*ir.Node, *Error) {
	_, err := Choose(st, G.RecordType)
	if err != nil {
		return nil, err
	}
	kw, err := Expect(st, T.RECORD)
	if err != nil {
		return nil, err
	}
	var first, last *ir.Node
	for {
		n, err := fieldDecl(st)
		if err != nil {
			return nil, err
		}
		first, last = AddSibling(first, last, n)

		rule, err := Choose(st, G.FieldDecMore)
		if err != nil {
			return nil, err
		}
		if isEmpty(st, rule) {
			break
		}
	}
	_, err = Expect(st, T.END)
	if err != nil {
		return nil, err
	}
	return CreateNode(nk.RecordType, kw.Pos, first), nil
}

// FieldDecl := (BaseType | ArrayType) IdList ';'
func fieldDecl(st *Parser) (*ir.Node, *Error) {
	rule, err := Choose(st, G.FieldDecList)
	if err != nil {
		return nil, err
	}
	pos := st.Word.Pos
	var t *ir.Node
	if rule == G.RFieldDecBase {
		t, err = baseType(st)
	} else {
		t, err = arrayType(st)
	}
	if err != nil {
		return nil, err
	}
	ids, err := idList(st, G.IdList, G.IdMore)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return CreateNode(nk.VarDeclaration, pos, ids, t), nil
}

// idList parses one of the comma separated identifier lists, whose
// grammar is always list := id more, more := ',' list | ε.
func idList(st *Parser, list, more G.Symbol) (*ir.Node, *Error) {
	var first, last *ir.Node
	for {
		_, err := Choose(st, list)
		if err != nil {
			return nil, err
		}
		id, err := identifier(st)
		if err != nil {
			return nil, err
		}
		first, last = AddSibling(first, last, id)

		rule, err := Choose(st, more)
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

// VarDec := 'var' VarDecl {VarDecl}
func varDec(st *Parser) (*ir.Node, *Error) {
	rule, err := Choose(st, G.VarDec)
	if err != nil || isEmpty(st, rule) {
		return nil, err
	}
	_, err = Choose(st, G.VarDeclaration)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.VAR)
	if err != nil {
		return nil, err
	}
	var first, last *ir.Node
	for {
		n, err := varDecl(st)
		if err != nil {
			return nil, err
		}
		first, last = AddSibling(first, last, n)

		rule, err := Choose(st, G.VarDecMore)
		if err != nil {
			return nil, err
		}
		if isEmpty(st, rule) {
			return first, nil
		}
	}
}

// VarDecl := TypeName IdList ';'
func varDecl(st *Parser) (*ir.Node, *Error) {
	_, err := Choose(st, G.VarDecList)
	if err != nil {
		return nil, err
	}
	pos := st.Word.Pos
	t, err := typeName(st)
	if err != nil {
		return nil, err
	}
	ids, err := idList(st, G.VarIdList, G.VarIdMore)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return CreateNode(nk.VarDeclaration, pos, ids, t), nil
}

// ProcDec := ProcDecl {ProcDecl}
func procDec(st *Parser) (*ir.Node, *Error) {
	rule, err := Choose(st, G.ProcDec)
	if err != nil || isEmpty(st, rule) {
		return nil, err
	}
	var first, last *ir.Node
	for {
		n, err := procDecl(st)
		if err != nil {
			return nil, err
		}
		first, last = AddSibling(first, last, n)

		rule, err := Choose(st, G.ProcDecMore)
		if err != nil {
			return nil, err
		}
		if isEmpty(st, rule) {
			return first, nil
		}
	}
}

// ProcDecl := 'procedure' id '(' [Params] ')' ';' DeclarePart ProgramBody
func procDecl(st *Parser) (*ir.Node, *Error) {
	_, err := Choose(st, G.ProcDeclaration)
	if err != nil {
		return nil, err
	}
	kw, err := Expect(st, T.PROCEDURE)
	if err != nil {
		return nil, err
	}
	_, err = Choose(st, G.ProcName)
	if err != nil {
		return nil, err
	}
	name, err := identifier(st)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.LEFTPAREN)
	if err != nil {
		return nil, err
	}
	params, err := paramList(st)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.RIGHTPAREN)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.SEMICOLON)
	if err != nil {
		return nil, err
	}
	_, err = Choose(st, G.ProcDecPart)
	if err != nil {
		return nil, err
	}
	declare, err := declarePart(st)
	if err != nil {
		return nil, err
	}
	_, err = Choose(st, G.ProcBody)
	if err != nil {
		return nil, err
	}
	body, err := programBody(st)
	if err != nil {
		return nil, err
	}
	return CreateNode(nk.ProcDeclaration, kw.Pos, name, params, declare, body), nil
}

// Params := Param {';' Param}
func paramList(st *Parser) (*ir.Node, *Error) {
	rule, err := Choose(st, G.ParamList)
	if err != nil || isEmpty(st, rule) {
		return nil, err
	}
	var first, last *ir.Node
	for {
		_, err := Choose(st, G.ParamDecList)
		if err != nil {
			return nil, err
		}
		n, err := param(st)
		if err != nil {
			return nil, err
		}
		first, last = AddSibling(first, last, n)

		rule, err := Choose(st, G.ParamMore)
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

// Param := ['var'] TypeName IdList
func param(st *Parser) (*ir.Node, *Error) {
	rule, err := Choose(st, G.Param)
	if err != nil {
		return nil, err
	}
	pos := st.Word.Pos
	byRef := rule == G.RParamVar
	if byRef {
		_, err = Expect(st, T.VAR)
		if err != nil {
			return nil, err
		}
	}
	t, err := typeName(st)
	if err != nil {
		return nil, err
	}
	ids, err := idList(st, G.FormList, G.FidMore)
	if err != nil {
		return nil, err
	}
	n := CreateNode(nk.ParamDeclaration, pos, ids, t)
	n.ByRef = byRef
	return n, nil
}

// ProgramBody := 'begin' StmList 'end'
func programBody(st *Parser) (*ir.Node, *Error) {
	_, err := Choose(st, G.ProgramBody)
	if err != nil {
		return nil, err
	}
	kw, err := Expect(st, T.BEGIN)
	if err != nil {
		return nil, err
	}
	stms, err := stmList(st)
	if err != nil {
		return nil, err
	}
	_, err = Expect(st, T.END)
	if err != nil {
		return nil, err
	}
	return CreateNode(nk.ProgramBody, kw.Pos, stms), nil
}
