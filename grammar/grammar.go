package grammar

import (
	lex "github.com/isunjn/snlc/core/module/lexkind"

	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// RuleID numbers the productions of the SNL grammar. The names read
// "left side, alternative".
type RuleID int

const (
	RProgram RuleID = iota + 1
	RProgramHead
	RProgramName
	RDeclarePart
	RTypeDecEmpty
	RTypeDec
	RTypeDeclaration
	RTypeDecList
	RTypeDecMoreEmpty
	RTypeDecMore
	RTypeId
	RTypeNameBase
	RTypeNameStructure
	RTypeNameId
	RBaseInteger
	RBaseChar
	RStructureArray
	RStructureRecord
	RArrayType
	RLow
	RTop
	RRecordType
	RFieldDecBase
	RFieldDecArray
	RFieldDecMoreEmpty
	RFieldDecMore
	RIdList
	RIdMoreEmpty
	RIdMore
	RVarDecEmpty
	RVarDec
	RVarDeclaration
	RVarDecList
	RVarDecMoreEmpty
	RVarDecMore
	RVarIdList
	RVarIdMoreEmpty
	RVarIdMore
	RProcDecEmpty
	RProcDec
	RProcDeclaration
	RProcDecMoreEmpty
	RProcDecMore
	RProcName
	RParamListEmpty
	RParamList
	RParamDecList
	RParamMoreEmpty
	RParamMore
	RParamValue
	RParamVar
	RFormList
	RFidMoreEmpty
	RFidMore
	RProcDecPart
	RProcBody
	RProgramBody
	RStmList
	RStmMoreEmpty
	RStmMore
	RStmConditional
	RStmLoop
	RStmInput
	RStmOutput
	RStmReturn
	RStmAssCall
	RAssCallAssign
	RAssCallCall
	RAssignmentRest
	RConditionalStm
	RLoopStm
	RInputStm
	RInvar
	ROutputStm
	RReturnStm
	RCallStmRest
	RActParamListEmpty
	RActParamList
	RActParamMoreEmpty
	RActParamMore
	RRelExp
	ROtherRelE
	RExp
	ROtherTermEmpty
	ROtherTerm
	RTerm
	ROtherFactorEmpty
	ROtherFactor
	RFactorParen
	RFactorInt
	RFactorVariable
	RVariable
	RVariMoreEmpty
	RVariMoreIndex
	RVariMoreField
	RFieldVar
	RFieldVarMoreEmpty
	RFieldVarMoreIndex
	RCmpLess
	RCmpEqual
	RAddPlus
	RAddMinus
	RMultTimes
	RMultOver
	RProgramHeadEndEmpty
	RProgramHeadEnd
	RFactorChar

	lastRule = RFactorChar
)

func (id RuleID) String() string {
	return strconv.Itoa(int(id))
}

type Rule struct {
	ID    RuleID
	Left  Symbol
	Right []Symbol
}

// IsEmpty reports whether the rule derives EPSILON directly.
func (this *Rule) IsEmpty() bool {
	return len(this.Right) == 1 && this.Right[0] == Epsilon
}

func (this *Rule) String() string {
	output := make([]string, len(this.Right))
	for i, s := range this.Right {
		output[i] = s.String()
	}
	return this.Left.String() + " -> " + strings.Join(output, " ")
}

type Grammar struct {
	Start Symbol
	Rules []*Rule // Rules[i].ID == i+1

	alts      map[Symbol][]*Rule
	nonterms  []Symbol
	terminals []Symbol
}

// New validates a rule list: ids must be 1..n in order, EPSILON may only
// be the whole right side, and every nonterminal used must have a rule.
func New(start Symbol, rules []*Rule) (*Grammar, error) {
	g := &Grammar{
		Start: start,
		Rules: rules,
		alts:  map[Symbol][]*Rule{},
	}
	if !start.IsNonterminal() {
		return nil, fmt.Errorf("start symbol %v is not a nonterminal", start)
	}
	used := map[Symbol]bool{start: true}
	seenT := map[Symbol]bool{}
	for i, r := range rules {
		if r.ID != RuleID(i+1) {
			return nil, fmt.Errorf("rule %d has id %d", i+1, r.ID)
		}
		if !r.Left.IsNonterminal() {
			return nil, fmt.Errorf("rule %d: left side %v is a terminal", r.ID, r.Left)
		}
		if len(r.Right) == 0 {
			return nil, fmt.Errorf("rule %d: empty right side, use EPSILON", r.ID)
		}
		if _, ok := g.alts[r.Left]; !ok {
			g.nonterms = append(g.nonterms, r.Left)
		}
		g.alts[r.Left] = append(g.alts[r.Left], r)
		for _, s := range r.Right {
			switch {
			case s == Epsilon:
				if len(r.Right) != 1 {
					return nil, fmt.Errorf("rule %d: EPSILON must stand alone", r.ID)
				}
			case s == EOF:
				return nil, fmt.Errorf("rule %d: EOF cannot appear in a rule", r.ID)
			case s.IsNonterminal():
				used[s] = true
			default:
				seenT[s] = true
			}
		}
	}
	for s := range used {
		if _, ok := g.alts[s]; !ok {
			return nil, fmt.Errorf("nonterminal %v has no rules", s)
		}
	}
	for s := range seenT {
		g.terminals = append(g.terminals, s)
	}
	g.terminals = append(g.terminals, EOF)
	sort.Slice(g.terminals, func(i, j int) bool {
		return g.terminals[i] < g.terminals[j]
	})
	return g, nil
}

func (this *Grammar) Rule(id RuleID) *Rule {
	if id < 1 || int(id) > len(this.Rules) {
		panic("grammar: no rule " + id.String())
	}
	return this.Rules[id-1]
}

func (this *Grammar) Alternatives(nt Symbol) []*Rule {
	return this.alts[nt]
}

// Nonterminals are listed in order of first definition.
func (this *Grammar) Nonterminals() []Symbol {
	return this.nonterms
}

// Terminals that occur in some rule, plus EOF, in LexKind order.
func (this *Grammar) Terminals() []Symbol {
	return this.terminals
}

func (this *Grammar) String() string {
	output := []string{}
	for _, r := range this.Rules {
		output = append(output, fmt.Sprintf("%3d  %v", r.ID, r))
	}
	return strings.Join(output, "\n")
}

var (
	snlOnce sync.Once
	snl     *Grammar
)

// SNL returns the grammar of the language. It is built once and must
// not be modified.
func SNL() *Grammar {
	snlOnce.Do(func() {
		g, err := New(Program, snlRules())
		if err != nil {
			panic("grammar: invalid SNL grammar: " + err.Error())
		}
		snl = g
	})
	return snl
}

func r(id RuleID, left Symbol, right ...Symbol) *Rule {
	return &Rule{ID: id, Left: left, Right: right}
}

func snlRules() []*Rule {
	var (
		ID        = T(lex.IDENTIFIER)
		INTC      = T(lex.INT_LIT)
		CHARC     = T(lex.CHAR_LIT)
		PLUS      = T(lex.PLUS)
		MINUS     = T(lex.MINUS)
		TIMES     = T(lex.MULTIPLICATION)
		OVER      = T(lex.DIVISION)
		LT        = T(lex.LESS)
		EQ        = T(lex.EQUALS)
		LPAREN    = T(lex.LEFTPAREN)
		RPAREN    = T(lex.RIGHTPAREN)
		LBRACKET  = T(lex.LEFTBRACKET)
		RBRACKET  = T(lex.RIGHTBRACKET)
		SEMI      = T(lex.SEMICOLON)
		COMMA     = T(lex.COMMA)
		ASSIGN    = T(lex.ASSIGNMENT)
		DOT       = T(lex.DOT)
		RANGE     = T(lex.RANGE)
		PROGRAM   = T(lex.PROGRAM)
		TYPE      = T(lex.TYPE)
		VAR       = T(lex.VAR)
		PROCEDURE = T(lex.PROCEDURE)
		BEGIN     = T(lex.BEGIN)
		END       = T(lex.END)
		INTEGER   = T(lex.INTEGER)
		CHAR      = T(lex.CHAR)
		ARRAY     = T(lex.ARRAY)
		OF        = T(lex.OF)
		RECORD    = T(lex.RECORD)
		IF        = T(lex.IF)
		THEN      = T(lex.THEN)
		ELSE      = T(lex.ELSE)
		FI        = T(lex.FI)
		WHILE     = T(lex.WHILE)
		DO        = T(lex.DO)
		ENDWH     = T(lex.ENDWH)
		READ      = T(lex.READ)
		WRITE     = T(lex.WRITE)
		RETURN    = T(lex.RETURN)
	)
	return []*Rule{
		r(RProgram, Program, ProgramHead, DeclarePart, ProgramBody, DOT),
		r(RProgramHead, ProgramHead, PROGRAM, ProgramName, ProgramHeadEnd),
		r(RProgramName, ProgramName, ID),
		r(RDeclarePart, DeclarePart, TypeDec, VarDec, ProcDec),
		r(RTypeDecEmpty, TypeDec, Epsilon),
		r(RTypeDec, TypeDec, TypeDeclaration),
		r(RTypeDeclaration, TypeDeclaration, TYPE, TypeDecList),
		r(RTypeDecList, TypeDecList, TypeId, EQ, TypeName, SEMI, TypeDecMore),
		r(RTypeDecMoreEmpty, TypeDecMore, Epsilon),
		r(RTypeDecMore, TypeDecMore, TypeDecList),
		r(RTypeId, TypeId, ID),
		r(RTypeNameBase, TypeName, BaseType),
		r(RTypeNameStructure, TypeName, StructureType),
		r(RTypeNameId, TypeName, ID),
		r(RBaseInteger, BaseType, INTEGER),
		r(RBaseChar, BaseType, CHAR),
		r(RStructureArray, StructureType, ArrayType),
		r(RStructureRecord, StructureType, RecordType),
		r(RArrayType, ArrayType, ARRAY, LBRACKET, Low, RANGE, Top, RBRACKET, OF, BaseType),
		r(RLow, Low, INTC),
		r(RTop, Top, INTC),
		r(RRecordType, RecordType, RECORD, FieldDecList, END),
		r(RFieldDecBase, FieldDecList, BaseType, IdList, SEMI, FieldDecMore),
		r(RFieldDecArray, FieldDecList, ArrayType, IdList, SEMI, FieldDecMore),
		r(RFieldDecMoreEmpty, FieldDecMore, Epsilon),
		r(RFieldDecMore, FieldDecMore, FieldDecList),
		r(RIdList, IdList, ID, IdMore),
		r(RIdMoreEmpty, IdMore, Epsilon),
		r(RIdMore, IdMore, COMMA, IdList),
		r(RVarDecEmpty, VarDec, Epsilon),
		r(RVarDec, VarDec, VarDeclaration),
		r(RVarDeclaration, VarDeclaration, VAR, VarDecList),
		r(RVarDecList, VarDecList, TypeName, VarIdList, SEMI, VarDecMore),
		r(RVarDecMoreEmpty, VarDecMore, Epsilon),
		r(RVarDecMore, VarDecMore, VarDecList),
		r(RVarIdList, VarIdList, ID, VarIdMore),
		r(RVarIdMoreEmpty, VarIdMore, Epsilon),
		r(RVarIdMore, VarIdMore, COMMA, VarIdList),
		r(RProcDecEmpty, ProcDec, Epsilon),
		r(RProcDec, ProcDec, ProcDeclaration),
		r(RProcDeclaration, ProcDeclaration, PROCEDURE, ProcName, LPAREN, ParamList, RPAREN, SEMI, ProcDecPart, ProcBody, ProcDecMore),
		r(RProcDecMoreEmpty, ProcDecMore, Epsilon),
		r(RProcDecMore, ProcDecMore, ProcDeclaration),
		r(RProcName, ProcName, ID),
		r(RParamListEmpty, ParamList, Epsilon),
		r(RParamList, ParamList, ParamDecList),
		r(RParamDecList, ParamDecList, Param, ParamMore),
		r(RParamMoreEmpty, ParamMore, Epsilon),
		r(RParamMore, ParamMore, SEMI, ParamDecList),
		r(RParamValue, Param, TypeName, FormList),
		r(RParamVar, Param, VAR, TypeName, FormList),
		r(RFormList, FormList, ID, FidMore),
		r(RFidMoreEmpty, FidMore, Epsilon),
		r(RFidMore, FidMore, COMMA, FormList),
		r(RProcDecPart, ProcDecPart, DeclarePart),
		r(RProcBody, ProcBody, ProgramBody),
		r(RProgramBody, ProgramBody, BEGIN, StmList, END),
		r(RStmList, StmList, Stm, StmMore),
		r(RStmMoreEmpty, StmMore, Epsilon),
		r(RStmMore, StmMore, SEMI, StmList),
		r(RStmConditional, Stm, ConditionalStm),
		r(RStmLoop, Stm, LoopStm),
		r(RStmInput, Stm, InputStm),
		r(RStmOutput, Stm, OutputStm),
		r(RStmReturn, Stm, ReturnStm),
		r(RStmAssCall, Stm, ID, AssCall),
		r(RAssCallAssign, AssCall, AssignmentRest),
		r(RAssCallCall, AssCall, CallStmRest),
		r(RAssignmentRest, AssignmentRest, VariMore, ASSIGN, Exp),
		r(RConditionalStm, ConditionalStm, IF, RelExp, THEN, StmList, ELSE, StmList, FI),
		r(RLoopStm, LoopStm, WHILE, RelExp, DO, StmList, ENDWH),
		r(RInputStm, InputStm, READ, LPAREN, Invar, RPAREN),
		r(RInvar, Invar, ID),
		r(ROutputStm, OutputStm, WRITE, LPAREN, Exp, RPAREN),
		r(RReturnStm, ReturnStm, RETURN, LPAREN, Exp, RPAREN),
		r(RCallStmRest, CallStmRest, LPAREN, ActParamList, RPAREN),
		r(RActParamListEmpty, ActParamList, Epsilon),
		r(RActParamList, ActParamList, Exp, ActParamMore),
		r(RActParamMoreEmpty, ActParamMore, Epsilon),
		r(RActParamMore, ActParamMore, COMMA, ActParamList),
		r(RRelExp, RelExp, Exp, OtherRelE),
		r(ROtherRelE, OtherRelE, CmpOp, Exp),
		r(RExp, Exp, Term, OtherTerm),
		r(ROtherTermEmpty, OtherTerm, Epsilon),
		r(ROtherTerm, OtherTerm, AddOp, Exp),
		r(RTerm, Term, Factor, OtherFactor),
		r(ROtherFactorEmpty, OtherFactor, Epsilon),
		r(ROtherFactor, OtherFactor, MultOp, Term),
		r(RFactorParen, Factor, LPAREN, Exp, RPAREN),
		r(RFactorInt, Factor, INTC),
		r(RFactorVariable, Factor, Variable),
		r(RVariable, Variable, ID, VariMore),
		r(RVariMoreEmpty, VariMore, Epsilon),
		r(RVariMoreIndex, VariMore, LBRACKET, Exp, RBRACKET),
		r(RVariMoreField, VariMore, DOT, FieldVar),
		r(RFieldVar, FieldVar, ID, FieldVarMore),
		r(RFieldVarMoreEmpty, FieldVarMore, Epsilon),
		r(RFieldVarMoreIndex, FieldVarMore, LBRACKET, Exp, RBRACKET),
		r(RCmpLess, CmpOp, LT),
		r(RCmpEqual, CmpOp, EQ),
		r(RAddPlus, AddOp, PLUS),
		r(RAddMinus, AddOp, MINUS),
		r(RMultTimes, MultOp, TIMES),
		r(RMultOver, MultOp, OVER),
		r(RProgramHeadEndEmpty, ProgramHeadEnd, Epsilon),
		r(RProgramHeadEnd, ProgramHeadEnd, SEMI),
		r(RFactorChar, Factor, CHARC),
	}
}
