package grammar

import (
	lex "github.com/isunjn/snlc/core/module/lexkind"

	"strconv"
)

// Symbol is either a terminal, numerically equal to its LexKind, or a
// nonterminal, offset by NTBase.
type Symbol int

const NTBase Symbol = 1 << 12

const (
	Epsilon = Symbol(lex.EPSILON)
	EOF     = Symbol(lex.EOF)
)

func T(k lex.LexKind) Symbol {
	return Symbol(k)
}

func (s Symbol) IsNonterminal() bool {
	return s >= NTBase
}

func (s Symbol) IsTerminal() bool {
	return s < NTBase
}

// Kind is the LexKind of a terminal symbol.
func (s Symbol) Kind() lex.LexKind {
	if s.IsNonterminal() {
		panic("grammar: " + s.String() + " is not a terminal")
	}
	return lex.LexKind(s)
}

func (s Symbol) String() string {
	if s.IsNonterminal() {
		if v, ok := ntNames[s]; ok {
			return v
		}
		return "N" + strconv.Itoa(int(s-NTBase))
	}
	if v, ok := lex.Names[lex.LexKind(s)]; ok {
		return v
	}
	return "T" + strconv.Itoa(int(s))
}

// Describe is how a syntax error refers to what it expected.
func (s Symbol) Describe() string {
	if s.IsTerminal() {
		return lex.FmtToUser(s.Kind())
	}
	if v, ok := descriptions[s]; ok {
		return v
	}
	return s.String()
}

const (
	Program Symbol = NTBase + iota
	ProgramHead
	ProgramHeadEnd
	ProgramName
	DeclarePart
	TypeDec
	TypeDeclaration
	TypeDecList
	TypeDecMore
	TypeId
	TypeName
	BaseType
	StructureType
	ArrayType
	Low
	Top
	RecordType
	FieldDecList
	FieldDecMore
	IdList
	IdMore
	VarDec
	VarDeclaration
	VarDecList
	VarDecMore
	VarIdList
	VarIdMore
	ProcDec
	ProcDeclaration
	ProcDecMore
	ProcName
	ParamList
	ParamDecList
	ParamMore
	Param
	FormList
	FidMore
	ProcDecPart
	ProcBody
	ProgramBody
	StmList
	StmMore
	Stm
	AssCall
	AssignmentRest
	ConditionalStm
	LoopStm
	InputStm
	Invar
	OutputStm
	ReturnStm
	CallStmRest
	ActParamList
	ActParamMore
	RelExp
	OtherRelE
	Exp
	OtherTerm
	Term
	OtherFactor
	Factor
	Variable
	VariMore
	FieldVar
	FieldVarMore
	CmpOp
	AddOp
	MultOp
)

var ntNames = map[Symbol]string{
	Program:         "Program",
	ProgramHead:     "ProgramHead",
	ProgramHeadEnd:  "ProgramHeadEnd",
	ProgramName:     "ProgramName",
	DeclarePart:     "DeclarePart",
	TypeDec:         "TypeDec",
	TypeDeclaration: "TypeDeclaration",
	TypeDecList:     "TypeDecList",
	TypeDecMore:     "TypeDecMore",
	TypeId:          "TypeId",
	TypeName:        "TypeName",
	BaseType:        "BaseType",
	StructureType:   "StructureType",
	ArrayType:       "ArrayType",
	Low:             "Low",
	Top:             "Top",
	RecordType:      "RecordType",
	FieldDecList:    "FieldDecList",
	FieldDecMore:    "FieldDecMore",
	IdList:          "IdList",
	IdMore:          "IdMore",
	VarDec:          "VarDec",
	VarDeclaration:  "VarDeclaration",
	VarDecList:      "VarDecList",
	VarDecMore:      "VarDecMore",
	VarIdList:       "VarIdList",
	VarIdMore:       "VarIdMore",
	ProcDec:         "ProcDec",
	ProcDeclaration: "ProcDeclaration",
	ProcDecMore:     "ProcDecMore",
	ProcName:        "ProcName",
	ParamList:       "ParamList",
	ParamDecList:    "ParamDecList",
	ParamMore:       "ParamMore",
	Param:           "Param",
	FormList:        "FormList",
	FidMore:         "FidMore",
	ProcDecPart:     "ProcDecPart",
	ProcBody:        "ProcBody",
	ProgramBody:     "ProgramBody",
	StmList:         "StmList",
	StmMore:         "StmMore",
	Stm:             "Stm",
	AssCall:         "AssCall",
	AssignmentRest:  "AssignmentRest",
	ConditionalStm:  "ConditionalStm",
	LoopStm:         "LoopStm",
	InputStm:        "InputStm",
	Invar:           "Invar",
	OutputStm:       "OutputStm",
	ReturnStm:       "ReturnStm",
	CallStmRest:     "CallStmRest",
	ActParamList:    "ActParamList",
	ActParamMore:    "ActParamMore",
	RelExp:          "RelExp",
	OtherRelE:       "OtherRelE",
	Exp:             "Exp",
	OtherTerm:       "OtherTerm",
	Term:            "Term",
	OtherFactor:     "OtherFactor",
	Factor:          "Factor",
	Variable:        "Variable",
	VariMore:        "VariMore",
	FieldVar:        "FieldVar",
	FieldVarMore:    "FieldVarMore",
	CmpOp:           "CmpOp",
	AddOp:           "AddOp",
	MultOp:          "MultOp",
}

var descriptions = map[Symbol]string{
	Program:         "a program",
	ProgramHead:     "the program heading",
	ProgramHeadEnd:  "a declaration or 'begin'",
	ProgramName:     "the program name",
	DeclarePart:     "a declaration or 'begin'",
	TypeDec:         "a declaration or 'begin'",
	TypeDeclaration: "'type'",
	TypeDecList:     "a type declaration",
	TypeDecMore:     "a type declaration, 'var', 'procedure' or 'begin'",
	TypeId:          "a type name",
	TypeName:        "a type",
	BaseType:        "'integer' or 'char'",
	StructureType:   "'array' or 'record'",
	ArrayType:       "'array'",
	Low:             "the array's lower bound",
	Top:             "the array's upper bound",
	RecordType:      "'record'",
	FieldDecList:    "a field declaration",
	FieldDecMore:    "a field declaration or 'end'",
	IdList:          "an identifier",
	IdMore:          "',' or ';'",
	VarDec:          "'var', 'procedure' or 'begin'",
	VarDeclaration:  "'var'",
	VarDecList:      "a variable declaration",
	VarDecMore:      "a variable declaration, 'procedure' or 'begin'",
	VarIdList:       "an identifier",
	VarIdMore:       "',' or ';'",
	ProcDec:         "'procedure' or 'begin'",
	ProcDeclaration: "'procedure'",
	ProcDecMore:     "'procedure' or 'begin'",
	ProcName:        "a procedure name",
	ParamList:       "a parameter or ')'",
	ParamDecList:    "a parameter",
	ParamMore:       "';' or ')'",
	Param:           "a parameter",
	FormList:        "an identifier",
	FidMore:         "',', ';' or ')'",
	ProcDecPart:     "a declaration or 'begin'",
	ProcBody:        "'begin'",
	ProgramBody:     "'begin'",
	StmList:         "a statement",
	StmMore:         "';' or the end of the statement list",
	Stm:             "a statement",
	AssCall:         "':=', '[', '.' or '('",
	AssignmentRest:  "':=', '[' or '.'",
	ConditionalStm:  "'if'",
	LoopStm:         "'while'",
	InputStm:        "'read'",
	Invar:           "an identifier",
	OutputStm:       "'write'",
	ReturnStm:       "'return'",
	CallStmRest:     "'('",
	ActParamList:    "an argument or ')'",
	ActParamMore:    "',' or ')'",
	RelExp:          "a condition",
	OtherRelE:       "'<' or '='",
	Exp:             "an expression",
	OtherTerm:       "an operator or the end of the expression",
	Term:            "an expression",
	OtherFactor:     "an operator or the end of the expression",
	Factor:          "an operand",
	Variable:        "a variable",
	VariMore:        "'[', '.' or the end of the variable",
	FieldVar:        "a field name",
	FieldVarMore:    "'[' or the end of the variable",
	CmpOp:           "'<' or '='",
	AddOp:           "'+' or '-'",
	MultOp:          "'*' or '/'",
}
