package nodekind

import "strconv"

type NodeKind int

const (
	Invalid NodeKind = iota

	Program
	DeclarePart
	TypeDeclaration
	VarDeclaration
	ParamDeclaration
	ProcDeclaration

	IntegerType
	CharType
	ArrayType
	RecordType
	IdType

	ProgramBody
	IfStm
	WhileStm
	ReadStm
	WriteStm
	ReturnStm
	AssignStm
	CallStm

	OpExp
	ConstExp
	IdExp
	Variable
	ArrayVariMore
	FieldVariMore

	Identifier
	IntegerLiteral
	CharLiteral
)

var names = map[NodeKind]string{
	Invalid:          "Invalid",
	Program:          "Program",
	DeclarePart:      "DeclarePart",
	TypeDeclaration:  "TypeDeclaration",
	VarDeclaration:   "VarDeclaration",
	ParamDeclaration: "ParamDeclaration",
	ProcDeclaration:  "ProcDeclaration",
	IntegerType:      "IntegerType",
	CharType:         "CharType",
	ArrayType:        "ArrayType",
	RecordType:       "RecordType",
	IdType:           "IdType",
	ProgramBody:      "ProgramBody",
	IfStm:            "IfStm",
	WhileStm:         "WhileStm",
	ReadStm:          "ReadStm",
	WriteStm:         "WriteStm",
	ReturnStm:        "ReturnStm",
	AssignStm:        "AssignStm",
	CallStm:          "CallStm",
	OpExp:            "OpExp",
	ConstExp:         "ConstExp",
	IdExp:            "IdExp",
	Variable:         "Variable",
	ArrayVariMore:    "ArrayVariMore",
	FieldVariMore:    "FieldVariMore",
	Identifier:       "Identifier",
	IntegerLiteral:   "IntegerLiteral",
	CharLiteral:      "CharLiteral",
}

func (this NodeKind) String() string {
	v, ok := names[this]
	if !ok {
		panic("nodekind: " + strconv.Itoa(int(this)) + " is not stringified")
	}
	return v
}

// layouts name the leaves of each kind, by index. Lists (declarations,
// statements, identifiers, arguments) hang from a single leaf and are
// chained through Node.Sibling.
var layouts = map[NodeKind][]string{
	Program:          {"name", "declare", "body"},
	DeclarePart:      {"types", "vars", "procs"},
	TypeDeclaration:  {"id", "type"},
	VarDeclaration:   {"ids", "type"},
	ParamDeclaration: {"ids", "type"},
	ProcDeclaration:  {"name", "params", "declare", "body"},
	ArrayType:        {"low", "high", "elem"},
	RecordType:       {"fields"},
	IdType:           {"id"},
	ProgramBody:      {"stms"},
	IfStm:            {"test", "then", "else"},
	WhileStm:         {"test", "body"},
	ReadStm:          {"to"},
	WriteStm:         {"what"},
	ReturnStm:        {"what"},
	AssignStm:        {"left", "right"},
	CallStm:          {"fn", "args"},
	OpExp:            {"left", "right"},
	ConstExp:         {"content"},
	IdExp:            {"content"},
	Variable:         {"id", "more"},
	ArrayVariMore:    {"index"},
	FieldVariMore:    {"id", "more"},
}

// Layout returns the leaf names of a kind; leaves have no entries.
func Layout(k NodeKind) []string {
	return layouts[k]
}

func Arity(k NodeKind) int {
	return len(layouts[k])
}

// Leaf resolves a leaf name to its index, panicking on unknown names.
func Leaf(k NodeKind, name string) int {
	for i, n := range layouts[k] {
		if n == name {
			return i
		}
	}
	panic("nodekind: " + k.String() + " has no leaf " + name)
}

func IsStatement(k NodeKind) bool {
	return k >= IfStm && k <= CallStm
}

func IsExpression(k NodeKind) bool {
	return k == OpExp || k == ConstExp || k == IdExp
}

func IsType(k NodeKind) bool {
	return k >= IntegerType && k <= IdType
}
