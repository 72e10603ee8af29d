package lexkind

import "strconv"

type LexKind int

const (
	UNDEFINED LexKind = iota

	IDENTIFIER
	INT_LIT
	CHAR_LIT

	// symbols
	PLUS
	MINUS
	MULTIPLICATION
	DIVISION
	LESS
	EQUALS
	LEFTPAREN
	RIGHTPAREN
	LEFTBRACKET
	RIGHTBRACKET
	SEMICOLON
	COMMA
	ASSIGNMENT
	DOT
	RANGE

	// keywords
	PROGRAM
	TYPE
	VAR
	PROCEDURE
	BEGIN
	END
	INTEGER
	CHAR
	ARRAY
	OF
	RECORD
	IF
	THEN
	ELSE
	FI
	WHILE
	DO
	ENDWH
	READ
	WRITE
	RETURN

	// special
	EPSILON // grammar only, never produced by the lexer

	EOF
)

// All lists every terminal that can appear in a token stream, EOF included.
func All() []LexKind {
	out := make([]LexKind, 0, int(EOF))
	for k := IDENTIFIER; k <= EOF; k++ {
		if k != EPSILON {
			out = append(out, k)
		}
	}
	return out
}

var Keywords = map[string]LexKind{
	"program":   PROGRAM,
	"type":      TYPE,
	"var":       VAR,
	"procedure": PROCEDURE,
	"begin":     BEGIN,
	"end":       END,
	"integer":   INTEGER,
	"char":      CHAR,
	"array":     ARRAY,
	"of":        OF,
	"record":    RECORD,
	"if":        IF,
	"then":      THEN,
	"else":      ELSE,
	"fi":        FI,
	"while":     WHILE,
	"do":        DO,
	"endwh":     ENDWH,
	"read":      READ,
	"write":     WRITE,
	"return":    RETURN,
}

func (t LexKind) String() string {
	return FmtLexKind(t)
}

func FmtLexKind(t LexKind) string {
	v, ok := Tktosrc[t]
	if ok {
		return v
	}
	panic("unspecified lexKind" + strconv.Itoa(int(t)))
}

func FmtTypes(t ...LexKind) string {
	out := Tktosrc[t[0]]
	for _, t := range t[1:] {
		out += "," + Tktosrc[t]
	}
	return out
}

var Tktosrc = map[LexKind]string{
	UNDEFINED:  "\033[0;31m?\033[0m",
	IDENTIFIER: "identifier",
	INT_LIT:    "integer literal",
	CHAR_LIT:   "char literal",

	PLUS:           "+",
	MINUS:          "-",
	MULTIPLICATION: "*",
	DIVISION:       "/",
	LESS:           "<",
	EQUALS:         "=",
	LEFTPAREN:      "(",
	RIGHTPAREN:     ")",
	LEFTBRACKET:    "[",
	RIGHTBRACKET:   "]",
	SEMICOLON:      ";",
	COMMA:          ",",
	ASSIGNMENT:     ":=",
	DOT:            ".",
	RANGE:          "..",

	PROGRAM:   "program",
	TYPE:      "type",
	VAR:       "var",
	PROCEDURE: "procedure",
	BEGIN:     "begin",
	END:       "end",
	INTEGER:   "integer",
	CHAR:      "char",
	ARRAY:     "array",
	OF:        "of",
	RECORD:    "record",
	IF:        "if",
	THEN:      "then",
	ELSE:      "else",
	FI:        "fi",
	WHILE:     "while",
	DO:        "do",
	ENDWH:     "endwh",
	READ:      "read",
	WRITE:     "write",
	RETURN:    "return",

	EPSILON: "ε",
	EOF:     "EOF",
}

// Names are the upper-case symbolic names used in grammar listings.
var Names = map[LexKind]string{
	IDENTIFIER:     "ID",
	INT_LIT:        "INTC",
	CHAR_LIT:       "CHARC",
	PLUS:           "PLUS",
	MINUS:          "MINUS",
	MULTIPLICATION: "TIMES",
	DIVISION:       "OVER",
	LESS:           "LT",
	EQUALS:         "EQ",
	LEFTPAREN:      "LPAREN",
	RIGHTPAREN:     "RPAREN",
	LEFTBRACKET:    "LMIDPAREN",
	RIGHTBRACKET:   "RMIDPAREN",
	SEMICOLON:      "SEMI",
	COMMA:          "COMMA",
	ASSIGNMENT:     "ASSIGN",
	DOT:            "DOT",
	RANGE:          "UNDERANGE",
	PROGRAM:        "PROGRAM",
	TYPE:           "TYPE",
	VAR:            "VAR",
	PROCEDURE:      "PROCEDURE",
	BEGIN:          "BEGIN",
	END:            "END",
	INTEGER:        "INTEGER",
	CHAR:           "CHAR",
	ARRAY:          "ARRAY",
	OF:             "OF",
	RECORD:         "RECORD",
	IF:             "IF",
	THEN:           "THEN",
	ELSE:           "ELSE",
	FI:             "FI",
	WHILE:          "WHILE",
	DO:             "DO",
	ENDWH:          "ENDWH",
	READ:           "READ",
	WRITE:          "WRITE",
	RETURN:         "RETURN",
	EPSILON:        "EPSILON",
	EOF:            "EOF",
}

func fmtToUser(t LexKind) string {
	v, ok := Tktosrc[t]
	if ok {
		return v
	}
	panic("unspecified nodeType")
}

func FmtToUser(t ...LexKind) string {
	out := "'" + fmtToUser(t[0]) + "'"
	for _, t := range t[1:] {
		out += ", '" + fmtToUser(t) + "'"
	}
	return out
}
