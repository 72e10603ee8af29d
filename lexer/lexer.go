package lexer

import (
	ir "github.com/isunjn/snlc/core/module"
	T "github.com/isunjn/snlc/core/module/lexkind"

	. "github.com/isunjn/snlc/core"
	et "github.com/isunjn/snlc/core/errorkind"
	sv "github.com/isunjn/snlc/core/severity"

	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

func NewLexerError(st *Lexer, t et.ErrorKind, message string) *Error {
	return &Error{
		Code:     t,
		Severity: sv.Error,
		Location: st.GetSourceLocation(),
		Message:  message,
	}
}

type Lexer struct {
	Word ir.Token

	File                string
	BeginLine, BeginCol int
	EndLine, EndCol     int

	Start, End int
	Input      string
}

func NewLexer(filename string, s string) *Lexer {
	return &Lexer{
		File:      filename,
		Input:     s,
		BeginLine: 1,
		EndLine:   1,
	}
}

func (this *Lexer) GetSourceLocation() *Location {
	return &Location{
		File:  this.File,
		Range: this.Range(),
	}
}

// Next scans one token into Word. On error the offending text has been
// consumed, so calling Next again resumes after it.
func (this *Lexer) Next() *Error {
	symbol, err := any(this)
	ignore(this)
	if err != nil {
		return err
	}
	this.Word = symbol
	return nil
}

// ReadAll scans the whole input. The token list always ends with a
// single EOF token; every lexical error is collected.
func (this *Lexer) ReadAll() ([]ir.Token, []*Error) {
	output := []ir.Token{}
	errs := []*Error{}
	for {
		err := this.Next()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		output = append(output, this.Word)
		if this.Word.Kind == T.EOF {
			return output, errs
		}
	}
}

func (this *Lexer) Selected() string {
	return this.Input[this.Start:this.End]
}

func (this *Lexer) Range() *Range {
	return &Range{
		Begin: Position{
			Line:   this.BeginLine,
			Column: this.BeginCol + 1,
		},
		End: Position{
			Line:   this.EndLine,
			Column: this.EndCol,
		},
	}
}

func (this *Lexer) begin() Position {
	return Position{Line: this.BeginLine, Column: this.BeginCol + 1}
}

func genToken(l *Lexer, tp T.LexKind) ir.Token {
	return ir.Token{
		Kind: tp,
		Pos:  l.begin(),
	}
}

func genTextToken(l *Lexer, tp T.LexKind, text string) ir.Token {
	return ir.Token{
		Kind: tp,
		Text: text,
		Pos:  l.begin(),
	}
}

const eof rune = -1

func nextRune(l *Lexer) rune {
	if l.End >= len(l.Input) {
		return eof
	}
	r, size := utf8.DecodeRuneInString(l.Input[l.End:])
	l.End += size

	if r == '\n' {
		l.EndLine++
		l.EndCol = 0
	} else {
		l.EndCol++
	}
	return r
}

func peekRune(l *Lexer) rune {
	if l.End >= len(l.Input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.Input[l.End:])
	return r
}

/*ignore ignores the text previously read*/
func ignore(l *Lexer) {
	l.Start = l.End
	l.BeginLine = l.EndLine
	l.BeginCol = l.EndCol
}

func acceptRun(l *Lexer, s string) {
	r := peekRune(l)
	for r != eof && strings.ContainsRune(s, r) {
		nextRune(l)
		r = peekRune(l)
	}
}

func acceptUntil(l *Lexer, s string) {
	r := peekRune(l)
	for r != eof && !strings.ContainsRune(s, r) {
		nextRune(l)
		r = peekRune(l)
	}
}

const (
	digits  = "0123456789"
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

func isNumber(r rune) bool {
	return r != eof && strings.ContainsRune(digits, r)
}

func isLetter(r rune) bool {
	return r != eof && strings.ContainsRune(letters, r)
}

func ignoreWhitespace(st *Lexer) *Error {
	r := peekRune(st)
loop:
	for {
		switch r {
		case ' ', '\t', '\r', '\n':
			nextRune(st)
		case '{':
			ignore(st)
			err := comment(st)
			if err != nil {
				return err
			}
		default:
			break loop
		}
		r = peekRune(st)
	}
	ignore(st)
	return nil
}

func any(st *Lexer) (ir.Token, *Error) {
	var r rune
	var tp T.LexKind

	err := ignoreWhitespace(st)
	if err != nil {
		return ir.Token{}, err
	}

	r = peekRune(st)

	if isNumber(r) {
		return number(st)
	}
	if isLetter(r) {
		return identifier(st), nil
	}
	if r == '\'' {
		return charLit(st)
	}

	switch r {
	case '+':
		nextRune(st)
		tp = T.PLUS
	case '-':
		nextRune(st)
		tp = T.MINUS
	case '*':
		nextRune(st)
		tp = T.MULTIPLICATION
	case '/':
		nextRune(st)
		tp = T.DIVISION
	case '<':
		nextRune(st)
		tp = T.LESS
	case '=':
		nextRune(st)
		tp = T.EQUALS
	case '(':
		nextRune(st)
		tp = T.LEFTPAREN
	case ')':
		nextRune(st)
		tp = T.RIGHTPAREN
	case '[':
		nextRune(st)
		tp = T.LEFTBRACKET
	case ']':
		nextRune(st)
		tp = T.RIGHTBRACKET
	case ';':
		nextRune(st)
		tp = T.SEMICOLON
	case ',':
		nextRune(st)
		tp = T.COMMA
	case ':': // :=
		nextRune(st)
		r = peekRune(st)
		if r != '=' {
			return ir.Token{}, NewLexerError(st, et.ExpectedAssignAfterColon, "expected '=' after ':'")
		}
		nextRune(st)
		tp = T.ASSIGNMENT
	case '.': // . ..
		nextRune(st)
		r = peekRune(st)
		if r == '.' {
			nextRune(st)
			tp = T.RANGE
		} else {
			tp = T.DOT
		}
	case '}':
		nextRune(st)
		return ir.Token{}, NewLexerError(st, et.UnmatchedCommentClose, "'}' without a matching '{'")
	case eof:
		return genToken(st, T.EOF), nil
	default:
		nextRune(st)
		return ir.Token{}, InvalidSymbol(st, r)
	}
	return genToken(st, tp), nil
}

func InvalidSymbol(st *Lexer, r rune) *Error {
	return NewLexerError(st, et.InvalidSymbol, fmt.Sprintf("illegal character %q", r))
}

func number(st *Lexer) (ir.Token, *Error) {
	acceptRun(st, digits)
	if isLetter(peekRune(st)) {
		acceptRun(st, digits+letters)
		return ir.Token{}, NewLexerError(st, et.IdentifierAfterNumber,
			"an identifier or keyword cannot immediately follow an integer literal")
	}
	text := st.Selected()
	if _, err := strconv.Atoi(text); err != nil {
		return ir.Token{}, NewLexerError(st, et.IntegerTooLarge, "integer literal "+text+" is too large")
	}
	return genTextToken(st, T.INT_LIT, text), nil
}

func identifier(st *Lexer) ir.Token {
	r := peekRune(st)
	if !isLetter(r) {
		panic("identifier not beginning with letter")
	}
	acceptRun(st, digits+letters)
	selected := st.Selected()
	tp, ok := T.Keywords[selected]
	if ok {
		return genToken(st, tp)
	}
	return genTextToken(st, T.IDENTIFIER, selected)
}

func comment(st *Lexer) *Error {
	r := nextRune(st)
	if r != '{' {
		panic("internal error: comment without '{'")
	}
	acceptUntil(st, "}")
	if peekRune(st) == eof {
		return NewLexerError(st, et.UnclosedComment, "comment is never closed")
	}
	nextRune(st)
	return nil
}

// char literals hold exactly one letter or digit: 'a', '7'
func charLit(st *Lexer) (ir.Token, *Error) {
	r := nextRune(st)
	if r != '\'' {
		panic("internal error: char literal without '''")
	}
	c := nextRune(st)
	if !isLetter(c) && !isNumber(c) {
		skipCharLit(st, c)
		return ir.Token{}, NewLexerError(st, et.InvalidCharLiteral, "expected a letter or digit after '''")
	}
	if n := nextRune(st); n != '\'' {
		skipCharLit(st, n)
		return ir.Token{}, NewLexerError(st, et.InvalidCharLiteral, "char literal must hold exactly one character")
	}
	return genTextToken(st, T.CHAR_LIT, string(c)), nil
}

// skipCharLit consumes the rest of a malformed char literal, up to a
// closing quote on the same line.
func skipCharLit(st *Lexer, last rune) {
	if last == '\'' || last == '\n' || last == eof {
		return
	}
	acceptUntil(st, "'\n")
	if peekRune(st) == '\'' {
		nextRune(st)
	}
}

// IsValidIdentifier reports whether s lexes as a single identifier.
func IsValidIdentifier(s string) bool {
	st := NewLexer("", s)
	tks, errs := st.ReadAll()
	if len(errs) > 0 || len(tks) != 2 {
		return false
	}
	return tks[0].Kind == T.IDENTIFIER
}
