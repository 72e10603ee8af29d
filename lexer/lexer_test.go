package lexer

import (
	"reflect"
	"testing"

	. "github.com/isunjn/snlc/core"
	et "github.com/isunjn/snlc/core/errorkind"
	T "github.com/isunjn/snlc/core/module/lexkind"
)

func lexKinds(t *testing.T, src string) []T.LexKind {
	t.Helper()
	tks, errs := NewLexer("test.snl", src).ReadAll()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	out := []T.LexKind{}
	for _, tk := range tks {
		out = append(out, tk.Kind)
	}
	return out
}

func TestTokenKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []T.LexKind
	}{
		{"empty", "", []T.LexKind{T.EOF}},
		{"assign", "x:=1", []T.LexKind{T.IDENTIFIER, T.ASSIGNMENT, T.INT_LIT, T.EOF}},
		{"range", "[1..10]", []T.LexKind{T.LEFTBRACKET, T.INT_LIT, T.RANGE, T.INT_LIT, T.RIGHTBRACKET, T.EOF}},
		{"float is three tokens", "1.5", []T.LexKind{T.INT_LIT, T.DOT, T.INT_LIT, T.EOF}},
		{"keywords", "program record read write return endwh",
			[]T.LexKind{T.PROGRAM, T.RECORD, T.READ, T.WRITE, T.RETURN, T.ENDWH, T.EOF}},
		{"keywords are case sensitive", "Begin", []T.LexKind{T.IDENTIFIER, T.EOF}},
		{"comment", "a { skip; this } b", []T.LexKind{T.IDENTIFIER, T.IDENTIFIER, T.EOF}},
		{"operators", "+-*/<=(),;", []T.LexKind{T.PLUS, T.MINUS, T.MULTIPLICATION, T.DIVISION,
			T.LESS, T.EQUALS, T.LEFTPAREN, T.RIGHTPAREN, T.COMMA, T.SEMICOLON, T.EOF}},
		{"char", "c := 'a'", []T.LexKind{T.IDENTIFIER, T.ASSIGNMENT, T.CHAR_LIT, T.EOF}},
		{"field", "r.f", []T.LexKind{T.IDENTIFIER, T.DOT, T.IDENTIFIER, T.EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lexKinds(t, tt.src)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPositionsAndText(t *testing.T) {
	src := "program p\nvar integer x1;\n  x1 := 42"
	tks, errs := NewLexer("test.snl", src).ReadAll()
	if len(errs) != 0 {
		t.Fatal(errs)
	}
	type tok struct {
		Kind T.LexKind
		Text string
		Pos  Position
	}
	want := []tok{
		{T.PROGRAM, "", Position{Line: 1, Column: 1}},
		{T.IDENTIFIER, "p", Position{Line: 1, Column: 9}},
		{T.VAR, "", Position{Line: 2, Column: 1}},
		{T.INTEGER, "", Position{Line: 2, Column: 5}},
		{T.IDENTIFIER, "x1", Position{Line: 2, Column: 13}},
		{T.SEMICOLON, "", Position{Line: 2, Column: 15}},
		{T.IDENTIFIER, "x1", Position{Line: 3, Column: 3}},
		{T.ASSIGNMENT, "", Position{Line: 3, Column: 6}},
		{T.INT_LIT, "42", Position{Line: 3, Column: 9}},
	}
	if len(tks) != len(want)+1 {
		t.Fatalf("got %d tokens, want %d", len(tks), len(want)+1)
	}
	for i, w := range want {
		got := tok{tks[i].Kind, tks[i].Text, tks[i].Pos}
		if got != w {
			t.Errorf("token %d: got %+v, want %+v", i, got, w)
		}
	}
	if tks[len(tks)-1].Kind != T.EOF {
		t.Errorf("last token is %v", tks[len(tks)-1])
	}
}

func TestErrorsAreCollected(t *testing.T) {
	src := "a # b\nc := 12ab; d : e\n'xy' } {never closed"
	tks, errs := NewLexer("test.snl", src).ReadAll()
	want := []struct {
		code et.ErrorKind
		pos  Position
	}{
		{et.InvalidSymbol, Position{Line: 1, Column: 3}},
		{et.IdentifierAfterNumber, Position{Line: 2, Column: 6}},
		{et.ExpectedAssignAfterColon, Position{Line: 2, Column: 14}},
		{et.InvalidCharLiteral, Position{Line: 3, Column: 1}},
		{et.UnmatchedCommentClose, Position{Line: 3, Column: 6}},
		{et.UnclosedComment, Position{Line: 3, Column: 8}},
	}
	if len(errs) != len(want) {
		t.Fatalf("got %d errors, want %d: %v", len(errs), len(want), errs)
	}
	for i, w := range want {
		if errs[i].Code != w.code {
			t.Errorf("error %d: code %v, want %v", i, errs[i].ErrCode(), w.code.String())
		}
		if errs[i].Location.Pos() != w.pos {
			t.Errorf("error %d: at %v, want %v", i, errs[i].Location.Pos(), w.pos)
		}
	}
	// lexing continues after each error
	names := []string{}
	for _, tk := range tks {
		if tk.Kind == T.IDENTIFIER {
			names = append(names, tk.Text)
		}
	}
	if !reflect.DeepEqual(names, []string{"a", "b", "c", "d", "e"}) {
		t.Errorf("identifiers = %v", names)
	}
}

func TestIntegerTooLarge(t *testing.T) {
	_, errs := NewLexer("", "99999999999999999999999").ReadAll()
	if len(errs) != 1 || errs[0].Code != et.IntegerTooLarge {
		t.Fatalf("errs = %v", errs)
	}
}

func TestIsValidIdentifier(t *testing.T) {
	for s, want := range map[string]bool{"abc": true, "a1": true, "1a": false, "begin": false, "a b": false} {
		if got := IsValidIdentifier(s); got != want {
			t.Errorf("IsValidIdentifier(%q) = %v", s, got)
		}
	}
}
