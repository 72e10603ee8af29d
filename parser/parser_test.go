package parser

import (
	et "github.com/isunjn/snlc/core/errorkind"
	ir "github.com/isunjn/snlc/core/module"
	nk "github.com/isunjn/snlc/core/module/nodekind"
	"github.com/isunjn/snlc/lexer"
	"github.com/isunjn/snlc/ll1"

	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func module(t *testing.T, src string) *ir.Module {
	t.Helper()
	tokens, errs := lexer.NewLexer("test.snl", src).ReadAll()
	if len(errs) > 0 {
		t.Fatalf("unexpected lexical error: %v", errs[0])
	}
	return &ir.Module{Name: "test", FullPath: "test.snl", Source: src, Tokens: tokens}
}

var programs = []string{
	"program p; var integer x; begin x:=1 end.",
	"program p begin x := 2+3*4 end.",
	"program p; begin x := 8-3-2; y := 8/4/2; z := (1+2)*3 end.",
	"program p; begin x := 1*(2+3)*4 - a.f[i+1] end.",
	"program p; begin x.f[j-1] := r.g; a[b[c]] := 'z' end.",
	"program p; begin f(); g(1); h(1, a+b, (c), d[2]); k(1,) end.",
	"program p; begin if a < b+1 then x := 1 else while a = 2*b do read(a) endwh fi end.",
	"program p; begin write(1); return(x - 1) end.",
	"program p; type t = integer; u = array [1..3] of char; r = record integer a, b; array [0..1] of char c; end; begin x := 1 end.",
	"program p; var t a; integer b, c; procedure q(var integer x, y; char z); var integer w; procedure inner(); begin w := 1 end begin inner() end procedure s(); begin q(b, c, 'a') end begin s() end.",
}

// sameTree parses src with both parsers. It reports whether ll1
// accepted the source at all.
func sameTree(t *testing.T, name, src string) bool {
	t.Helper()
	M := module(t, src)
	want, err := ll1.Parse(M)
	if err != nil {
		return false
	}
	got, err := Parse(M)
	if err != nil {
		t.Errorf("%v: descent failed where ll1 did not: %v", name, err)
		return true
	}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("%v: trees differ\nll1:%v\ndescent:%v", name, want, got)
	}
	return true
}

func TestSameTreeAsLL1(t *testing.T) {
	for i, src := range programs {
		if !sameTree(t, fmt.Sprintf("program %d", i), src) {
			t.Fatalf("program %d does not parse: %q", i, src)
		}
	}
	files := []string{}
	for _, pattern := range []string{"../testdata/*.snl", "../testdata/parser/*.snl", "../testdata/typechecker/*.snl"} {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			t.Fatal(err)
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		t.Fatal("no test files")
	}
	for _, file := range files {
		b, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		if !sameTree(t, file, string(b)) && !isErrorFile(file) {
			t.Errorf("%v: expected to parse", file)
		}
	}
}

// isErrorFile reports whether the file name carries an error code,
// as in name.E105.snl.
func isErrorFile(file string) bool {
	return strings.Count(filepath.Base(file), ".") > 1
}

func TestSameErrorsAsLL1(t *testing.T) {
	bad := []string{
		"program p; var integer x; begin x:=1.5 end.",
		"program p; begin x := 1 end. x",
		"program p; begin x := a[1].f end.",
		"program p; type t = array [1 10] of integer; begin x := 1 end.",
		"program p; begin end.",
		"program p; var integer x begin x := 1 end.",
		"program p; begin x := 1 end",
		"program p; begin x := (1 + 2 end.",
		"program p; begin f(1 2) end.",
		"program p; begin if x then y := 1 else y := 2 fi end.",
		"program p; procedure q(var ); begin x := 1 end begin q() end.",
		"program p; type r = record end; begin x := 1 end.",
		"program",
		"begin x := 1 end.",
	}
	for _, src := range bad {
		M := module(t, src)
		_, want := ll1.Parse(M)
		_, got := Parse(M)
		if want == nil || got == nil {
			t.Errorf("%q: expected both parsers to fail, got %v and %v", src, want, got)
			continue
		}
		if want.Code != got.Code || want.Message != got.Message || want.Line() != got.Line() || want.Column() != got.Column() {
			t.Errorf("%q: errors differ\nll1:     %v %v\ndescent: %v %v", src, want.Code, want, got.Code, got)
		}
	}
}

func TestTrailingComma(t *testing.T) {
	root, err := Parse(module(t, "program p; begin k(1,) end."))
	if err != nil {
		t.Fatal(err)
	}
	call := root.Leaf("body").Leaf("stms")
	if call.Kind != nk.CallStm || call.Leaf("args").Len() != 1 {
		t.Errorf("bad call %v", call)
	}
}

func TestExpectedEOF(t *testing.T) {
	_, err := Parse(module(t, "program p; begin x := 1 end. end"))
	if err == nil || err.Code != et.ExpectedEOF {
		t.Errorf("expected %v, got %v", et.ExpectedEOF, err)
	}
}
