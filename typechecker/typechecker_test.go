package typechecker

import (
	. "github.com/isunjn/snlc/core"
	et "github.com/isunjn/snlc/core/errorkind"
	ir "github.com/isunjn/snlc/core/module"
	T "github.com/isunjn/snlc/core/module/types"
	"github.com/isunjn/snlc/lexer"
	"github.com/isunjn/snlc/ll1"

	"os"
	"strings"
	"testing"
)

func module(t *testing.T, src string) *ir.Module {
	t.Helper()
	tokens, errs := lexer.NewLexer("test.snl", src).ReadAll()
	if len(errs) > 0 {
		t.Fatalf("unexpected lexical error: %v", errs[0])
	}
	M := &ir.Module{Name: "test", FullPath: "test.snl", Source: src, Tokens: tokens}
	root, err := ll1.Parse(M)
	if err != nil {
		t.Fatalf("unexpected syntax error: %v", err)
	}
	M.Root = root
	return M
}

type expected struct {
	code et.ErrorKind
	line int
}

func codes(errs []*Error) string {
	output := []string{}
	for _, e := range errs {
		output = append(output, e.String())
	}
	return strings.Join(output, "\n")
}

func TestExampleIsClean(t *testing.T) {
	b, err := os.ReadFile("../testdata/example.snl")
	if err != nil {
		t.Fatal(err)
	}
	if errs := Check(module(t, string(b))); len(errs) != 0 {
		t.Errorf("expected no errors, got:\n%v", codes(errs))
	}
}

func TestCheck(t *testing.T) {
	tcs := []struct {
		name string
		src  string
		want []expected
	}{
		{
			"minimal",
			"program p; var integer x; begin x:=1 end.",
			nil,
		},
		{
			"duplicate variable keeps first",
			"program p;\nvar integer x;\n    char x;\nbegin\n  x := 1\nend.",
			[]expected{{et.NameAlreadyDefined, 3}},
		},
		{
			"program name is bound",
			"program p;\nvar integer p;\nbegin\n  p()\nend.",
			[]expected{{et.NameAlreadyDefined, 2}},
		},
		{
			"char assigned to integer",
			"program p;\nvar integer x;\n    char c;\nbegin\n  x := c\nend.",
			[]expected{{et.MismatchedTypeInAssign, 5}},
		},
		{
			"undeclared call still checks arguments",
			"program p;\nbegin\n  f(y,\n    1 + 'a')\nend.",
			[]expected{{et.NameNotDefined, 3}, {et.NameNotDefined, 3}, {et.OperationBetweenUnequalTypes, 4}},
		},
		{
			"not a procedure",
			"program p;\nvar integer x;\nbegin\n  x(1)\nend.",
			[]expected{{et.ExpectedProcedure, 4}},
		},
		{
			"arity reported once",
			"program p;\nprocedure q(integer a);\nbegin a := 1 end\nbegin\n  q(1, 'c')\nend.",
			[]expected{{et.InvalidNumberOfArgs, 5}},
		},
		{
			"argument type",
			"program p;\nprocedure q(integer a; char b);\nbegin a := 1 end\nbegin\n  q(1, 2)\nend.",
			[]expected{{et.MismatchedTypeForArgument, 5}},
		},
		{
			"var parameter needs a variable",
			"program p;\nvar integer x;\nprocedure q(var integer a);\nbegin a := 1 end\nbegin\n  q(x);\n  q(x + 1)\nend.",
			[]expected{{et.ExpectedVariableArgument, 7}},
		},
		{
			"unknown type binds silently",
			"program p;\nvar t x;\nbegin\n  x := 1;\n  x := 'c';\n  x[1] := x.f\nend.",
			[]expected{{et.NameNotDefined, 2}},
		},
		{
			"forward type reference",
			"program p;\ntype a = integer;\n     b = c;\n     c = integer;\nbegin\n  p()\nend.",
			[]expected{{et.NameNotDefined, 3}},
		},
		{
			"not a type",
			"program p;\ntype t = p;\nbegin\n  p()\nend.",
			[]expected{{et.ExpectedType, 2}},
		},
		{
			"not a variable",
			"program p;\nbegin\n  p := 1;\n  read(p)\nend.",
			[]expected{{et.ExpectedVariable, 3}, {et.ExpectedVariable, 4}},
		},
		{
			"read of unknown name",
			"program p;\nbegin\n  read(z)\nend.",
			[]expected{{et.NameNotDefined, 3}},
		},
		{
			"not an array",
			"program p;\nvar integer x;\nbegin\n  x[1] := 2\nend.",
			[]expected{{et.ExpectedArray, 4}},
		},
		{
			"index of a non array is checked",
			"program p;\nvar integer x;\nbegin\n  x[y] := 2\nend.",
			[]expected{{et.NameNotDefined, 4}, {et.ExpectedArray, 4}},
		},
		{
			"not a record",
			"program p;\nvar integer x;\nbegin\n  x.f := 1\nend.",
			[]expected{{et.ExpectedRecord, 4}},
		},
		{
			"field not found",
			"program p;\ntype r = record integer a; end;\nvar r v;\nbegin\n  v.a := 1;\n  v.b := 1\nend.",
			[]expected{{et.FieldNotDefined, 6}},
		},
		{
			"duplicate field",
			"program p;\ntype r = record integer a;\n  char a; end;\nvar r v;\nbegin\n  v.a := 1\nend.",
			[]expected{{et.NameAlreadyDefined, 3}},
		},
		{
			"index not integer",
			"program p;\nvar array [1..2] of integer a;\n    char c;\nbegin\n  a[c] := 1\nend.",
			[]expected{{et.IndexMustBeInteger, 5}},
		},
		{
			"operator mismatch does not cascade",
			"program p;\nvar integer x;\nbegin\n  x := 1 + 'a'\nend.",
			[]expected{{et.OperationBetweenUnequalTypes, 4}},
		},
		{
			"arithmetic on chars",
			"program p;\nvar char c;\nbegin\n  c := 'a' + 'b'\nend.",
			[]expected{{et.ExpectedInteger, 4}},
		},
		{
			"comparison of equal types",
			"program p;\nvar integer x;\nbegin\n  if 'a' = 'b' then x := 1 else x := 2 fi;\n  while x < 'c' do x := 1 endwh\nend.",
			[]expected{{et.OperationBetweenUnequalTypes, 5}},
		},
		{
			"inverted array bounds",
			"program p;\nvar array [5..1] of integer a;\nbegin\n  a[1] := 1\nend.",
			[]expected{{et.InvalidArrayBounds, 2}},
		},
		{
			"parameter and local collide",
			"program p;\nprocedure q(integer a);\nvar integer a;\nbegin a := 1 end\nbegin\n  q(1)\nend.",
			[]expected{{et.NameAlreadyDefined, 3}},
		},
		{
			"later procedures are invisible",
			"program p;\nprocedure a();\nbegin\n  b()\nend\nprocedure b();\nbegin\n  a()\nend\nbegin\n  a()\nend.",
			[]expected{{et.NameNotDefined, 4}},
		},
		{
			"self recursion",
			"program p;\nprocedure a(integer n);\nbegin\n  a(n - 1)\nend\nbegin\n  a(3)\nend.",
			nil,
		},
		{
			"shadowing",
			"program p;\nvar integer x;\nprocedure q();\nvar char x;\nbegin\n  x := 'c'\nend\nbegin\n  x := 1\nend.",
			nil,
		},
		{
			"array types are nominal",
			"program p;\ntype t1 = array [1..2] of integer;\n     t2 = array [1..2] of integer;\nvar t1 a, c;\n    t2 b;\nbegin\n  a := c;\n  a := b\nend.",
			[]expected{{et.MismatchedTypeInAssign, 8}},
		},
		{
			"parameter types resolve outside",
			"program p;\ntype t = integer;\nprocedure q(t a);\ntype t = char;\nvar t b;\nbegin\n  a := 1;\n  b := 'c'\nend\nbegin\n  q(1)\nend.",
			nil,
		},
		{
			"field then index",
			"program p;\ntype r = record array [0..3] of char d; end;\nvar r v;\nbegin\n  v.d[1] := 'c';\n  v.d[1] := 1\nend.",
			[]expected{{et.MismatchedTypeInAssign, 6}},
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			errs := Check(module(t, tc.src))
			if len(errs) != len(tc.want) {
				t.Fatalf("expected %d errors, got %d:\n%v", len(tc.want), len(errs), codes(errs))
			}
			for i, e := range errs {
				if e.Code != tc.want[i].code || e.Line() != tc.want[i].line {
					t.Errorf("error %d: expected %v on line %d, got:\n%v",
						i, tc.want[i].code, tc.want[i].line, e)
				}
			}
		})
	}
}

func TestErrorPositions(t *testing.T) {
	src := "program p;\nvar integer x;\n    char x;\nbegin\n  x := 1 + y\nend."
	errs := Check(module(t, src))
	want := []Position{{Line: 3, Column: 10}, {Line: 5, Column: 12}}
	if len(errs) != len(want) {
		t.Fatalf("expected %d errors, got:\n%v", len(want), codes(errs))
	}
	for i, e := range errs {
		if e.Location.Pos() != want[i] {
			t.Errorf("error %d: expected %v, got %v", i, want[i], e.Location.Pos())
		}
	}
	if !strings.Contains(errs[1].Message, "`y` not found") {
		t.Errorf("unexpected message %q", errs[1].Message)
	}
}

func TestTypesAreRecorded(t *testing.T) {
	M := module(t, "program p;\ntype a = array [1..3] of char;\n     r = record integer f; array [0..1] of integer g; end;\nbegin\n  p()\nend.")
	Check(M)
	if M.Types == nil {
		t.Fatal("no arena recorded")
	}
	if M.Types.Len() != 7 {
		t.Fatalf("expected 7 types, got %d", M.Types.Len())
	}
	if s := M.Types.String(4); s != "array [1..3] of char" {
		t.Errorf("unexpected array %v", s)
	}
	rec := M.Types.Get(6)
	if rec.Kind != T.RecordKind || len(rec.Record.Fields) != 2 {
		t.Errorf("unexpected record %v", M.Types.String(6))
	}
}
