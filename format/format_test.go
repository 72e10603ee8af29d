package format

import (
	. "github.com/isunjn/snlc/core"
	ir "github.com/isunjn/snlc/core/module"
	"github.com/isunjn/snlc/lexer"
	"github.com/isunjn/snlc/ll1"

	"os"
	"reflect"
	"strings"
	"testing"
)

func parse(t *testing.T, src string) *ir.Node {
	t.Helper()
	tokens, errs := lexer.NewLexer("test.snl", src).ReadAll()
	if len(errs) > 0 {
		t.Fatalf("unexpected lexical error: %v\n%v", errs[0], src)
	}
	M := &ir.Module{Name: "test", FullPath: "test.snl", Source: src, Tokens: tokens}
	root, err := ll1.Parse(M)
	if err != nil {
		t.Fatalf("unexpected syntax error: %v\n%v", err, src)
	}
	return root
}

// unplace zeroes every position so trees of different layouts compare.
func unplace(n *ir.Node) {
	for ; n != nil; n = n.Sibling {
		n.Pos = Position{}
		for _, leaf := range n.Leaves {
			unplace(leaf)
		}
	}
}

var sources = []string{
	"program p; var integer x; begin x:=1 end.",
	"program p begin x := 2+3*4 end.",
	"program p; begin x := 8-(3-2); y := 8/4/2; z := (1+2)*3; w := ((a)) end.",
	"program p; begin x := 1*(2+3)*4 - a.f[i+1] end.",
	"program p; begin x.f[j-1] := r.g; a[b[c]] := 'z' end.",
	"program p; begin f(); g(1); h(1, a+b, (c), d[2]); k(1,) end.",
	"program p; begin if a < b+1 then x := 1 else while a = 2*b do read(a) endwh fi end.",
	"program p; type r = record integer a, b; array [0..1] of char c; end; begin x := 1 end.",
	"program p; procedure q(var integer x, y; char z); var integer w; procedure inner(); begin w := 1 end begin inner() end begin q(1, 2, 'c') end.",
}

func TestRoundTrip(t *testing.T) {
	b, err := os.ReadFile("../testdata/example.snl")
	if err != nil {
		t.Fatal(err)
	}
	for i, src := range append(sources, string(b)) {
		want := parse(t, src)
		text := Format(want)
		got := parse(t, text)
		if again := Format(got); again != text {
			t.Errorf("source %d: formatting is not stable\n%v\n---\n%v", i, text, again)
		}
		unplace(want)
		unplace(got)
		if !reflect.DeepEqual(want, got) {
			t.Errorf("source %d: trees differ after formatting\n%v", i, text)
		}
	}
}

func TestParenthesis(t *testing.T) {
	tcs := []struct {
		exp  string
		want string
	}{
		{"8-(3-2)", "8 - (3 - 2)"},
		{"(8-3)-2", "8 - 3 - 2"},
		{"(1+2)*3", "(1 + 2) * 3"},
		{"1+(2*3)", "1 + 2 * 3"},
		{"a/(b*c)", "a / (b * c)"},
		{"((x))", "x"},
		{"'c'", "'c'"},
	}
	for _, tc := range tcs {
		text := Format(parse(t, "program p; begin x := "+tc.exp+" end."))
		if !strings.Contains(text, "x := "+tc.want+"\n") {
			t.Errorf("%v: expected %q in:\n%v", tc.exp, tc.want, text)
		}
	}
}

func TestLayout(t *testing.T) {
	src := "program p; var integer x; begin if x < 1 then x := 1; x := 2 else read(x) fi end."
	want := strings.Join([]string{
		"program p;",
		"var",
		"\tinteger x;",
		"begin",
		"\tif x < 1 then",
		"\t\tx := 1;",
		"\t\tx := 2",
		"\telse",
		"\t\tread(x)",
		"\tfi",
		"end.",
		"",
	}, "\n")
	if got := Format(parse(t, src)); got != want {
		t.Errorf("expected:\n%v\ngot:\n%v", want, got)
	}
}

func TestInvalidIdentifier(t *testing.T) {
	root := parse(t, "program p; begin x := 1 end.")
	root.Leaf("name").Text = "1p"
	defer func() {
		if recover() == nil {
			t.Error("formatting an identifier that does not lex should panic")
		}
	}()
	Format(root)
}
