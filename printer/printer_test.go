package printer

import (
	. "github.com/isunjn/snlc/core"
	et "github.com/isunjn/snlc/core/errorkind"
	"github.com/isunjn/snlc/core/util"
	"github.com/isunjn/snlc/lexer"
	"github.com/isunjn/snlc/predict"

	"gopkg.in/yaml.v3"

	"reflect"
	"strings"
	"testing"
)

func TestDiagnostic(t *testing.T) {
	src := "program p;\nvar integer x;\n\tchar x;\nbegin x := 1 end."
	err := util.NewCompilerError("p.snl", et.NameAlreadyDefined, Position{Line: 3, Column: 7}, "Duplicate identifier")
	got := New(false).Diagnostic(err, src)
	want := "p.snl:3:7 error: Duplicate identifier [E002]\n" +
		"   3 | \tchar x;\n" +
		"     | \t     ^\n"
	if got != want {
		t.Errorf("expected:\n%q\ngot:\n%q", want, got)
	}
}

func TestDiagnosticWithoutSource(t *testing.T) {
	err := util.NewCompilerError("p.snl", et.ExpectedEOF, Position{Line: 9, Column: 1}, "unexpected 'x'")
	got := New(false).Diagnostic(err, "program p")
	if got != "p.snl:9:1 error: unexpected 'x' [E107]\n" {
		t.Errorf("unexpected %q", got)
	}
}

func TestTokens(t *testing.T) {
	tokens, errs := lexer.NewLexer("t.snl", "x := 'a'").ReadAll()
	if len(errs) != 0 {
		t.Fatal(errs[0])
	}
	lines := strings.Split(strings.TrimSuffix(New(false).Tokens(tokens), "\n"), "\n")
	if len(lines) != len(tokens) {
		t.Fatalf("expected %d lines, got %d", len(tokens), len(lines))
	}
	if !strings.HasPrefix(lines[0], "1:1") || !strings.HasSuffix(lines[0], " x") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.HasSuffix(lines[2], " a") {
		t.Errorf("unexpected char line %q", lines[2])
	}
}

func TestSetsYAMLRoundTrip(t *testing.T) {
	want := DumpSets(predict.SNL())
	text, err := YAML(want)
	if err != nil {
		t.Fatal(err)
	}
	got := &SetsDump{}
	if err := yaml.Unmarshal([]byte(text), got); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("sets changed after a round trip through yaml")
	}
	if len(got.Predict) != len(predict.SNL().Grammar.Rules) {
		t.Errorf("expected one predict set per rule, got %d", len(got.Predict))
	}
}

func TestTableYAMLRoundTrip(t *testing.T) {
	want := DumpTable(predict.SNL())
	text, err := YAML(want)
	if err != nil {
		t.Fatal(err)
	}
	got := TableDump{}
	if err := yaml.Unmarshal([]byte(text), &got); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("table changed after a round trip through yaml")
	}
	if got["Program"]["PROGRAM"] != 1 {
		t.Errorf("expected Program on PROGRAM to select rule 1, got %v", got["Program"])
	}
}

func TestTextDumps(t *testing.T) {
	p := New(false)
	sets := p.SetsText(predict.SNL())
	for _, section := range []string{"FIRST\n", "FOLLOW\n", "PREDICT\n"} {
		if !strings.Contains(sets, section) {
			t.Errorf("missing section %q", section)
		}
	}
	if !strings.Contains(p.TableText(predict.SNL()), "Program\n") {
		t.Errorf("table dump lacks the start symbol")
	}
}
