package grammar

import (
	"strings"
	"testing"

	lex "github.com/isunjn/snlc/core/module/lexkind"
)

func TestSNLRuleNumbering(t *testing.T) {
	g := SNL()
	if len(g.Rules) != int(lastRule) {
		t.Fatalf("got %d rules, want %d", len(g.Rules), lastRule)
	}
	for i, r := range g.Rules {
		if r.ID != RuleID(i+1) {
			t.Errorf("rule at %d has id %d", i, r.ID)
		}
	}
	if g.Rule(RStmAssCall).Left != Stm {
		t.Errorf("rule 66 should expand Stm, got %v", g.Rule(RStmAssCall))
	}
	if got := g.Rule(RMultOver).String(); got != "MultOp -> OVER" {
		t.Errorf("rule 104 = %q", got)
	}
}

func TestSNLShape(t *testing.T) {
	g := SNL()
	if g.Start != Program {
		t.Fatalf("start = %v", g.Start)
	}
	if got := len(g.Alternatives(Stm)); got != 6 {
		t.Errorf("Stm has %d alternatives, want 6", got)
	}
	if got := len(g.Alternatives(Factor)); got != 4 {
		t.Errorf("Factor has %d alternatives, want 4", got)
	}
	for _, nt := range g.Nonterminals() {
		if _, ok := descriptions[nt]; !ok {
			t.Errorf("%v has no description", nt)
		}
	}
	last := g.Terminals()[len(g.Terminals())-1]
	if last != EOF {
		t.Errorf("EOF should sort last among terminals, got %v", last)
	}
	for _, s := range g.Terminals() {
		if s == Epsilon {
			t.Errorf("EPSILON listed as a terminal")
		}
	}
}

func TestNewRejects(t *testing.T) {
	A := NTBase + 500
	B := NTBase + 501
	x := T(lex.IDENTIFIER)
	tests := []struct {
		name  string
		rules []*Rule
		want  string
	}{
		{"bad id", []*Rule{r(2, A, x)}, "has id"},
		{"epsilon mixed", []*Rule{r(1, A, x, Epsilon)}, "EPSILON"},
		{"undefined nonterminal", []*Rule{r(1, A, B)}, "no rules"},
		{"terminal on the left", []*Rule{r(1, x, x)}, "terminal"},
		{"empty right side", []*Rule{r(1, A)}, "empty"},
		{"eof in rule", []*Rule{r(1, A, EOF)}, "EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(A, tt.rules)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestSymbolString(t *testing.T) {
	if Program.String() != "Program" {
		t.Errorf("Program = %q", Program.String())
	}
	if T(lex.ASSIGNMENT).String() != "ASSIGN" {
		t.Errorf("ASSIGN = %q", T(lex.ASSIGNMENT).String())
	}
	if Stm.Describe() != "a statement" {
		t.Errorf("Stm describes as %q", Stm.Describe())
	}
	if T(lex.THEN).Describe() != "'then'" {
		t.Errorf("THEN describes as %q", T(lex.THEN).Describe())
	}
}
