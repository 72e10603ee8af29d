package printer

import (
	lex "github.com/isunjn/snlc/core/module/lexkind"
	"github.com/isunjn/snlc/grammar"
	"github.com/isunjn/snlc/predict"

	"gopkg.in/yaml.v3"

	"fmt"
	"sort"
	"strings"
)

// SetsDump is the serializable form of the solved sets. Terminals are
// written by name, nonterminals by their grammar name and rules by
// number.
type SetsDump struct {
	First   map[string][]string `yaml:"first"`
	Follow  map[string][]string `yaml:"follow"`
	Predict map[int][]string    `yaml:"predict"`
}

// TableDump maps a nonterminal and a lookahead to the rule number.
type TableDump map[string]map[string]int

func names(s predict.Set) []string {
	output := []string{}
	for _, k := range s.Items() {
		output = append(output, lex.Names[k])
	}
	return output
}

func DumpSets(s *predict.Sets) *SetsDump {
	d := &SetsDump{
		First:   map[string][]string{},
		Follow:  map[string][]string{},
		Predict: map[int][]string{},
	}
	for _, nt := range s.Grammar.Nonterminals() {
		d.First[nt.String()] = names(s.First[nt])
		d.Follow[nt.String()] = names(s.Follow[nt])
	}
	for _, r := range s.Grammar.Rules {
		d.Predict[int(r.ID)] = names(s.Predict[r.ID])
	}
	return d
}

func DumpTable(s *predict.Sets) TableDump {
	d := TableDump{}
	for nt, row := range s.Table {
		entries := map[string]int{}
		for k, id := range row {
			entries[lex.Names[k]] = int(id)
		}
		d[nt.String()] = entries
	}
	return d
}

func YAML(v any) (string, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("printer: encoding yaml: %w", err)
	}
	return string(b), nil
}

// SetsText renders the sets in grammar order, one line per entry.
func (this *Printer) SetsText(s *predict.Sets) string {
	d := DumpSets(s)
	output := strings.Builder{}
	section := func(title string, sets map[string][]string) {
		output.WriteString(this.Header(title) + "\n")
		for _, nt := range s.Grammar.Nonterminals() {
			fmt.Fprintf(&output, "  %-16s { %s }\n", nt.String(), strings.Join(sets[nt.String()], " "))
		}
	}
	section("FIRST", d.First)
	section("FOLLOW", d.Follow)
	output.WriteString(this.Header("PREDICT") + "\n")
	for _, r := range s.Grammar.Rules {
		fmt.Fprintf(&output, "  %3d %-40s { %s }\n", r.ID, r.String(), strings.Join(d.Predict[int(r.ID)], " "))
	}
	return output.String()
}

// TableText lists the non-empty cells of the table, by nonterminal in
// grammar order and by lookahead name.
func (this *Printer) TableText(s *predict.Sets) string {
	d := DumpTable(s)
	output := strings.Builder{}
	for _, nt := range s.Grammar.Nonterminals() {
		row := d[nt.String()]
		keys := make([]string, 0, len(row))
		for k := range row {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		output.WriteString(this.Header(nt.String()) + "\n")
		for _, k := range keys {
			fmt.Fprintf(&output, "  %-12s %d\n", k, row[k])
		}
	}
	return output.String()
}

// Rules lists a derivation, one applied rule per line.
func (this *Printer) Rules(g *grammar.Grammar, applied []grammar.RuleID) string {
	output := strings.Builder{}
	for _, id := range applied {
		fmt.Fprintf(&output, "%s %s\n", this.paint(gutterStyle, fmt.Sprintf("%3d", id)), g.Rule(id).String())
	}
	return output.String()
}
