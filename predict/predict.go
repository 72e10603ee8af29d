// Package predict computes FIRST, FOLLOW and predict sets of an LL(1)
// grammar by fixpoint iteration, and the predict table built from them.
package predict

import (
	lex "github.com/isunjn/snlc/core/module/lexkind"
	"github.com/isunjn/snlc/grammar"

	"fmt"
	"sync"
)

type Symbol = grammar.Symbol

// First computes FIRST of every nonterminal.
func First(g *grammar.Grammar) map[Symbol]Set {
	first := map[Symbol]Set{}
	for _, nt := range g.Nonterminals() {
		first[nt] = NewSet()
	}
	for firstPass(g, first) {
	}
	return first
}

func firstPass(g *grammar.Grammar, first map[Symbol]Set) bool {
	changed := false
	for _, r := range g.Rules {
		if first[r.Left].Union(FirstOf(first, r.Right)) {
			changed = true
		}
	}
	return changed
}

// FirstOf is FIRST of a symbol sequence given FIRST of the nonterminals.
// The empty sequence, and a lone EPSILON, derive {EPSILON}.
func FirstOf(first map[Symbol]Set, seq []Symbol) Set {
	if len(seq) == 0 {
		return NewSet(lex.EPSILON)
	}
	head := seq[0]
	if head.IsTerminal() {
		return NewSet(head.Kind())
	}
	fb := first[head]
	if !fb.Has(lex.EPSILON) {
		return fb.Clone()
	}
	out := fb.Without(lex.EPSILON)
	out.Union(FirstOf(first, seq[1:]))
	return out
}

// Follow computes FOLLOW of every nonterminal; EOF follows the start
// symbol.
func Follow(g *grammar.Grammar, first map[Symbol]Set) map[Symbol]Set {
	follow := map[Symbol]Set{}
	for _, nt := range g.Nonterminals() {
		follow[nt] = NewSet()
	}
	follow[g.Start].Add(lex.EOF)
	for followPass(g, first, follow) {
	}
	return follow
}

func followPass(g *grammar.Grammar, first, follow map[Symbol]Set) bool {
	changed := false
	for _, r := range g.Rules {
		for i, x := range r.Right {
			if !x.IsNonterminal() {
				continue
			}
			w := r.Right[i+1:]
			fw := FirstOf(first, w)
			if len(w) == 0 || fw.Has(lex.EPSILON) {
				changed = follow[x].Union(follow[r.Left]) || changed
			}
			changed = follow[x].Union(fw.Without(lex.EPSILON)) || changed
		}
	}
	return changed
}

// Predict computes the selection set of every rule.
func Predict(g *grammar.Grammar, first, follow map[Symbol]Set) map[grammar.RuleID]Set {
	predict := map[grammar.RuleID]Set{}
	for _, r := range g.Rules {
		fw := FirstOf(first, r.Right)
		if fw.Has(lex.EPSILON) {
			set := fw.Without(lex.EPSILON)
			set.Union(follow[r.Left])
			predict[r.ID] = set
		} else {
			predict[r.ID] = fw
		}
	}
	return predict
}

type Table map[Symbol]map[lex.LexKind]grammar.RuleID

func (this Table) Lookup(nt Symbol, k lex.LexKind) (grammar.RuleID, bool) {
	row, ok := this[nt]
	if !ok {
		return 0, false
	}
	id, ok := row[k]
	return id, ok
}

// Conflict records a table cell claimed by two rules. The later rule
// wins the cell.
type Conflict struct {
	Nonterminal Symbol
	Terminal    lex.LexKind
	Kept        grammar.RuleID
	Dropped     grammar.RuleID
}

func (this Conflict) String() string {
	return fmt.Sprintf("%v on %v: rule %v overrides rule %v",
		this.Nonterminal, lex.Names[this.Terminal], this.Kept, this.Dropped)
}

// BuildTable inverts the predict sets, visiting rules in id order.
func BuildTable(g *grammar.Grammar, predict map[grammar.RuleID]Set) (Table, []Conflict) {
	table := Table{}
	conflicts := []Conflict{}
	for _, r := range g.Rules {
		row, ok := table[r.Left]
		if !ok {
			row = map[lex.LexKind]grammar.RuleID{}
			table[r.Left] = row
		}
		for _, k := range predict[r.ID].Items() {
			if old, ok := row[k]; ok && old != r.ID {
				conflicts = append(conflicts, Conflict{
					Nonterminal: r.Left,
					Terminal:    k,
					Kept:        r.ID,
					Dropped:     old,
				})
			}
			row[k] = r.ID
		}
	}
	return table, conflicts
}

type Sets struct {
	Grammar   *grammar.Grammar
	First     map[Symbol]Set
	Follow    map[Symbol]Set
	Predict   map[grammar.RuleID]Set
	Table     Table
	Conflicts []Conflict
}

func Solve(g *grammar.Grammar) *Sets {
	first := First(g)
	follow := Follow(g, first)
	predict := Predict(g, first, follow)
	table, conflicts := BuildTable(g, predict)
	return &Sets{
		Grammar:   g,
		First:     first,
		Follow:    follow,
		Predict:   predict,
		Table:     table,
		Conflicts: conflicts,
	}
}

// In reports whether k selects rule id.
func (this *Sets) In(id grammar.RuleID, k lex.LexKind) bool {
	return this.Predict[id].Has(k)
}

var (
	snlOnce sync.Once
	snl     *Sets
)

// SNL returns the solved sets of the SNL grammar. A conflict in its
// table is a defect of the grammar itself, so it panics.
func SNL() *Sets {
	snlOnce.Do(func() {
		s := Solve(grammar.SNL())
		if len(s.Conflicts) > 0 {
			panic(fmt.Sprintf("predict: SNL grammar is not LL(1): %v", s.Conflicts))
		}
		snl = s
	})
	return snl
}
