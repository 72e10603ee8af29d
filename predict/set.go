package predict

import (
	lex "github.com/isunjn/snlc/core/module/lexkind"

	"strings"
)

// Set is a bitset of terminals; EPSILON is a member like any other.
// Bit k lives in word k>>6.
type Set []uint64

var setWords = int(lex.EOF>>6) + 1

func NewSet(kinds ...lex.LexKind) Set {
	s := make(Set, setWords)
	for _, k := range kinds {
		s.Add(k)
	}
	return s
}

func (s Set) Add(k lex.LexKind) {
	s[k>>6] |= 1 << uint(k&63)
}

func (s Set) Has(k lex.LexKind) bool {
	return s[k>>6]&(1<<uint(k&63)) != 0
}

// Union adds every member of r to s and reports whether s grew.
func (s Set) Union(r Set) bool {
	changed := false
	for i := range s {
		tmp := s[i]
		s[i] |= r[i]
		if s[i] != tmp {
			changed = true
		}
	}
	return changed
}

func (s Set) Clone() Set {
	out := make(Set, len(s))
	copy(out, s)
	return out
}

// Without returns a copy of s lacking k.
func (s Set) Without(k lex.LexKind) Set {
	out := s.Clone()
	out[k>>6] &^= 1 << uint(k&63)
	return out
}

func (s Set) Intersects(r Set) bool {
	for i := range s {
		if s[i]&r[i] != 0 {
			return true
		}
	}
	return false
}

func (s Set) Equal(r Set) bool {
	for i := range s {
		if s[i] != r[i] {
			return false
		}
	}
	return true
}

// Items lists the members in LexKind order.
func (s Set) Items() []lex.LexKind {
	output := []lex.LexKind{}
	for k := lex.UNDEFINED; k <= lex.EOF; k++ {
		if s.Has(k) {
			output = append(output, k)
		}
	}
	return output
}

func (s Set) Len() int {
	return len(s.Items())
}

func (s Set) String() string {
	buf := strings.Builder{}
	buf.WriteString("{ ")
	for _, k := range s.Items() {
		buf.WriteString(lex.Names[k])
		buf.WriteString(" ")
	}
	buf.WriteString("}")
	return buf.String()
}
