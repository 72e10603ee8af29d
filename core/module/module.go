package module

import (
	. "github.com/isunjn/snlc/core"
	lex "github.com/isunjn/snlc/core/module/lexkind"
	nk "github.com/isunjn/snlc/core/module/nodekind"
	T "github.com/isunjn/snlc/core/module/types"

	"fmt"
	"strconv"
)

type Token struct {
	Kind lex.LexKind
	Text string
	Pos  Position
}

func (this Token) String() string {
	if this.Text == "" {
		return fmt.Sprintf("%v\t%v", this.Pos, lex.Names[this.Kind])
	}
	return fmt.Sprintf("%v\t%v\t%v", this.Pos, lex.Names[this.Kind], this.Text)
}

type Node struct {
	Kind nk.NodeKind

	Text  string      // identifiers and literals
	Value int         // integer literals, char code of char literals
	Op    lex.LexKind // OpExp
	ByRef bool        // ParamDeclaration

	Pos Position

	Leaves  []*Node
	Sibling *Node
}

// New returns a node with every leaf of its kind allocated and empty.
func New(kind nk.NodeKind) *Node {
	return &Node{
		Kind:   kind,
		Leaves: make([]*Node, nk.Arity(kind)),
	}
}

func NewIdentifier(tk Token) *Node {
	return &Node{
		Kind: nk.Identifier,
		Text: tk.Text,
		Pos:  tk.Pos,
	}
}

// NewLiteral builds an integer or char literal leaf from its token.
// The lexer already rejected malformed literals.
func NewLiteral(tk Token) *Node {
	n := &Node{
		Text: tk.Text,
		Pos:  tk.Pos,
	}
	switch tk.Kind {
	case lex.INT_LIT:
		n.Kind = nk.IntegerLiteral
		v, err := strconv.Atoi(tk.Text)
		if err != nil {
			panic("module: malformed integer literal " + tk.Text)
		}
		n.Value = v
	case lex.CHAR_LIT:
		n.Kind = nk.CharLiteral
		n.Value = int(tk.Text[0])
	default:
		panic("module: not a literal: " + lex.FmtLexKind(tk.Kind))
	}
	return n
}

// Leaf returns the leaf with the given layout name.
func (this *Node) Leaf(name string) *Node {
	return this.Leaves[nk.Leaf(this.Kind, name)]
}

// List returns the node followed by all its siblings.
func (this *Node) List() []*Node {
	output := []*Node{}
	for n := this; n != nil; n = n.Sibling {
		output = append(output, n)
	}
	return output
}

// Len is the length of the sibling list starting at this node.
func (this *Node) Len() int {
	count := 0
	for n := this; n != nil; n = n.Sibling {
		count++
	}
	return count
}

func (this *Node) Range() *Range {
	return Point(this.Pos)
}

func (n *Node) String() string {
	return ast(n, 0)
}

func describe(n *Node) string {
	switch n.Kind {
	case nk.Identifier:
		return fmt.Sprintf("{Identifier '%s', %v}", n.Text, n.Pos)
	case nk.IntegerLiteral:
		return fmt.Sprintf("{IntegerLiteral %d, %v}", n.Value, n.Pos)
	case nk.CharLiteral:
		return fmt.Sprintf("{CharLiteral '%s', %v}", n.Text, n.Pos)
	case nk.OpExp:
		return fmt.Sprintf("{OpExp '%s'}", lex.FmtLexKind(n.Op))
	case nk.ParamDeclaration:
		if n.ByRef {
			return "{ParamDeclaration var}"
		}
		return "{ParamDeclaration}"
	}
	return "{" + n.Kind.String() + "}"
}

func ast(n *Node, i int) string {
	if n == nil {
		return "nil"
	}
	output := describe(n)
	layout := nk.Layout(n.Kind)
	for j, kid := range n.Leaves {
		if kid == nil {
			output += indent(i) + layout[j] + ": nil"
			continue
		}
		for item := kid; item != nil; item = item.Sibling {
			output += indent(i) + layout[j] + ": " + ast(item, i+1)
		}
	}
	return output
}

func indent(n int) string {
	output := "\n"
	for i := -1; i < n-1; i++ {
		output += "    "
	}
	output += "└─>"
	return output
}

type Module struct {
	Name     string
	FullPath string
	Source   string

	Tokens []Token
	Root   *Node

	// set by the typechecker
	Types *T.Arena
}

func (M *Module) String() string {
	if M == nil {
		return "nil"
	}
	return fmt.Sprintf("%v{\nRoot:\n\t%v\n}", M.Name, ast(M.Root, 1))
}
