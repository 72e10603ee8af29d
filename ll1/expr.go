package ll1

import (
	ir "github.com/isunjn/snlc/core/module"
	lex "github.com/isunjn/snlc/core/module/lexkind"
	"github.com/isunjn/snlc/core/util"

	"fmt"
)

var precedence = map[lex.LexKind]int{
	lex.PLUS:           1,
	lex.MINUS:          1,
	lex.MULTIPLICATION: 2,
	lex.DIVISION:       2,
}

// marker delimits an expression on the operand stack and remembers
// where its result goes.
type marker struct {
	base    int
	link    bool
	sibling bool
}

// exprBuilder turns the flat operand and operator sequence of the
// grammar into a left associative tree by precedence climbing. Nested
// expressions (indexes, arguments, parenthesis) get their own marker.
type exprBuilder struct {
	operands  []*ir.Node
	operators []*ir.Node
	markers   []marker

	link      bool // the result goes into the slot on top of the stack
	sibling   bool // the result is an argument, followed by the next one
	continued bool // the next Exp continues the open expression
}

func newExprBuilder() exprBuilder {
	return exprBuilder{link: true}
}

func (this *exprBuilder) empty() bool {
	return len(this.operands) == 0 && len(this.operators) == 0 && len(this.markers) == 0
}

func (this *exprBuilder) start() {
	if !this.continued {
		this.markers = append(this.markers, marker{
			base:    len(this.operands),
			link:    this.link,
			sibling: this.sibling,
		})
	}
	this.link = true
	this.sibling = false
	this.continued = false
}

func (this *exprBuilder) operand(n *ir.Node) {
	this.operands = append(this.operands, n)
}

// operator folds every pending operator that binds at least as tight
// as op, then queues op.
func (this *exprBuilder) operator(op *ir.Node) {
	base := this.top().base
	for len(this.operands) >= base+2 && len(this.operators) > 0 &&
		precedence[this.operators[len(this.operators)-1].Op] >= precedence[op.Op] {
		this.reduce()
	}
	this.operators = append(this.operators, op)
}

func (this *exprBuilder) reduce() {
	n := len(this.operands)
	if n < 2 || len(this.operators) == 0 {
		panic(util.NewInternalSemanticError(
			fmt.Sprintf("ll1: cannot fold %d operands with %d operators", n, len(this.operators))))
	}
	op := this.operators[len(this.operators)-1]
	this.operators = this.operators[:len(this.operators)-1]
	op.Leaves[0] = this.operands[n-2]
	op.Leaves[1] = this.operands[n-1]
	this.operands = append(this.operands[:n-2], op)
}

// end closes the innermost expression. When its marker does not link,
// the result stays on the operand stack as an operand of the enclosing
// expression and end returns nil.
func (this *exprBuilder) end() (*ir.Node, marker) {
	m := this.top()
	this.markers = this.markers[:len(this.markers)-1]
	for len(this.operands) > m.base+1 {
		this.reduce()
	}
	if len(this.operands) != m.base+1 {
		panic(util.NewInternalSemanticError("ll1: expression without operand"))
	}
	if !m.link {
		return nil, m
	}
	n := this.operands[len(this.operands)-1]
	this.operands = this.operands[:len(this.operands)-1]
	return n, m
}

func (this *exprBuilder) top() marker {
	if len(this.markers) == 0 {
		panic(util.NewInternalSemanticError("ll1: expression marker underflow"))
	}
	return this.markers[len(this.markers)-1]
}
