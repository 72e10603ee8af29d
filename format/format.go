package format

import (
	ir "github.com/isunjn/snlc/core/module"
	T "github.com/isunjn/snlc/core/module/lexkind"
	nk "github.com/isunjn/snlc/core/module/nodekind"
	"github.com/isunjn/snlc/lexer"

	"strconv"
)

// Format prints a program tree as canonical SNL source. Parsing the
// output gives back the same tree, up to positions.
func Format(n *ir.Node) string {
	ctx := _context()
	program(ctx, n)
	return ctx.String()
}

func _context() *context {
	return &context{
		depth:   0,
		columns: 0,
		head:    nil,
		curr:    nil,
	}
}

type llist struct {
	s    []byte
	next *llist
}

type context struct {
	depth   int // counts scope depth
	columns int // chars per line

	head *llist
	curr *llist
}

func (this *context) indent() {
	d := this.depth
	for d > 0 {
		this.Place([]byte("\t"))
		d--
	}
}

// this allows us to break the line in commas
func (this *context) Comma() {
	this.Place([]byte(", "))
	if this.columns >= 75 {
		this.Newline()
	}
}

func (this *context) Newline() {
	this.columns = 0
	this.Place([]byte("\n"))
	this.indent()
}

func (this *context) Place(s []byte) {
	new := &llist{
		s:    s,
		next: nil,
	}
	this.columns += len(s)
	if this.curr != nil {
		this.curr.next = new
	}
	this.curr = new
	if this.head == nil {
		this.head = new
	}
}

func (this *context) String() string {
	size := this.getSize()
	buff := make([]byte, size)
	index := 0
	curr := this.head
	for curr != nil {
		copy(buff[index:], curr.s)
		index += len(curr.s)
		curr = curr.next
	}
	return string(buff)
}

func (this *context) getSize() int {
	output := 0
	curr := this.head
	for curr != nil {
		output += len(curr.s)
		curr = curr.next
	}
	return output
}

type printer func(*context, *ir.Node)

func commalist(ctx *context, first *ir.Node, p printer) {
	for n := first; n != nil; n = n.Sibling {
		p(ctx, n)
		if n.Sibling != nil {
			ctx.Comma()
		}
	}
}

func program(ctx *context, n *ir.Node) {
	ctx.Place([]byte("program "))
	_id(ctx, n.Leaf("name"))
	ctx.Place([]byte(";"))
	ctx.Newline()
	_declarePart(ctx, n.Leaf("declare"))
	_body(ctx, n.Leaf("body"))
	ctx.Place([]byte(".\n"))
}

func _id(ctx *context, n *ir.Node) {
	if !lexer.IsValidIdentifier(n.Text) {
		panic("format: invalid identifier " + strconv.Quote(n.Text))
	}
	ctx.Place([]byte(n.Text))
}

func _declarePart(ctx *context, n *ir.Node) {
	if types := n.Leaf("types"); types != nil {
		ctx.Place([]byte("type"))
		ctx.depth++
		for t := types; t != nil; t = t.Sibling {
			ctx.Newline()
			_id(ctx, t.Leaf("id"))
			ctx.Place([]byte(" = "))
			_type(ctx, t.Leaf("type"))
			ctx.Place([]byte(";"))
		}
		ctx.depth--
		ctx.Newline()
	}
	if vars := n.Leaf("vars"); vars != nil {
		ctx.Place([]byte("var"))
		ctx.depth++
		for v := vars; v != nil; v = v.Sibling {
			ctx.Newline()
			_decl(ctx, v)
			ctx.Place([]byte(";"))
		}
		ctx.depth--
		ctx.Newline()
	}
	for p := n.Leaf("procs"); p != nil; p = p.Sibling {
		_proc(ctx, p)
		ctx.Newline()
	}
}

// _decl prints a variable, field or parameter declaration.
func _decl(ctx *context, n *ir.Node) {
	if n.ByRef {
		ctx.Place([]byte("var "))
	}
	_type(ctx, n.Leaf("type"))
	ctx.Place([]byte(" "))
	commalist(ctx, n.Leaf("ids"), _id)
}

func _type(ctx *context, n *ir.Node) {
	switch n.Kind {
	case nk.IntegerType:
		ctx.Place([]byte("integer"))
	case nk.CharType:
		ctx.Place([]byte("char"))
	case nk.IdType:
		_id(ctx, n.Leaf("id"))
	case nk.ArrayType:
		ctx.Place([]byte("array ["))
		ctx.Place([]byte(n.Leaf("low").Text))
		ctx.Place([]byte(".."))
		ctx.Place([]byte(n.Leaf("high").Text))
		ctx.Place([]byte("] of "))
		_type(ctx, n.Leaf("elem"))
	case nk.RecordType:
		ctx.Place([]byte("record"))
		ctx.depth++
		for f := n.Leaf("fields"); f != nil; f = f.Sibling {
			ctx.Newline()
			_decl(ctx, f)
			ctx.Place([]byte(";"))
		}
		ctx.depth--
		ctx.Newline()
		ctx.Place([]byte("end"))
	default:
		panic("format: not a type: " + n.Kind.String())
	}
}

func _proc(ctx *context, n *ir.Node) {
	ctx.Place([]byte("procedure "))
	_id(ctx, n.Leaf("name"))
	ctx.Place([]byte("("))
	for p := n.Leaf("params"); p != nil; p = p.Sibling {
		_decl(ctx, p)
		if p.Sibling != nil {
			ctx.Place([]byte("; "))
		}
	}
	ctx.Place([]byte(");"))
	ctx.Newline()
	_declarePart(ctx, n.Leaf("declare"))
	_body(ctx, n.Leaf("body"))
}

func _body(ctx *context, n *ir.Node) {
	ctx.Place([]byte("begin"))
	_stmList(ctx, n.Leaf("stms"))
	ctx.Newline()
	ctx.Place([]byte("end"))
}

// _stmList prints one statement per line, one level deeper than the
// enclosing keyword.
func _stmList(ctx *context, first *ir.Node) {
	ctx.depth++
	for n := first; n != nil; n = n.Sibling {
		ctx.Newline()
		_stm(ctx, n)
		if n.Sibling != nil {
			ctx.Place([]byte(";"))
		}
	}
	ctx.depth--
}

func _stm(ctx *context, n *ir.Node) {
	switch n.Kind {
	case nk.IfStm:
		ctx.Place([]byte("if "))
		_expr(ctx, n.Leaf("test"))
		ctx.Place([]byte(" then"))
		_stmList(ctx, n.Leaf("then"))
		ctx.Newline()
		ctx.Place([]byte("else"))
		_stmList(ctx, n.Leaf("else"))
		ctx.Newline()
		ctx.Place([]byte("fi"))
	case nk.WhileStm:
		ctx.Place([]byte("while "))
		_expr(ctx, n.Leaf("test"))
		ctx.Place([]byte(" do"))
		_stmList(ctx, n.Leaf("body"))
		ctx.Newline()
		ctx.Place([]byte("endwh"))
	case nk.ReadStm:
		ctx.Place([]byte("read("))
		_id(ctx, n.Leaf("to"))
		ctx.Place([]byte(")"))
	case nk.WriteStm:
		ctx.Place([]byte("write("))
		_expr(ctx, n.Leaf("what"))
		ctx.Place([]byte(")"))
	case nk.ReturnStm:
		ctx.Place([]byte("return("))
		_expr(ctx, n.Leaf("what"))
		ctx.Place([]byte(")"))
	case nk.AssignStm:
		_variable(ctx, n.Leaf("left"))
		ctx.Place([]byte(" := "))
		_expr(ctx, n.Leaf("right"))
	case nk.CallStm:
		_id(ctx, n.Leaf("fn"))
		ctx.Place([]byte("("))
		commalist(ctx, n.Leaf("args"), _expr)
		ctx.Place([]byte(")"))
	default:
		panic("format: not a statement: " + n.Kind.String())
	}
}

func _variable(ctx *context, n *ir.Node) {
	_id(ctx, n.Leaf("id"))
	_more(ctx, n.Leaf("more"))
}

func _more(ctx *context, n *ir.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case nk.ArrayVariMore:
		ctx.Place([]byte("["))
		_expr(ctx, n.Leaf("index"))
		ctx.Place([]byte("]"))
	case nk.FieldVariMore:
		ctx.Place([]byte("."))
		_id(ctx, n.Leaf("id"))
		_more(ctx, n.Leaf("more"))
	}
}

func _expr(ctx *context, n *ir.Node) {
	_exprPrec(ctx, n, 0)
}

func _exprPrec(ctx *context, n *ir.Node, prevPrecedence int) {
	switch n.Kind {
	case nk.ConstExp:
		lit := n.Leaf("content")
		if lit.Kind == nk.CharLiteral {
			ctx.Place([]byte("'" + lit.Text + "'"))
			return
		}
		ctx.Place([]byte(lit.Text))
	case nk.IdExp:
		_variable(ctx, n.Leaf("content"))
	case nk.OpExp:
		if precedence(n.Op) < prevPrecedence {
			ctx.Place([]byte("("))
			binary(ctx, n)
			ctx.Place([]byte(")"))
		} else {
			binary(ctx, n)
		}
	default:
		panic("format: not an expression: " + n.Kind.String())
	}
}

// the right operand binds one level tighter: "8 - (3 - 2)" keeps its
// parenthesis
func binary(ctx *context, n *ir.Node) {
	p := precedence(n.Op)
	_exprPrec(ctx, n.Leaves[0], p)
	ctx.Place([]byte(" " + T.Tktosrc[n.Op] + " "))
	_exprPrec(ctx, n.Leaves[1], p+1)
}

func precedence(lex T.LexKind) int {
	switch lex {
	case T.MULTIPLICATION, T.DIVISION:
		return 2
	case T.PLUS, T.MINUS:
		return 1
	case T.LESS, T.EQUALS:
		return 0
	}
	panic("format: not an operator: " + T.FmtLexKind(lex))
}
