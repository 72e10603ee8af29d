package ll1

import (
	ir "github.com/isunjn/snlc/core/module"
	lex "github.com/isunjn/snlc/core/module/lexkind"
	nk "github.com/isunjn/snlc/core/module/nodekind"
	"github.com/isunjn/snlc/core/util"
	G "github.com/isunjn/snlc/grammar"

	"fmt"
)

// act runs the tree building action of a rule right after the rule
// replaced its left side on the symbol stack. The current token is the
// first token derived by the rule, or its lookahead for empty rules.
func (this *driver) act(id G.RuleID) {
	switch id {
	case G.RProgramName, G.RTypeId, G.RProcName, G.RInvar, G.RFieldVar:
		this.linkIdentifier()

	case G.RDeclarePart:
		this.link(nk.DeclarePart, "types", "vars", "procs")

	case G.RTypeDecEmpty, G.RTypeDecMoreEmpty, G.RFieldDecMoreEmpty,
		G.RIdMoreEmpty, G.RVarDecEmpty, G.RVarDecMoreEmpty,
		G.RVarIdMoreEmpty, G.RProcDecEmpty, G.RProcDecMoreEmpty,
		G.RParamListEmpty, G.RParamMoreEmpty, G.RFidMoreEmpty,
		G.RStmMoreEmpty, G.RActParamListEmpty, G.RActParamMoreEmpty,
		G.RVariMoreEmpty, G.RFieldVarMoreEmpty:
		this.pop()

	case G.RTypeDecList:
		this.link(nk.TypeDeclaration, "id", "type", "sibling")
	case G.RTypeNameId:
		this.link(nk.IdType, "id")
		this.linkIdentifier()
	case G.RBaseInteger:
		this.link(nk.IntegerType)
	case G.RBaseChar:
		this.link(nk.CharType)
	case G.RArrayType:
		this.link(nk.ArrayType, "low", "high", "elem")
	case G.RLow, G.RTop:
		this.pop().set(ir.NewLiteral(this.word()))
	case G.RRecordType:
		this.link(nk.RecordType, "fields")
	case G.RFieldDecBase, G.RFieldDecArray, G.RVarDecList:
		this.link(nk.VarDeclaration, "type", "ids", "sibling")
	case G.RIdList, G.RVarIdList, G.RFormList:
		id := ir.NewIdentifier(this.word())
		this.pop().set(id)
		this.push(id, "sibling")

	case G.RProcDeclaration:
		this.link(nk.ProcDeclaration, "name", "params", "declare", "body", "sibling")
	case G.RParamValue:
		this.link(nk.ParamDeclaration, "type", "ids", "sibling")
	case G.RParamVar:
		n := this.link(nk.ParamDeclaration, "type", "ids", "sibling")
		n.ByRef = true

	case G.RProgramBody:
		this.link(nk.ProgramBody, "stms")
	case G.RStmAssCall:
		this.callee = ir.NewIdentifier(this.word())
	case G.RAssignmentRest:
		this.assignment()
	case G.RConditionalStm:
		this.link(nk.IfStm, "test", "then", "else", "sibling")
	case G.RLoopStm:
		this.link(nk.WhileStm, "test", "body", "sibling")
	case G.RInputStm:
		this.link(nk.ReadStm, "to", "sibling")
	case G.ROutputStm:
		this.link(nk.WriteStm, "what", "sibling")
	case G.RReturnStm:
		this.link(nk.ReturnStm, "what", "sibling")
	case G.RCallStmRest:
		n := this.link(nk.CallStm, "args", "sibling")
		n.Pos = this.callee.Pos
		n.Leaves[nk.Leaf(nk.CallStm, "fn")] = this.takeCallee()

	case G.RActParamList:
		this.expr.sibling = true
	case G.RRelExp:
		this.link(nk.OpExp, "left", "op", "right")
	case G.RExp:
		this.expr.start()
	case G.ROtherTermEmpty:
		this.endExp()
	case G.ROtherTerm:
		this.expr.continued = true
	case G.RFactorParen:
		this.expr.link = false
	case G.RFactorInt, G.RFactorChar:
		this.expr.operand(constExp(this.word()))
	case G.RFactorVariable:
		n := ir.New(nk.IdExp)
		n.Pos = this.word().Pos
		this.expr.operand(n)
		this.push(n, "content")
	case G.RVariable:
		this.link(nk.Variable, "id", "more")
		this.linkIdentifier()
	case G.RVariMoreIndex, G.RFieldVarMoreIndex:
		this.link(nk.ArrayVariMore, "index")
	case G.RVariMoreField:
		this.link(nk.FieldVariMore, "id", "more")
	case G.RCmpLess, G.RCmpEqual:
		this.relational(this.word().Kind)
	case G.RAddPlus, G.RAddMinus, G.RMultTimes, G.RMultOver:
		n := ir.New(nk.OpExp)
		n.Op = this.word().Kind
		n.Pos = this.word().Pos
		this.expr.operator(n)

	case G.RProgram, G.RProgramHead, G.RProgramHeadEndEmpty, G.RProgramHeadEnd,
		G.RTypeDec, G.RTypeDeclaration, G.RTypeDecMore,
		G.RTypeNameBase, G.RTypeNameStructure,
		G.RStructureArray, G.RStructureRecord,
		G.RFieldDecMore, G.RIdMore,
		G.RVarDec, G.RVarDeclaration, G.RVarDecMore, G.RVarIdMore,
		G.RProcDec, G.RProcDecMore, G.RParamList, G.RParamDecList,
		G.RParamMore, G.RFidMore, G.RProcDecPart, G.RProcBody,
		G.RStmList, G.RStmMore,
		G.RStmConditional, G.RStmLoop, G.RStmInput, G.RStmOutput, G.RStmReturn,
		G.RAssCallAssign, G.RAssCallCall, G.RActParamMore,
		G.ROtherRelE, G.RTerm, G.ROtherFactorEmpty, G.ROtherFactor:
		// structure only

	default:
		panic(util.NewInternalSemanticError(fmt.Sprintf("ll1: no action for rule %v", id)))
	}
}

// link creates a node of the given kind, puts it into the slot on top
// of the stack and stacks the named slots of the new node.
func (this *driver) link(kind nk.NodeKind, names ...string) *ir.Node {
	n := ir.New(kind)
	n.Pos = this.word().Pos
	this.pop().set(n)
	this.push(n, names...)
	return n
}

func (this *driver) linkIdentifier() {
	this.pop().set(ir.NewIdentifier(this.word()))
}

func (this *driver) takeCallee() *ir.Node {
	if this.callee == nil {
		panic(util.NewInternalSemanticError("ll1: callee not saved"))
	}
	n := this.callee
	this.callee = nil
	return n
}

// assignment links the statement, then its left side, a variable whose
// name is the saved callee.
func (this *driver) assignment() {
	callee := this.takeCallee()
	stm := this.link(nk.AssignStm, "left", "right", "sibling")
	stm.Pos = callee.Pos
	v := this.link(nk.Variable, "more")
	v.Pos = callee.Pos
	v.Leaves[nk.Leaf(nk.Variable, "id")] = callee
}

func (this *driver) relational(op lex.LexKind) {
	s := this.pop()
	if s.field != operatorField {
		panic(util.NewInternalSemanticError("ll1: comparison without an operator slot"))
	}
	s.parent.Op = op
}

func (this *driver) endExp() {
	n, m := this.expr.end()
	if !m.link {
		return
	}
	this.pop().set(n)
	if m.sibling {
		this.push(n, "sibling")
	}
}

func constExp(tk ir.Token) *ir.Node {
	n := ir.New(nk.ConstExp)
	n.Pos = tk.Pos
	n.Leaves[nk.Leaf(nk.ConstExp, "content")] = ir.NewLiteral(tk)
	return n
}
