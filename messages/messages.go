package messages

import (
	. "github.com/isunjn/snlc/core"
	et "github.com/isunjn/snlc/core/errorkind"
	ir "github.com/isunjn/snlc/core/module"
	. "github.com/isunjn/snlc/core/util"

	"fmt"
	"strconv"
)

func ErrorNameAlreadyDefined(M *ir.Module, newName *ir.Node) *Error {
	return NewSemanticError(M, et.NameAlreadyDefined, newName, "Duplicate identifier")
}

func ErrorNameNotDefined(M *ir.Module, n *ir.Node) *Error {
	return NewSemanticError(M, et.NameNotDefined, n, "Identifier `"+n.Text+"` not found")
}

func ErrorExpectedType(M *ir.Module, n *ir.Node) *Error {
	return NewSemanticError(M, et.ExpectedType, n, "Identifier `"+n.Text+"` is not a type")
}

func ErrorExpectedVariable(M *ir.Module, n *ir.Node) *Error {
	return NewSemanticError(M, et.ExpectedVariable, n, "Identifier `"+n.Text+"` is not a variable")
}

func ErrorExpectedProcedure(M *ir.Module, n *ir.Node) *Error {
	return NewSemanticError(M, et.ExpectedProcedure, n, "Identifier `"+n.Text+"` is not a procedure")
}

func ErrorExpectedArray(M *ir.Module, n *ir.Node) *Error {
	return NewSemanticError(M, et.ExpectedArray, n, "`"+n.Text+"` is not an array")
}

func ErrorExpectedRecord(M *ir.Module, n *ir.Node) *Error {
	return NewSemanticError(M, et.ExpectedRecord, n, "`"+n.Text+"` is not a record")
}

func ErrorFieldNotDefined(M *ir.Module, field *ir.Node, base *ir.Node) *Error {
	msg := "Field `" + field.Text + "` not found on `" + base.Text + "`"
	return NewSemanticError(M, et.FieldNotDefined, field, msg)
}

func ErrorIndexMustBeInteger(M *ir.Module, index *ir.Node) *Error {
	return NewSemanticError(M, et.IndexMustBeInteger, index, "Array index's type is not integer")
}

func ErrorMismatchedTypeInAssign(M *ir.Module, left *ir.Node) *Error {
	return NewSemanticError(M, et.MismatchedTypeInAssign, left, "Type mismatch of assign statement's two sides")
}

func ErrorOperationBetweenUnequalTypes(M *ir.Module, left *ir.Node) *Error {
	return NewSemanticError(M, et.OperationBetweenUnequalTypes, left, "Type mismatch of operator expression's two sides")
}

func ErrorExpectedInteger(M *ir.Module, operand *ir.Node, got string) *Error {
	return NewSemanticError(M, et.ExpectedInteger, operand, "Arithmetic on "+got+", expected integer operands")
}

func ErrorInvalidNumberOfArgs(M *ir.Module, fn *ir.Node, want, got int) *Error {
	msg := fmt.Sprintf("Expect %d argument(s), but got %d", want, got)
	return NewSemanticError(M, et.InvalidNumberOfArgs, fn, msg)
}

func ErrorMismatchedTypeForArgument(M *ir.Module, fn *ir.Node, i int) *Error {
	msg := "Type mismatch of the `" + strconv.Itoa(i+1) + "`th argument and parameter"
	return NewSemanticError(M, et.MismatchedTypeForArgument, fn, msg)
}

func ErrorExpectedVariableArgument(M *ir.Module, arg *ir.Node, i int) *Error {
	msg := "The `" + strconv.Itoa(i+1) + "`th argument must be a variable, its parameter is var"
	return NewSemanticError(M, et.ExpectedVariableArgument, arg, msg)
}

func ErrorInvalidArrayBounds(M *ir.Module, low, high *ir.Node) *Error {
	msg := "`" + strconv.Itoa(low.Value) + "` is greater than `" + strconv.Itoa(high.Value) + "`"
	return NewSemanticError(M, et.InvalidArrayBounds, low, msg)
}
