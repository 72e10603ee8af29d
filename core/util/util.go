package util

import (
	. "github.com/isunjn/snlc/core"
	et "github.com/isunjn/snlc/core/errorkind"
	ir "github.com/isunjn/snlc/core/module"
	sv "github.com/isunjn/snlc/core/severity"
)

func Place(M *ir.Module, n *ir.Node) *Location {
	return &Location{
		File:  M.FullPath,
		Range: n.Range(),
	}
}

func PlaceAt(file string, pos Position) *Location {
	return &Location{
		File:  file,
		Range: Point(pos),
	}
}

// NewInternalError is what the stages panic with when an invariant of
// the grammar, the predict table or the AST shape does not hold.
func NewInternalError(M *ir.Module, n *ir.Node, message string) *Error {
	e := newInternalError(message)
	if M != nil && n != nil {
		e.Location = Place(M, n)
	}
	return e
}

func NewInternalSemanticError(debug string) *Error {
	return newInternalError(debug)
}

func newInternalError(message string) *Error {
	return &Error{
		Code:     et.InternalCompilerError,
		Severity: sv.InternalError,
		Message:  message,
	}
}

func NewSemanticError(M *ir.Module, t et.ErrorKind, n *ir.Node, message string) *Error {
	loc := Place(M, n)
	return &Error{
		Code:     t,
		Severity: sv.Error,
		Location: loc,
		Message:  message,
	}
}

func NewCompilerError(file string, t et.ErrorKind, pos Position, message string) *Error {
	return &Error{
		Code:     t,
		Severity: sv.Error,
		Location: PlaceAt(file, pos),
		Message:  message,
	}
}

// Fatal turns a recovered panic value into an internal *Error. Values
// that are not internal errors are re-panicked.
func Fatal(r any) *Error {
	switch v := r.(type) {
	case *Error:
		if v.IsInternal() {
			return v
		}
	case string:
		return newInternalError(v)
	}
	panic(r)
}
