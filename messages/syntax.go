package messages

import (
	. "github.com/isunjn/snlc/core"
	et "github.com/isunjn/snlc/core/errorkind"
	ir "github.com/isunjn/snlc/core/module"
	lex "github.com/isunjn/snlc/core/module/lexkind"
	. "github.com/isunjn/snlc/core/util"
	G "github.com/isunjn/snlc/grammar"
)

// ErrorExpectedProd is a miss in the predict table: no alternative of
// nt starts with the current token.
func ErrorExpectedProd(file string, tk ir.Token, nt G.Symbol) *Error {
	message := "expected " + nt.Describe() + " instead found " + lex.FmtToUser(tk.Kind)
	return NewCompilerError(file, et.ExpectedProd, tk.Pos, message)
}

func ErrorExpectedSymbol(file string, tk ir.Token, s G.Symbol) *Error {
	message := "expected " + s.Describe() + " instead found " + lex.FmtToUser(tk.Kind)
	return NewCompilerError(file, et.ExpectedSymbol, tk.Pos, message)
}

func ErrorExpectedEOF(file string, tk ir.Token) *Error {
	message := "unexpected " + lex.FmtToUser(tk.Kind) + ", expected end of file"
	return NewCompilerError(file, et.ExpectedEOF, tk.Pos, message)
}

func ErrorProgramNotFinished(file string, tk ir.Token, s G.Symbol) *Error {
	message := "program not finished, expected " + s.Describe()
	return NewCompilerError(file, et.ProgramNotFinished, tk.Pos, message)
}
