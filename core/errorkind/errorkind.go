package errorkind

import (
	"fmt"
)

type ErrorKind int

const (
	InvalidErrType ErrorKind = iota
	InternalCompilerError

	// lexical
	InvalidSymbol
	UnmatchedCommentClose
	UnclosedComment
	ExpectedAssignAfterColon
	InvalidCharLiteral
	IdentifierAfterNumber
	IntegerTooLarge

	// syntax
	ExpectedSymbol
	ExpectedProd
	ExpectedEOF
	ProgramNotFinished

	FileError

	// semantic
	NameAlreadyDefined
	NameNotDefined
	ExpectedType
	ExpectedVariable
	ExpectedProcedure
	ExpectedArray
	ExpectedRecord
	FieldNotDefined
	IndexMustBeInteger
	MismatchedTypeInAssign
	OperationBetweenUnequalTypes
	ExpectedInteger
	InvalidNumberOfArgs
	MismatchedTypeForArgument
	ExpectedVariableArgument
	InvalidArrayBounds
)

func (et ErrorKind) String() string {
	v, ok := ErrorCodeMap[et]
	if !ok {
		panic(fmt.Sprintf("%d is not stringified", et))
	}
	return v
}

var ErrorCodeMap = map[ErrorKind]string{
	InvalidErrType:        "E101",
	InternalCompilerError: "E102",
	FileError:             "E103",

	InvalidSymbol:            "E104",
	UnmatchedCommentClose:    "E110",
	UnclosedComment:          "E111",
	ExpectedAssignAfterColon: "E112",
	InvalidCharLiteral:       "E113",
	IdentifierAfterNumber:    "E114",
	IntegerTooLarge:          "E115",

	ExpectedSymbol:     "E105",
	ExpectedProd:       "E106",
	ExpectedEOF:        "E107",
	ProgramNotFinished: "E108",

	NameAlreadyDefined:           "E002",
	OperationBetweenUnequalTypes: "E003",
	NameNotDefined:               "E013",
	ExpectedType:                 "E014",
	ExpectedVariable:             "E015",
	ExpectedArray:                "E016",
	ExpectedRecord:               "E017",
	FieldNotDefined:              "E018",
	IndexMustBeInteger:           "E019",
	MismatchedTypeForArgument:    "E020",
	InvalidNumberOfArgs:          "E021",
	ExpectedProcedure:            "E022",
	ExpectedVariableArgument:     "E023",
	InvalidArrayBounds:           "E024",
	ExpectedInteger:              "E025",
	MismatchedTypeInAssign:       "E031",
}

// Lexical, syntactic and semantic kinds are reported by different stages.
func (et ErrorKind) IsSemantic() bool {
	return et >= NameAlreadyDefined
}
