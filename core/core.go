package core

import (
	et "github.com/isunjn/snlc/core/errorkind"
	sv "github.com/isunjn/snlc/core/severity"

	"strconv"
)

// Position is 1-based. The zero value means "unknown".
type Position struct {
	Line   int
	Column int
}

func (this Position) String() string {
	return strconv.FormatInt(int64(this.Line), 10) + ":" +
		strconv.FormatInt(int64(this.Column), 10)
}

func (this Position) IsValid() bool {
	return this.Line > 0
}

func (this Position) LessThan(other Position) bool {
	if this.Line == other.Line {
		return this.Column < other.Column
	}
	return this.Line < other.Line
}

func (this Position) MoreOrEqualsThan(other Position) bool {
	if this.Line == other.Line {
		return this.Column >= other.Column
	}
	return this.Line > other.Line
}

type Range struct {
	Begin Position
	End   Position
}

func (this Range) String() string {
	if this.Begin.MoreOrEqualsThan(this.End) {
		return this.Begin.String()
	}
	return this.Begin.String() + " to " + this.End.String()
}

// Point is a range covering a single character.
func Point(p Position) *Range {
	return &Range{Begin: p, End: p}
}

type Location struct {
	File  string
	Range *Range
}

func (this *Location) String() string {
	if this == nil {
		return "?"
	}
	if this.Range != nil {
		return this.File + ":" +
			this.Range.String()
	}
	return this.File
}

// Pos returns the start of the location, or the zero Position.
func (this *Location) Pos() Position {
	if this == nil || this.Range == nil {
		return Position{}
	}
	return this.Range.Begin
}

type Error struct {
	Code     et.ErrorKind
	Severity sv.Severity
	Message  string
	Location *Location
}

func (this *Error) String() string {
	return this.Location.String() + " " +
		this.Severity.String() +
		": " + this.Message
}

// Error makes *Error usable where a plain error is expected.
func (this *Error) Error() string {
	return this.String()
}

func (this *Error) ErrCode() string {
	return this.Code.String()
}

func (this *Error) Line() int {
	return this.Location.Pos().Line
}

func (this *Error) Column() int {
	return this.Location.Pos().Column
}

func (this *Error) IsInternal() bool {
	return this.Severity == sv.InternalError
}

func ProcessFileError(e error) *Error {
	return &Error{
		Code:     et.FileError,
		Severity: sv.Error,
		Message:  e.Error(),
	}
}

// FirstOf returns the first error of a list, or nil.
func FirstOf(errs []*Error) *Error {
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}
