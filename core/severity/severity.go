package severity

type Severity int

const (
	InvalidSeverity Severity = iota
	Error
	Warning
	// InternalError is a defect of the compiler, not of the program.
	InternalError
)

var names = map[Severity]string{
	Error:         "error",
	Warning:       "warning",
	InternalError: "internal error",
}

func (this Severity) String() string {
	v, ok := names[this]
	if !ok {
		panic("invalid severity")
	}
	return v
}
