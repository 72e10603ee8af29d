package symbolkind

type SymbolKind int

func (s SymbolKind) String() string {
	switch s {
	case Type:
		return "type"
	case Var:
		return "variable"
	case Proc:
		return "procedure"
	}
	return "??"
}

const (
	Invalid SymbolKind = iota

	Type
	Var
	Proc
)
