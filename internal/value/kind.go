package value

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the JSON kind of a Node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// IsScalar reports whether the kind holds a single value.
func (k Kind) IsScalar() bool {
	switch k {
	default:
		return false
	case KindBool, KindNumber, KindString:
		return true
	}
}
