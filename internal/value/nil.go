package value

const (
	// Nil is the constant value nil.
	Nil = nilValue(0)
)

var _ Value = (*nilValue)(nil)

type nilValue uint8

func (nilValue) Type() Type     { return TypeNil }
func (nilValue) String() string { return "" }

// IsNil reports whether v is nil, either as Go nil or as the Nil value.
func IsNil(v Value) bool {
	return v == nil || v == Nil
}
