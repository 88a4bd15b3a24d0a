package value

import "strings"

// Array is an ordered list of values.
type Array []Value

func (Array) Type() Type { return TypeArray }

// String joins the string representations of all elements with ", ",
// enclosed in brackets.
func (a Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteString(", ")
		}
		if v == nil {
			continue
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
