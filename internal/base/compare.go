package base

import "strings"

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to
// or after b. The order is bytewise lexicographic.
func Compare(a, b String) int {
	return strings.Compare(string(a), string(b))
}

func (s String) Compare(other String) int {
	return Compare(s, other)
}

func (s String) Equal(other String) bool {
	return s == other
}
