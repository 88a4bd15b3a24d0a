package base

import "strings"

// byteSet is a lookup table for a set of bytes.
type byteSet [256]bool

func makeByteSet(set String) *byteSet {
	var bs byteSet
	for i := 0; i < len(set); i++ {
		bs[set[i]] = true
	}
	return &bs
}

// Find returns the position of the first occurrence of sub at or after pos,
// or NPos if there is none.
func (s String) Find(sub String, pos int) int {
	if pos < 0 || pos > len(s) {
		return NPos
	}
	i := strings.Index(string(s[pos:]), string(sub))
	if i < 0 {
		return NPos
	}
	return pos + i
}

// RFind returns the position of the last occurrence of sub that starts at or
// before pos, or NPos if there is none. If pos is NPos, the whole string is
// searched.
func (s String) RFind(sub String, pos int) int {
	if len(sub) > len(s) {
		return NPos
	}
	start := len(s) - len(sub)
	if pos >= 0 && pos < start {
		start = pos
	}
	i := strings.LastIndex(string(s[:start+len(sub)]), string(sub))
	if i < 0 {
		return NPos
	}
	return i
}

// FindFirstOf returns the first position at or after pos that holds a byte
// contained in set, or NPos.
func (s String) FindFirstOf(set String, pos int) int {
	if pos < 0 {
		return NPos
	}
	bs := makeByteSet(set)
	for i := pos; i < len(s); i++ {
		if bs[s[i]] {
			return i
		}
	}
	return NPos
}

// FindFirstNotOf returns the first position at or after pos that holds a
// byte not contained in set, or NPos.
func (s String) FindFirstNotOf(set String, pos int) int {
	if pos < 0 {
		return NPos
	}
	bs := makeByteSet(set)
	for i := pos; i < len(s); i++ {
		if !bs[s[i]] {
			return i
		}
	}
	return NPos
}

// FindLastOf returns the last position at or before pos that holds a byte
// contained in set, or NPos. If pos is NPos, the search starts at the end.
func (s String) FindLastOf(set String, pos int) int {
	bs := makeByteSet(set)
	for i := s.lastIndex(pos); i >= 0; i-- {
		if bs[s[i]] {
			return i
		}
	}
	return NPos
}

// FindLastNotOf returns the last position at or before pos that holds a byte
// not contained in set, or NPos. If pos is NPos, the search starts at the end.
func (s String) FindLastNotOf(set String, pos int) int {
	bs := makeByteSet(set)
	for i := s.lastIndex(pos); i >= 0; i-- {
		if !bs[s[i]] {
			return i
		}
	}
	return NPos
}

func (s String) lastIndex(pos int) int {
	if pos < 0 || pos >= len(s) {
		return len(s) - 1
	}
	return pos
}
