package base

import (
	"iter"
	"slices"
	"strings"
)

const whitespace = " \t\n\v\f\r"

// SubStr returns length bytes of s, starting at first. If length is NPos or
// exceeds the remaining bytes, the result extends to the end of s.
// first must not be greater than s.Len().
func (s String) SubStr(first, length int) String {
	rest := s[first:]
	if length < 0 || length > len(rest) {
		return rest
	}
	return rest[:length]
}

// Split splits s at every byte that is contained in separators. Every
// separator terminates a token, so leading, trailing and consecutive
// separators produce empty tokens, and an empty s produces a single empty
// token.
//
//	New(",a,").Split(",") // ["", "a", ""]
func (s String) Split(separators String) []String {
	return slices.Collect(s.SplitSeq(separators))
}

// SplitSeq is like Split, but yields the tokens one by one.
func (s String) SplitSeq(separators String) iter.Seq[String] {
	return func(yield func(String) bool) {
		bs := makeByteSet(separators)
		start := 0
		for i := 0; i < len(s); i++ {
			if !bs[s[i]] {
				continue
			}
			if !yield(s[start:i]) {
				return
			}
			start = i + 1
		}
		yield(s[start:])
	}
}

// Replace replaces count bytes, starting at first, with str. If count
// exceeds the remaining bytes, everything after first is replaced.
// first must not be greater than s.Len().
func (s *String) Replace(first, count int, str String) {
	cur := *s
	rest := cur[first:]
	if count < 0 || count > len(rest) {
		count = len(rest)
	}
	*s = cur[:first].Concat(str, rest[count:])
}

// Trim returns s without leading and trailing ASCII whitespace.
func (s String) Trim() String {
	return String(strings.Trim(string(s), whitespace))
}

// ToLower returns a copy of s with all ASCII upper case letters mapped
// to lower case. Other bytes are left untouched.
func (s String) ToLower() String {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return String(b)
}

// ToUpper returns a copy of s with all ASCII lower case letters mapped
// to upper case. Other bytes are left untouched.
func (s String) ToUpper() String {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return String(b)
}

// Reverse returns a copy of s with the bytes in reverse order.
func (s String) Reverse() String {
	b := []byte(s)
	slices.Reverse(b)
	return String(b)
}

// Erase removes the bytes in [first, last) and returns the position of the
// byte that followed the removed range, which is first.
func (s *String) Erase(first, last int) int {
	cur := *s
	*s = cur[:first] + cur[last:]
	return first
}

// Insert inserts all bytes of seq before pos.
func (s *String) Insert(pos int, seq iter.Seq[byte]) {
	cur := *s
	*s = cur[:pos].Concat(FromSeq(seq), cur[pos:])
}
