// Package base provides String, the byte string type of the object and
// scripting runtime.
//
// A String is an owned sequence of bytes. No encoding is assumed and no
// operation validates or interprets UTF-8; case folding and whitespace
// trimming only know about ASCII.
//
// String is backed by a Go string, so plain assignment copies a String and
// two Strings never alias each other's content. Methods that mutate take a
// pointer receiver and replace the content of the receiver only after the
// new content has been built completely. Strings are comparable with the
// usual operators, bytewise, and can be used as map keys.
//
// Construction is explicit per source kind. A String is created from a
// literal (New), a byte slice (FromBytes, TakeBytes), a fill byte (Repeat),
// a byte sequence (FromSeq), another String (assignment, Clone, Take) or a
// dynamic value.Value (FromValue). The same set exists for assignment.
package base

import (
	"bytes"
	"iter"
	"strings"

	"github.com/tsatke/sentinel/internal/value"
)

// NPos is the position that denotes "not found" when returned from a
// search, and "until the end" when passed as a length or a backward
// search start.
const NPos = -1

type String string

// New creates a String from a literal.
func New(lit string) String {
	return String(lit)
}

// FromBytes creates a String holding a copy of b.
func FromBytes(b []byte) String {
	return String(b)
}

// TakeBytes creates a String from the bytes in *b and leaves *b empty.
func TakeBytes(b *[]byte) String {
	s := String(*b)
	*b = nil
	return s
}

// Repeat creates a String that consists of count times ch.
func Repeat(count int, ch byte) String {
	if count <= 0 {
		return ""
	}
	return String(bytes.Repeat([]byte{ch}, count))
}

// FromSeq creates a String from all bytes yielded by seq.
func FromSeq(seq iter.Seq[byte]) String {
	var buf []byte
	for b := range seq {
		buf = append(buf, b)
	}
	return String(buf)
}

// FromValue creates a String from the string representation of v.
// A nil value results in an empty String.
func FromValue(v value.Value) String {
	if value.IsNil(v) {
		return ""
	}
	return String(v.String())
}

// Take returns the content of *src and leaves *src empty.
func Take(src *String) String {
	s := *src
	*src = ""
	return s
}

// Clone returns a copy of s that does not share memory with s.
func (s String) Clone() String {
	return String(strings.Clone(string(s)))
}

func (s *String) Assign(other String) {
	*s = other
}

func (s *String) AssignBytes(b []byte) {
	*s = FromBytes(b)
}

func (s *String) AssignValue(v value.Value) {
	*s = FromValue(v)
}

// MoveFrom replaces the content of s with the content of *src and leaves
// *src empty.
func (s *String) MoveFrom(src *String) {
	*s = Take(src)
}

// At returns the byte at position i. i must be less than s.Len().
func (s String) At(i int) byte {
	return s[i]
}

// SetAt sets the byte at position i to ch. i must be less than s.Len().
// Every call copies the whole content of s, so it costs O(s.Len()). To
// change many bytes, use Update.
func (s *String) SetAt(i int, ch byte) {
	b := []byte(*s)
	b[i] = ch
	*s = String(b)
}

func (s String) IsEmpty() bool {
	return len(s) == 0
}

// Len returns the amount of bytes in s.
func (s String) Len() int {
	return len(s)
}

// Clear empties s.
func (s *String) Clear() {
	*s = ""
}

// CStr returns the content of s followed by a terminating NUL byte.
func (s String) CStr() []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// Bytes returns a copy of the content of s.
func (s String) Bytes() []byte {
	return []byte(s)
}

func (s String) String() string {
	return string(s)
}

// Concat returns s followed by all given parts.
func (s String) Concat(parts ...String) String {
	n := len(s)
	for _, p := range parts {
		n += len(p)
	}
	var sb strings.Builder
	sb.Grow(n)
	sb.WriteString(string(s))
	for _, p := range parts {
		sb.WriteString(string(p))
	}
	return String(sb.String())
}

// ConcatValue returns s followed by the string representation of v.
func (s String) ConcatValue(v value.Value) String {
	return s + FromValue(v)
}

func (s *String) AppendString(other String) {
	*s += other
}

func (s *String) AppendBytes(b []byte) {
	*s += String(b)
}

func (s *String) AppendValue(v value.Value) {
	*s += FromValue(v)
}

// AppendByte appends ch to s. Like every append, this copies the content of
// s. Build longer content with Concat or a strings.Builder.
func (s *String) AppendByte(ch byte) {
	*s += String([]byte{ch})
}

// Append appends count times ch to s.
func (s *String) Append(count int, ch byte) {
	*s += Repeat(count, ch)
}

func (s String) Contains(str String) bool {
	return strings.Contains(string(s), string(str))
}

// Swap exchanges the contents of s and other.
func (s *String) Swap(other *String) {
	*s, *other = *other, *s
}
