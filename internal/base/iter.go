package base

import "iter"

// All yields every position of s together with its byte, front to back.
func (s String) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := 0; i < len(s); i++ {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// Backward yields every position of s together with its byte, back to front.
func (s String) Backward() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// Values yields the bytes of s, front to back.
func (s String) Values() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := 0; i < len(s); i++ {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// Update replaces every byte of s with the result of fn, front to back.
func (s *String) Update(fn func(i int, b byte) byte) {
	b := []byte(*s)
	for i, c := range b {
		b[i] = fn(i, c)
	}
	*s = String(b)
}

// The functions below allow code that is generic over byte sequences to
// iterate a String without depending on its methods.

func All(s String) iter.Seq2[int, byte] {
	return s.All()
}

func Backward(s String) iter.Seq2[int, byte] {
	return s.Backward()
}

func Values(s String) iter.Seq[byte] {
	return s.Values()
}

func Update(s *String, fn func(i int, b byte) byte) {
	s.Update(fn)
}
