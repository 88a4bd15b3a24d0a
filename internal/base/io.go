package base

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

var (
	_ io.WriterTo  = String("")
	_ fmt.Scanner  = (*String)(nil)
	_ fmt.Stringer = String("")
)

// WriteTo writes the content of s to w, without any escaping.
func (s String) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(s))
	return int64(n), err
}

// Scan reads one whitespace delimited token and replaces the content of s
// with it. At the end of input, s is emptied and io.EOF is returned.
// This makes a String usable with fmt.Fscan and friends.
//
// fmt decodes its input as UTF-8, so invalid bytes arrive as U+FFFD here.
// Use ReadToken to read arbitrary bytes.
func (s *String) Scan(state fmt.ScanState, _ rune) error {
	tok, err := state.Token(true, func(r rune) bool {
		return r >= utf8.RuneSelf || !isSpace(byte(r))
	})
	if err != nil {
		return err
	}
	*s = String(tok)
	if len(tok) == 0 {
		return io.EOF
	}
	return nil
}

// ReadToken reads one token of bytes from r into s. Leading ASCII
// whitespace is skipped and the token ends before the next ASCII whitespace
// byte, which is left unread. Bytes are not interpreted otherwise.
// At the end of input, s is emptied and an error wrapping io.EOF is
// returned.
//
// If r is not an io.ByteScanner, it is buffered, and bytes after the token
// may be consumed from r.
func (s *String) ReadToken(r io.Reader) error {
	br, ok := r.(io.ByteScanner)
	if !ok {
		br = bufio.NewReader(r)
	}

	var tok []byte
	for {
		c, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				break
			}
			*s = ""
			return fmt.Errorf("scan: %w", err)
		}
		if isSpace(c) {
			if len(tok) == 0 {
				continue
			}
			if err := br.UnreadByte(); err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			break
		}
		tok = append(tok, c)
	}

	*s = String(tok)
	return nil
}

func isSpace(c byte) bool {
	return strings.IndexByte(whitespace, c) >= 0
}

func (s String) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

func (s *String) UnmarshalText(text []byte) error {
	*s = String(text)
	return nil
}
