package zzdoc

import (
	"bufio"
	"io"
)

// scanner pulls single bytes from the input with a small pushback stack and
// a stack of injected finite sub-sources. Pushed-back bytes are returned
// before injected bytes, injected bytes before the primary reader. The
// grammar never needs more than two bytes of pushback (a peeked byte plus
// the byte that was dispatched on).
type scanner struct {
	r   *bufio.Reader
	err error // sticky read error, surfaced after EOF

	pushed  []byte
	sub     [][]byte
	pushArr [2]byte
	subArr  [4][]byte

	line int
	col  int
}

func (s *scanner) reset(r *bufio.Reader) {
	s.r = r
	s.err = nil
	s.pushed = s.pushArr[:0]
	s.sub = s.subArr[:0]
	s.line = 1
	s.col = 0
}

// next returns the next byte, or false at end of input. Line and column
// advance only for bytes read from the primary reader: pushed-back bytes
// were counted when first read, and injected bytes are re-parses of text
// that was already counted.
func (s *scanner) next() (byte, bool) {
	if n := len(s.pushed); n > 0 {
		b := s.pushed[n-1]
		s.pushed = s.pushed[:n-1]
		return b, true
	}
	for len(s.sub) > 0 {
		top := s.sub[len(s.sub)-1]
		if len(top) == 0 {
			s.sub = s.sub[:len(s.sub)-1]
			continue
		}
		b := top[0]
		s.sub[len(s.sub)-1] = top[1:]
		return b, true
	}
	if s.err != nil {
		return 0, false
	}
	b, err := s.r.ReadByte()
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		return 0, false
	}
	if b == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	return b, true
}

// push returns a byte to the front of the stream. At most two bytes may be
// pending at once; the grammar guarantees this by construction.
func (s *scanner) push(b byte) {
	if len(s.pushed) == cap(s.pushArr) {
		panic("zzdoc: scanner pushback overflow")
	}
	s.pushed = append(s.pushed, b)
}

// inject redirects subsequent reads to p until it is exhausted. Used to
// re-render buffered table cell text through the inline engine.
func (s *scanner) inject(p []byte) {
	s.sub = append(s.sub, p)
}
