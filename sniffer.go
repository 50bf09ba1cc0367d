package filemagic

import "io"

// Sniffer is an io.Writer that forwards everything to an underlying writer
// while keeping the leading bytes for identification. It lets content be
// identified on its way somewhere else, such as an upload being copied to
// storage.
//
// A Sniffer is not safe for concurrent writes.
type Sniffer struct {
	w   io.Writer
	m   *Matcher
	buf []byte
}

// NewSniffer creates a Sniffer writing through to w. A nil w discards the
// content; a nil m uses the default Matcher.
func NewSniffer(w io.Writer, m *Matcher) *Sniffer {
	if w == nil {
		w = io.Discard
	}
	if m == nil {
		m = Default()
	}
	return &Sniffer{w: w, m: m, buf: make([]byte, 0, PrefixSize)}
}

// Write records up to MaxReadSize leading bytes and forwards p.
func (s *Sniffer) Write(p []byte) (int, error) {
	if need := MaxReadSize - len(s.buf); need > 0 {
		if need > len(p) {
			need = len(p)
		}
		s.buf = append(s.buf, p[:need]...)
	}
	return s.w.Write(p)
}

// Done reports whether enough bytes have passed for the result to be final.
// Before that, Identify reflects only what has been written so far.
func (s *Sniffer) Done() bool {
	return len(s.buf) >= MaxReadSize
}

// Identify identifies the bytes written so far.
func (s *Sniffer) Identify() (Signature, bool) {
	return s.m.IdentifyBytes(s.buf)
}
