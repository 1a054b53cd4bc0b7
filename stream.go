package parsec

import (
	"strings"
	"unicode/utf8"
)

// Stream is an immutable cursor over a code-point sequence.
//
// Advancing a Stream never mutates it: Take1 returns a new Stream, leaving
// the receiver untouched, so holding on to an old Stream and re-deriving a
// successor from it later always yields the same result.
type Stream struct {
	text string
	pos  int // byte offset into text
	at   Position
}

// NewStream builds a Stream positioned at the start of text.
func NewStream(text string) Stream {
	return Stream{text: text, pos: 0, at: StartPosition()}
}

// IsEOF reports whether no code points remain.
func (s Stream) IsEOF() bool {
	return s.pos >= len(s.text)
}

// Position returns the stream's current location.
func (s Stream) Position() Position {
	return s.at
}

// Remaining returns the unconsumed suffix of the original text.
func (s Stream) Remaining() string {
	return s.text[s.pos:]
}

// Take1 returns the next code point and the Stream advanced past it. The
// bool result is false at EOF, in which case the returned Stream equals s.
func (s Stream) Take1() (rune, Stream, bool) {
	if s.IsEOF() {
		return 0, s, false
	}
	r, size := utf8.DecodeRuneInString(s.text[s.pos:])
	next := Stream{
		text: s.text,
		pos:  s.pos + size,
		at:   s.at.Advance(r),
	}
	return r, next, true
}

// Snippet returns up to the next n code points as a display string for error
// messages, or "<EOF>" if the stream is exhausted.
func (s Stream) Snippet(n int) string {
	if s.IsEOF() {
		return "<EOF>"
	}

	var b strings.Builder
	cur := s
	for i := 0; i < n; i++ {
		r, next, ok := cur.Take1()
		if !ok {
			break
		}
		b.WriteRune(r)
		cur = next
	}
	return b.String()
}
