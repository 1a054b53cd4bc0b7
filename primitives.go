package parsec

import (
	"strings"
	"unicode/utf8"
)

// Pure always succeeds with value v, consuming nothing.
func Pure[O any](v O) Parser[O] {
	return NewParser[O]("<pure>", func(s Stream) ParseResult[O] {
		return Success(v, s)
	})
}

// Fail always fails with Expected=label, Got=the next snippet of input.
func Fail[O any](label Label) Parser[O] {
	return NewParser[O](label, func(s Stream) ParseResult[O] {
		return Failure[O](label, s.Snippet(1), s.Position())
	})
}

// Succeed is Pure(""), the identity element for Either.
func Succeed() Parser[string] {
	return Pure("")
}

// Satisfy consumes one code point if pred holds for it; it fails on EOF or a
// non-matching rune.
func Satisfy(pred func(rune) bool, label Label) Parser[rune] {
	return NewParser(label, func(s Stream) ParseResult[rune] {
		r, next, ok := s.Take1()
		if !ok || !pred(r) {
			return Failure[rune](label, s.Snippet(1), s.Position())
		}
		return Success(r, next)
	})
}

// Char parses a single code point equal to c.
func Char(c rune) Parser[rune] {
	return Satisfy(func(r rune) bool { return r == c }, Label("'"+string(c)+"'"))
}

// AnySingle consumes any single code point; it fails only on EOF.
func AnySingle() Parser[rune] {
	return Satisfy(func(rune) bool { return true }, "any character")
}

// EOF succeeds with "" iff the stream is exhausted; otherwise it fails with
// expected="<EOF>".
func EOF() Parser[string] {
	return NewParser[string]("<EOF>", func(s Stream) ParseResult[string] {
		if s.IsEOF() {
			return Success("", s)
		}
		return Failure[string]("<EOF>", s.Snippet(1), s.Position())
	})
}

// OneOf parses a single code point present in set.
func OneOf(set string) Parser[rune] {
	return Satisfy(func(r rune) bool { return strings.ContainsRune(set, r) },
		Label("one of \""+set+"\""))
}

// NoneOf parses a single code point absent from set; it fails on EOF.
func NoneOf(set string) Parser[rune] {
	return Satisfy(func(r rune) bool { return !strings.ContainsRune(set, r) },
		Label("none of \""+set+"\""))
}

// Digit parses a single ASCII digit: 0-9.
func Digit() Parser[rune] {
	return Satisfy(func(r rune) bool { return r >= '0' && r <= '9' }, "digit")
}

// Alpha parses a single ASCII letter: a-z, A-Z.
func Alpha() Parser[rune] {
	return Satisfy(func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}, "letter")
}

// AlphaNumeric parses a single ASCII letter or digit.
func AlphaNumeric() Parser[rune] {
	return Satisfy(func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
	}, "letter or digit")
}

// Space parses a single ' ' character.
func Space() Parser[rune] {
	return Char(' ').WithLabel("space")
}

// Tab parses a single '\t' character.
func Tab() Parser[rune] {
	return Char('\t').WithLabel("tab")
}

// CR parses a single '\r' character.
func CR() Parser[rune] {
	return Char('\r').WithLabel("carriage return")
}

// LF parses a single '\n' character.
func LF() Parser[rune] {
	return Char('\n').WithLabel("line feed")
}

// CRLF parses the two-character sequence "\r\n".
func CRLF() Parser[string] {
	return String("\r\n").WithLabel("CRLF")
}

// Newline parses a newline: either CRLF or LF.
func Newline() Parser[string] {
	return Either(CRLF(), Map(LF(), func(r rune) string { return string(r) })).WithLabel("newline")
}

// Whitespace0 parses zero or more space or tab characters.
func Whitespace0() Parser[string] {
	return TakeWhile(func(r rune) bool { return r == ' ' || r == '\t' })
}

// Whitespace1 parses one or more space or tab characters.
func Whitespace1() Parser[string] {
	return TakeWhile1(func(r rune) bool { return r == ' ' || r == '\t' }, "whitespace")
}

// String parses an exact, case-sensitive match of tag.
func String(tag string) Parser[string] {
	return NewParser(Label("\""+tag+"\""), func(s Stream) ParseResult[string] {
		cur := s
		for _, want := range tag {
			r, next, ok := cur.Take1()
			if !ok || r != want {
				return Failure[string](Label("\""+tag+"\""), s.Snippet(utf8.RuneCountInString(tag)), s.Position())
			}
			cur = next
		}
		return Success(tag, cur)
	})
}

// TakeWhile parses zero or more code points satisfying pred, returned as a
// string. It always succeeds, possibly consuming nothing.
func TakeWhile(pred func(rune) bool) Parser[string] {
	return NewParser[string]("take-while", func(s Stream) ParseResult[string] {
		var b strings.Builder
		cur := s
		for {
			r, next, ok := cur.Take1()
			if !ok || !pred(r) {
				break
			}
			b.WriteRune(r)
			cur = next
		}
		return Success(b.String(), cur)
	})
}

// TakeWhile1 parses one or more code points satisfying pred, returned as a
// string. It fails if no code point matches.
func TakeWhile1(pred func(rune) bool, label Label) Parser[string] {
	return NewParser(label, func(s Stream) ParseResult[string] {
		res := TakeWhile(pred).Run(s)
		if res.value == "" {
			return Failure[string](label, s.Snippet(1), s.Position())
		}
		return res
	})
}
