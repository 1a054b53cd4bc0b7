package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPure(t *testing.T) {
	t.Parallel()

	got := Pure(42).RunString("rest")
	assert.True(t, got.IsSuccess())
	assert.Equal(t, 42, got.Value())
	assert.Equal(t, "rest", got.Remaining().Remaining())
}

func TestFail(t *testing.T) {
	t.Parallel()

	got := Fail[int]("never").RunString("x")
	assert.True(t, got.IsFailure())
	assert.Equal(t, Label("never"), got.Expected())
}

func TestSucceedIsPureEmptyString(t *testing.T) {
	t.Parallel()

	got := Succeed().RunString("rest")
	assert.True(t, got.IsSuccess())
	assert.Equal(t, "", got.Value())
	assert.Equal(t, "rest", got.Remaining().Remaining())
}

func TestSatisfy(t *testing.T) {
	t.Parallel()

	p := Satisfy(func(r rune) bool { return r == 'z' }, "z")

	got := p.RunString("zx")
	assert.True(t, got.IsSuccess())
	assert.Equal(t, 'z', got.Value())

	assert.True(t, p.RunString("x").IsFailure())
	assert.True(t, p.RunString("").IsFailure())
}

func TestChar(t *testing.T) {
	t.Parallel()

	p := Char('a')
	assert.True(t, p.RunString("a").IsSuccess())
	assert.True(t, p.RunString("b").IsFailure())
}

func TestAnySingle(t *testing.T) {
	t.Parallel()

	got := AnySingle().RunString("€x")
	assert.True(t, got.IsSuccess())
	assert.Equal(t, '€', got.Value())

	assert.True(t, AnySingle().RunString("").IsFailure())
}

func TestEOF(t *testing.T) {
	t.Parallel()

	got := EOF().RunString("")
	assert.True(t, got.IsSuccess())

	assert.True(t, EOF().RunString("x").IsFailure())
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	p := OneOf("abc")
	assert.True(t, p.RunString("b").IsSuccess())
	assert.True(t, p.RunString("z").IsFailure())
}

func TestNoneOf(t *testing.T) {
	t.Parallel()

	p := NoneOf("abc")
	assert.True(t, p.RunString("z").IsSuccess())
	assert.True(t, p.RunString("a").IsFailure())
	assert.True(t, p.RunString("").IsFailure())
}

func TestCharacterClasses(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		p      Parser[rune]
		input  string
		wantOK bool
	}{
		{name: "digit matches 0-9", p: Digit(), input: "5", wantOK: true},
		{name: "digit rejects letter", p: Digit(), input: "a", wantOK: false},
		{name: "alpha matches letter", p: Alpha(), input: "Q", wantOK: true},
		{name: "alpha rejects digit", p: Alpha(), input: "5", wantOK: false},
		{name: "alphanumeric matches digit", p: AlphaNumeric(), input: "5", wantOK: true},
		{name: "alphanumeric matches letter", p: AlphaNumeric(), input: "q", wantOK: true},
		{name: "alphanumeric rejects symbol", p: AlphaNumeric(), input: "$", wantOK: false},
		{name: "space matches ' '", p: Space(), input: " ", wantOK: true},
		{name: "tab matches \\t", p: Tab(), input: "\t", wantOK: true},
		{name: "CR matches \\r", p: CR(), input: "\r", wantOK: true},
		{name: "LF matches \\n", p: LF(), input: "\n", wantOK: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantOK, tc.p.RunString(tc.input).IsSuccess())
		})
	}
}

func TestCRLF(t *testing.T) {
	t.Parallel()

	got := CRLF().RunString("\r\nx")
	assert.True(t, got.IsSuccess())
	assert.Equal(t, "\r\n", got.Value())
	assert.Equal(t, "x", got.Remaining().Remaining())

	assert.True(t, CRLF().RunString("\nx").IsFailure())
}

func TestNewline(t *testing.T) {
	t.Parallel()

	crlf := Newline().RunString("\r\nx")
	assert.True(t, crlf.IsSuccess())
	assert.Equal(t, "\r\n", crlf.Value())

	lf := Newline().RunString("\nx")
	assert.True(t, lf.IsSuccess())
	assert.Equal(t, "\n", lf.Value())
}

func TestWhitespace0(t *testing.T) {
	t.Parallel()

	got := Whitespace0().RunString("  \tx")
	assert.True(t, got.IsSuccess())
	assert.Equal(t, "  \t", got.Value())

	empty := Whitespace0().RunString("x")
	assert.True(t, empty.IsSuccess())
	assert.Equal(t, "", empty.Value())
}

func TestWhitespace1(t *testing.T) {
	t.Parallel()

	got := Whitespace1().RunString(" x")
	assert.True(t, got.IsSuccess())
	assert.Equal(t, " ", got.Value())

	assert.True(t, Whitespace1().RunString("x").IsFailure())
}

func TestString(t *testing.T) {
	t.Parallel()

	p := String("foo")

	got := p.RunString("foobar")
	assert.True(t, got.IsSuccess())
	assert.Equal(t, "foo", got.Value())
	assert.Equal(t, "bar", got.Remaining().Remaining())

	assert.True(t, p.RunString("fox").IsFailure())
	assert.True(t, p.RunString("fo").IsFailure())
}

func TestTakeWhile(t *testing.T) {
	t.Parallel()

	p := TakeWhile(func(r rune) bool { return r == 'a' })

	got := p.RunString("aaab")
	assert.True(t, got.IsSuccess())
	assert.Equal(t, "aaa", got.Value())

	empty := p.RunString("b")
	assert.True(t, empty.IsSuccess())
	assert.Equal(t, "", empty.Value())
}

func TestTakeWhile1(t *testing.T) {
	t.Parallel()

	p := TakeWhile1(func(r rune) bool { return r == 'a' }, "a's")

	got := p.RunString("aaab")
	assert.True(t, got.IsSuccess())
	assert.Equal(t, "aaa", got.Value())

	failed := p.RunString("b")
	assert.True(t, failed.IsFailure())
	assert.Equal(t, Label("a's"), failed.Expected())
}

func BenchmarkTakeWhile(b *testing.B) {
	p := TakeWhile(func(r rune) bool { return r != ' ' })
	for i := 0; i < b.N; i++ {
		p.RunString("a-long-run-of-non-space-characters")
	}
}
