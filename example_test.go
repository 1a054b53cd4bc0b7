package parsec_test

import (
	"fmt"

	"github.com/tombolt/parsec"
)

// ExampleRecursive builds expr = either(between('(', ')', expr), char('x'))
// and parses arbitrarily nested parentheses around a single 'x'.
func ExampleRecursive() {
	expr := parsec.Recursive[rune]()
	p := expr.Recurse(func(s parsec.Stream) parsec.ParseResult[rune] {
		return parsec.Either(
			parsec.Between(parsec.Char('('), parsec.Char(')'), expr.Parser()),
			parsec.Char('x'),
		).Run(s)
	})

	result := p.RunString("(((x)))")
	fmt.Println(result.IsSuccess(), string(result.Value()))
	// Output: true x
}

// ExampleParser_KeepFirst parses an identifier that must not be immediately
// followed by another identifier character, discarding the lookahead check's
// own (empty) result.
func ExampleParser_KeepFirst() {
	identifier := parsec.TakeWhile1(func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
	}, "identifier")

	keyword := identifier.KeepFirst(parsec.Map(
		parsec.NotFollowedBy(parsec.AlphaNumeric()),
		func(s string) any { return s },
	))

	result := keyword.RunString("let x")
	fmt.Println(result.IsSuccess(), result.Value(), result.Remaining().Remaining())
	// Output: true let  x
}
