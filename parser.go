package parsec

// Parser is an immutable pair of a human label and a pure function from a
// Stream to a ParseResult. Parsers are values: running the same parser on
// the same stream twice yields equal results, and composing them never
// executes them early.
type Parser[O any] struct {
	label Label
	run   func(Stream) ParseResult[O]
}

// NewParser builds a Parser from its label and run function.
func NewParser[O any](label Label, run func(Stream) ParseResult[O]) Parser[O] {
	return Parser[O]{label: label, run: run}
}

// Run invokes the parser against s.
func (p Parser[O]) Run(s Stream) ParseResult[O] {
	return p.run(s)
}

// RunString is sugar for Run(NewStream(input)).
func (p Parser[O]) RunString(input string) ParseResult[O] {
	return p.run(NewStream(input))
}

// LabelOf returns p's label.
func (p Parser[O]) LabelOf() Label {
	return p.label
}

// WithLabel returns a parser identical to p except that a Failure's Expected
// is rewritten to label; Got and Pos, and any Success value, are untouched.
func (p Parser[O]) WithLabel(label Label) Parser[O] {
	return WithLabel(p, label)
}

// Map returns Map(p, f). Go methods cannot introduce their own type
// parameters, so the method form is restricted to endomorphisms; use the
// free function Map(p, f) directly to change the output type.
func (p Parser[O]) Map(f func(O) O) Parser[O] {
	return Map(p, f)
}

// Bind returns Bind(p, k).
func (p Parser[O]) Bind(k func(O) Parser[O]) Parser[O] {
	return Bind(p, k)
}

// Or returns Either(p, q).
func (p Parser[O]) Or(q Parser[O]) Parser[O] {
	return Either(p, q)
}

// NotFollowedBy returns NotFollowedBy(p).
func (p Parser[O]) NotFollowedBy() Parser[string] {
	return NotFollowedBy(p)
}

// KeepFirst returns KeepFirst(p, q), discarding q's value.
func (p Parser[O]) KeepFirst(q Parser[any]) Parser[O] {
	return KeepFirst[O, any](p, q)
}

// ThenIgnore is an alias for KeepFirst.
func (p Parser[O]) ThenIgnore(q Parser[any]) Parser[O] {
	return p.KeepFirst(q)
}
