package parsec

import "sync"

// RecursiveParser is a Parser[O] whose run function is installed after
// construction, enabling self-reference: build the placeholder first, refer
// to it inside the body you are about to construct, then call Recurse to
// tie the knot.
type RecursiveParser[O any] struct {
	label Label
	once  sync.Once
	body  func(Stream) ParseResult[O]
}

// Recursive creates a forward-declared parser. Running it before Recurse
// installs a body panics with a ParserError.
func Recursive[O any]() *RecursiveParser[O] {
	return &RecursiveParser[O]{label: "<recursive>"}
}

// Parser returns the Parser[O] view of r. It is safe to call before
// Recurse; running the result before Recurse panics.
func (r *RecursiveParser[O]) Parser() Parser[O] {
	return NewParser(r.label, func(s Stream) ParseResult[O] {
		if r.body == nil {
			panicf("Recursive: run before Recurse installed a body")
		}
		return r.body(s)
	})
}

// Recurse installs body as r's run function. Only the first call takes
// effect; subsequent calls are no-ops, matching the "exactly once" lifecycle
// the placeholder promises. It returns the now-runnable Parser[O].
func (r *RecursiveParser[O]) Recurse(body func(Stream) ParseResult[O]) Parser[O] {
	r.once.Do(func() {
		r.body = body
	})
	return r.Parser()
}
