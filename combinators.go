package parsec

// Map runs p; on success it applies f to the value and keeps p's Remaining.
// Its label is p's label. It fails iff p fails, with p's failure.
func Map[O, U any](p Parser[O], f func(O) U) Parser[U] {
	return NewParser(p.label, func(s Stream) ParseResult[U] {
		return MapResult(p.Run(s), f)
	})
}

// Bind is monadic bind: it runs p, and on success evaluates k(value) to
// obtain the next parser and runs it on the remaining stream. Its label is
// p's label. Failures from either stage propagate unchanged.
func Bind[O, U any](p Parser[O], k func(O) Parser[U]) Parser[U] {
	return NewParser(p.label, func(s Stream) ParseResult[U] {
		res := p.Run(s)
		if res.IsFailure() {
			return failureAs[O, U](res)
		}
		return k(res.value).Run(res.remaining)
	})
}

// Apply runs pf for a function, then px on the remainder, and returns
// f(x).
func Apply[O, U any](pf Parser[func(O) U], px Parser[O]) Parser[U] {
	return Bind(pf, func(f func(O) U) Parser[U] {
		return Map(px, f)
	})
}

// NAry builds the applicative chain for a binary function once, rather than
// through a chain of hand-curried single-argument closures: it applies fn to
// the values parsed by p1 and p2 in order.
func NAry[A, B, U any](fn func(A, B) U, p1 Parser[A], p2 Parser[B]) Parser[U] {
	return Bind(p1, func(a A) Parser[U] {
		return Map(p2, func(b B) U {
			return fn(a, b)
		})
	})
}

// NAry3 is NAry generalized to three parsers.
func NAry3[A, B, C, U any](fn func(A, B, C) U, p1 Parser[A], p2 Parser[B], p3 Parser[C]) Parser[U] {
	return Bind(p1, func(a A) Parser[U] {
		return Bind(p2, func(b B) Parser[U] {
			return Map(p3, func(c C) U {
				return fn(a, b, c)
			})
		})
	})
}

// Sequence runs p, then q, and returns q's value. Equivalent to
// Bind(p, func(_ O) Parser[U] { return q }).
func Sequence[O, U any](p Parser[O], q Parser[U]) Parser[U] {
	return Bind(p, func(O) Parser[U] { return q })
}

// KeepSecond is an alias for Sequence.
func KeepSecond[O, U any](p Parser[O], q Parser[U]) Parser[U] {
	return Sequence(p, q)
}

// KeepFirst runs p, then q, and returns p's value, discarding q's.
func KeepFirst[O, U any](p Parser[O], q Parser[U]) Parser[O] {
	return Bind(p, func(o O) Parser[O] {
		return Map(q, func(U) O { return o })
	})
}

// WithLabel runs p; on failure it rewrites Expected to label while keeping
// Got and Pos. On success it has no effect.
func WithLabel[O any](p Parser[O], label Label) Parser[O] {
	return NewParser(label, func(s Stream) ParseResult[O] {
		res := p.Run(s)
		if res.IsFailure() {
			return Failure[O](label, res.got, res.pos)
		}
		return res
	})
}
