package parsec

// Between is KeepSecond(open, KeepFirst(mid, close)).
func Between[OO, O, OC any](open Parser[OO], close Parser[OC], mid Parser[O]) Parser[O] {
	return WithLabel(KeepSecond(open, KeepFirst(mid, close)), "between")
}

// Append runs p, then q on the remainder, then combines their values with
// T's Monoid instance. Its label is q's label. It fails if either p or q
// fails.
func Append[T Monoid[T]](p, q Parser[T]) Parser[T] {
	return NewParser(q.label, func(s Stream) ParseResult[T] {
		pRes := p.Run(s)
		return AppendResult(pRes, ContinueWith(pRes, q))
	})
}

// Assemble is a left fold of Append over all of ps. It requires at least
// one parser.
func Assemble[T Monoid[T]](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		panicf("Assemble: called with zero parsers")
	}
	acc := ps[0]
	for _, p := range ps[1:] {
		acc = Append(acc, p)
	}
	return acc
}

// Collect wraps each pi's value in a singleton slice and Assembles them,
// yielding an n-element sequence of values.
func Collect[O any](ps ...Parser[O]) Parser[[]O] {
	wrapped := make([]Parser[SliceMonoid[O]], len(ps))
	for i, p := range ps {
		wrapped[i] = Map(p, func(o O) SliceMonoid[O] { return SliceMonoid[O]{o} })
	}
	return Map(Assemble(wrapped...), func(s SliceMonoid[O]) []O { return []O(s) })
}
