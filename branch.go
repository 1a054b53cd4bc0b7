package parsec

// Either runs p; if it succeeds, returns that result. On failure it runs q
// from the original input position — backtracking is total, p's
// consumption is discarded. If q succeeds, returns it; otherwise returns a
// failure labelled "<p-label> or <q-label>" with Got taken from q's
// failure.
func Either[O any](p, q Parser[O]) Parser[O] {
	label := Label(string(p.label) + " or " + string(q.label))
	return NewParser(label, func(s Stream) ParseResult[O] {
		pRes := p.Run(s)
		if pRes.IsSuccess() {
			return pRes
		}

		qRes := q.Run(s)
		if qRes.IsSuccess() {
			return qRes
		}

		return Failure[O](label, qRes.got, qRes.pos)
	})
}

// Any (a.k.a. Choice) is a right fold over Either seeded with Fail(""),
// relabelled to "p1 or … or pn". It fails only if every branch fails.
// Calling it with no parsers is a programmer error.
func Any[O any](parsers ...Parser[O]) Parser[O] {
	if len(parsers) == 0 {
		panicf("Any: called with zero parsers")
	}

	acc := Fail[O]("")
	for i := len(parsers) - 1; i >= 0; i-- {
		acc = Either(parsers[i], acc)
	}

	labels := make([]string, len(parsers))
	for i, p := range parsers {
		labels[i] = string(p.label)
	}
	label := Label(joinOr(labels))

	return NewParser(label, func(s Stream) ParseResult[O] {
		res := acc.Run(s)
		if res.IsFailure() {
			return Failure[O](label, res.got, res.pos)
		}
		return res
	})
}

// Choice is an alias for Any.
func Choice[O any](parsers ...Parser[O]) Parser[O] {
	return Any(parsers...)
}

func joinOr(labels []string) string {
	out := labels[0]
	for _, l := range labels[1:] {
		out += " or " + l
	}
	return out
}
