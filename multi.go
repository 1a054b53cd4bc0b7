package parsec

import "strconv"

// Optional is Either(p, Succeed()) restricted to Parser[string]'s sibling
// shape: it never fails, returning the zero value of O on a failed attempt.
func Optional[O any](p Parser[O]) Parser[O] {
	return NewParser(p.label, func(s Stream) ParseResult[O] {
		res := p.Run(s)
		if res.IsSuccess() {
			return res
		}
		var zero O
		return Success(zero, s)
	})
}

// Many parses p zero or more times, returning a slice of its values. It
// iterates rather than recursing, so it is safe over arbitrarily long
// input. A parser that succeeds without consuming input would loop
// forever; Many detects that and panics with a ParserError instead.
func Many[O any](p Parser[O]) Parser[[]O] {
	label := Label("many(" + string(p.label) + ")")
	return NewParser(label, func(s Stream) ParseResult[[]O] {
		results := []O{}
		cur := s
		for {
			res := p.Run(cur)
			if res.IsFailure() {
				return Success(results, cur)
			}
			if res.remaining.pos == cur.pos {
				panicf("Many applied to a zero-consumption parser %q", p.label)
			}
			results = append(results, res.value)
			cur = res.remaining
		}
	})
}

// Some parses p one or more times. It is equivalent to
// Append(Map(p, singleton), Many(p)) over the slice monoid, and fails if p
// does not match at least once.
func Some[O any](p Parser[O]) Parser[[]O] {
	label := Label("some(" + string(p.label) + ")")
	return NewParser(label, func(s Stream) ParseResult[[]O] {
		first := p.Run(s)
		if first.IsFailure() {
			return Failure[[]O](label, first.got, first.pos)
		}

		results := []O{first.value}
		cur := first.remaining
		for {
			res := p.Run(cur)
			if res.IsFailure() {
				return Success(results, cur)
			}
			if res.remaining.pos == cur.pos {
				panicf("Some applied to a zero-consumption parser %q", p.label)
			}
			results = append(results, res.value)
			cur = res.remaining
		}
	})
}

// AtLeastOne parses p one or more times, combining the values with T's
// Monoid instance rather than collecting them into a slice — useful over
// strings.
func AtLeastOne[T Monoid[T]](p Parser[T]) Parser[T] {
	label := Label("atLeastOne(" + string(p.label) + ")")
	return NewParser(label, func(s Stream) ParseResult[T] {
		first := p.Run(s)
		if first.IsFailure() {
			return Failure[T](label, first.got, first.pos)
		}

		acc := first.value
		cur := first.remaining
		for {
			res := p.Run(cur)
			if res.IsFailure() {
				return Success(acc, cur)
			}
			if res.remaining.pos == cur.pos {
				panicf("AtLeastOne applied to a zero-consumption parser %q", p.label)
			}
			acc = acc.Concat(res.value)
			cur = res.remaining
		}
	})
}

// Repeat runs p exactly n times via Append, combining the values with T's
// Monoid instance. n must be at least 1, or Repeat panics with a
// ParserError.
func Repeat[T Monoid[T]](n int, p Parser[T]) Parser[T] {
	if n < 1 {
		panicf("Repeat: n must be >= 1, got %d", n)
	}
	label := Label(strconv.Itoa(n) + " times " + string(p.label))
	return NewParser(label, func(s Stream) ParseResult[T] {
		first := p.Run(s)
		if first.IsFailure() {
			return Failure[T](label, first.got, first.pos)
		}

		acc := first.value
		cur := first.remaining
		for i := 1; i < n; i++ {
			res := p.Run(cur)
			if res.IsFailure() {
				return Failure[T](label, res.got, res.pos)
			}
			acc = acc.Concat(res.value)
			cur = res.remaining
		}
		return Success(acc, cur)
	})
}

// RepeatList is Repeat, but yields a slice of values instead of requiring a
// Monoid instance. n must be at least 1, or RepeatList panics with a
// ParserError.
func RepeatList[O any](n int, p Parser[O]) Parser[[]O] {
	if n < 1 {
		panicf("RepeatList: n must be >= 1, got %d", n)
	}
	label := Label(strconv.Itoa(n) + " times " + string(p.label))
	return NewParser(label, func(s Stream) ParseResult[[]O] {
		results := make([]O, 0, n)
		cur := s
		for i := 0; i < n; i++ {
			res := p.Run(cur)
			if res.IsFailure() {
				return Failure[[]O](label, res.got, res.pos)
			}
			results = append(results, res.value)
			cur = res.remaining
		}
		return Success(results, cur)
	})
}

// SepBy1 parses one or more p, separated by sep: (x : xs) where x = p and
// xs = many(sequence(sep, p)).
func SepBy1[O, S any](sep Parser[S], p Parser[O]) Parser[[]O] {
	return NewParser[[]O]("sepBy1", func(s Stream) ParseResult[[]O] {
		first := p.Run(s)
		if first.IsFailure() {
			return Failure[[]O]("sepBy1", first.got, first.pos)
		}

		results := []O{first.value}
		cur := first.remaining
		for {
			sepRes := sep.Run(cur)
			if sepRes.IsFailure() {
				return Success(results, cur)
			}

			elemRes := p.Run(sepRes.remaining)
			if elemRes.IsFailure() {
				// A trailing separator with no following element is not an
				// error: many(sequence(sep, p)) simply stops before it,
				// backtracking to the position before the separator.
				return Success(results, cur)
			}

			results = append(results, elemRes.value)
			cur = elemRes.remaining
		}
	})
}

// SepBy is Either(SepBy1(sep, p), Pure([]O{})). It always succeeds.
func SepBy[O, S any](sep Parser[S], p Parser[O]) Parser[[]O] {
	return NewParser[[]O]("sepBy", func(s Stream) ParseResult[[]O] {
		res := SepBy1(sep, p).Run(s)
		if res.IsSuccess() {
			return res
		}
		return Success([]O{}, s)
	})
}

// NotFollowedBy runs p on the current input but never consumes it. It
// succeeds with "" iff p failed, and fails iff p succeeded.
func NotFollowedBy[O any](p Parser[O]) Parser[string] {
	label := Label("notFollowedBy(" + string(p.label) + ")")
	return NewParser(label, func(s Stream) ParseResult[string] {
		res := p.Run(s)
		if res.IsFailure() {
			return Success("", s)
		}
		return Failure[string](label, s.Snippet(1), s.Position())
	})
}
