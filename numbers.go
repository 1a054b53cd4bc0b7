package parsec

import "strconv"

// Integer parses an optionally-signed sequence of decimal digits into an
// int. A literal too large for an int on the host platform fails the parse.
func Integer() Parser[int] {
	return NewParser[int]("integer", func(s Stream) ParseResult[int] {
		signRes := Char('-').Run(s)
		start := s
		negative := false
		if signRes.IsSuccess() {
			negative = true
			start = signRes.remaining
		}

		digitsRes := TakeWhile1(isDigit, "digits").Run(start)
		if digitsRes.IsFailure() {
			return Failure[int]("integer", s.Snippet(1), s.Position())
		}

		n, err := strconv.Atoi(digitsRes.value)
		if err != nil {
			return Failure[int]("integer", s.Snippet(1), s.Position())
		}
		if negative {
			n = -n
		}
		return Success(n, digitsRes.remaining)
	})
}

// Float parses a sequence of numerical characters into a float64. '.' is
// the optional decimal delimiter; a number without a decimal part still
// parses as a float64.
func Float() Parser[float64] {
	return NewParser[float64]("float", func(s Stream) ParseResult[float64] {
		signRes := Char('-').Run(s)
		start := s
		negative := false
		if signRes.IsSuccess() {
			negative = true
			start = signRes.remaining
		}

		digitsRes := TakeWhile1(isDigit, "digits").Run(start)
		if digitsRes.IsFailure() {
			return Failure[float64]("float", s.Snippet(1), s.Position())
		}

		literal := digitsRes.value
		remaining := digitsRes.remaining

		dotRes := Char('.').Run(remaining)
		if dotRes.IsSuccess() {
			fracRes := TakeWhile1(isDigit, "digits").Run(dotRes.remaining)
			if fracRes.IsSuccess() {
				literal = literal + "." + fracRes.value
				remaining = fracRes.remaining
			}
		}

		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return Failure[float64]("float", s.Snippet(1), s.Position())
		}
		if negative {
			f = -f
		}
		return Success(f, remaining)
	})
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
