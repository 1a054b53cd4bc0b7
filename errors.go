package parsec

import "fmt"

// Label is a short human-readable tag attached to every parser. It is
// propagated into failures and composed by combinators ("A or B", "3 times
// digit"). Labels are descriptive only; they never affect parse decisions.
type Label string

// ParserError indicates a grammar bug rather than malformed input: reading
// Value/Remaining off a Failure, Any or Assemble with zero parsers,
// Repeat/RepeatList with n<1, Many/Some/AtLeastOne over a parser that
// succeeds without consuming input, or running an uninstalled Recursive
// parser. It is always raised via panic, never returned as part of a
// ParseResult.
type ParserError struct {
	msg string
}

func (e *ParserError) Error() string {
	return e.msg
}

func panicf(format string, args ...any) {
	panic(&ParserError{msg: fmt.Sprintf(format, args...)})
}
