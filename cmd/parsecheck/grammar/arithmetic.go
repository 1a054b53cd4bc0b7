// Package grammar builds a small arithmetic-expression grammar out of the
// parsec public API, purely to exercise Recursive, Either, Between, Bind,
// and Map end to end. It is not part of the library's public surface.
package grammar

import (
	"fmt"

	"github.com/tombolt/parsec"
)

// Eval parses and evaluates a +-*/ arithmetic expression over integers and
// parenthesised sub-expressions, e.g. "2 + 3 * (4 - 1)".
func Eval(input string) (int, error) {
	return EvalTraced(input, nil)
}

// EvalTraced is Eval, but the top-level expression parser reports each of its
// runs to tr, if tr is non-nil. The combinators inside the grammar are not
// traced individually.
func EvalTraced(input string, tr parsec.Tracer) (int, error) {
	expr := Expression()
	if tr != nil {
		expr = parsec.Traced(expr, tr)
	}

	res := parsec.KeepFirst(expr, parsec.EOF()).RunString(input)
	if res.IsFailure() {
		return 0, fmt.Errorf("%s", res.Error())
	}
	return res.Value(), nil
}

// Expression builds the grammar:
//
//	expr   = term (('+' | '-') term)*
//	term   = factor (('*' | '/') factor)*
//	factor = integer | '(' expr ')'
func Expression() parsec.Parser[int] {
	exprCell := parsec.Recursive[int]()

	ws := parsec.Whitespace0()

	integer := lexeme(parsec.Integer(), ws)
	factor := parsec.Either(
		integer,
		parsec.Between(
			lexeme(parsec.Char('('), ws),
			lexeme(parsec.Char(')'), ws),
			exprCell.Parser(),
		),
	)

	mulOp := lexeme(parsec.Either(parsec.Char('*'), parsec.Char('/')), ws)
	term := parsec.Bind(factor, func(first int) parsec.Parser[int] {
		return foldChain(first, mulOp, factor, applyMul)
	})

	addOp := lexeme(parsec.Either(parsec.Char('+'), parsec.Char('-')), ws)
	expr := parsec.Bind(term, func(first int) parsec.Parser[int] {
		return foldChain(first, addOp, term, applyAdd)
	})

	return exprCell.Recurse(func(s parsec.Stream) parsec.ParseResult[int] {
		return parsec.KeepSecond(ws, expr).Run(s)
	})
}

// lexeme runs p, then discards any trailing whitespace matched by ws.
func lexeme[T any](p parsec.Parser[T], ws parsec.Parser[string]) parsec.Parser[T] {
	return parsec.KeepFirst(p, ws)
}

// foldChain repeatedly parses (op operand) and left-folds combine over acc,
// stopping (without failing) as soon as op no longer matches.
func foldChain(acc int, op parsec.Parser[rune], operand parsec.Parser[int], combine func(int, rune, int) int) parsec.Parser[int] {
	return parsec.NewParser[int]("fold", func(s parsec.Stream) parsec.ParseResult[int] {
		cur := s
		for {
			opRes := op.Run(cur)
			if opRes.IsFailure() {
				return parsec.Success(acc, cur)
			}

			operandRes := operand.Run(opRes.Remaining())
			if operandRes.IsFailure() {
				return operandRes
			}

			acc = combine(acc, opRes.Value(), operandRes.Value())
			cur = operandRes.Remaining()
		}
	})
}

func applyMul(acc int, op rune, rhs int) int {
	if op == '*' {
		return acc * rhs
	}
	return acc / rhs
}

func applyAdd(acc int, op rune, rhs int) int {
	if op == '+' {
		return acc + rhs
	}
	return acc - rhs
}
