// Command parsecheck is a smoke test for the parsec library: it parses and
// evaluates a small arithmetic-expression grammar built entirely from the
// public combinator API.
package main

import "github.com/tombolt/parsec/cmd/parsecheck/cmd"

func main() {
	cmd.Execute()
}
