package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tombolt/parsec"
	"github.com/tombolt/parsec/cmd/parsecheck/grammar"
)

var (
	inputFlag string
	traceFlag bool

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "parsecheck",
	Short: "Evaluate an arithmetic expression with the parsec combinator library",
	Long: `parsecheck parses and evaluates a small +-*/ arithmetic expression,
built entirely out of parsec's public combinators, to prove the library
composes end to end.`,
	RunE: runCheck,
}

func init() {
	rootCmd.Flags().StringVarP(&inputFlag, "input", "i", "", "expression to evaluate (reads stdin if omitted)")
	rootCmd.Flags().BoolVarP(&traceFlag, "trace", "t", false, "log a trace of the top-level expression parser's run")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCheck(c *cobra.Command, args []string) error {
	var tracer parsec.Tracer
	if traceFlag {
		log.SetLevel(logrus.DebugLevel)
		tracer = parsec.NewLogrusTracer(log)
	}

	input := inputFlag
	if input == "" {
		raw, err := io.ReadAll(c.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = string(raw)
	}

	value, err := grammar.EvalTraced(input, tracer)
	if err != nil {
		log.WithField("input", input).Error("parse failed")
		return err
	}

	fmt.Fprintln(c.OutOrStdout(), value)
	return nil
}
