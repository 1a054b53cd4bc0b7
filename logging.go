package parsec

import "github.com/sirupsen/logrus"

// Tracer receives a structured event each time a traced parser runs. It is
// an optional development aid for diagnosing a grammar; it plays no part in
// parse semantics.
type Tracer interface {
	Trace(label Label, pos Position, success bool)
}

type logrusTracer struct {
	log logrus.FieldLogger
}

// NewLogrusTracer adapts a logrus.FieldLogger into a Tracer.
func NewLogrusTracer(log logrus.FieldLogger) Tracer {
	return &logrusTracer{log: log}
}

func (t *logrusTracer) Trace(label Label, pos Position, success bool) {
	t.log.WithFields(logrus.Fields{
		"label":  string(label),
		"line":   pos.Line,
		"column": pos.Col,
		"ok":     success,
	}).Debug("parsec: parser ran")
}

// Traced wraps p so that every run is reported to tr, without altering its
// result or label.
func Traced[O any](p Parser[O], tr Tracer) Parser[O] {
	return NewParser(p.label, func(s Stream) ParseResult[O] {
		res := p.Run(s)
		tr.Trace(p.label, s.Position(), res.IsSuccess())
		return res
	})
}
