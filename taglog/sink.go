package taglog

import (
	"fmt"
	"io"
	"os"
)

// Sink receives composed log lines. The shape mirrors fmt.Printf: the
// logger hands over a decorated format string together with the original
// call arguments, timestamp and tag prepended, so a sink may either
// format the line itself or forward the pair to another printf-like
// layer. The returned count is advisory.
//
// Sinks are invoked without any logger-side serialization and must be
// safe for concurrent use.
type Sink func(format string, args ...any) (int, error)

// stdoutSink is the default sink.
func stdoutSink(format string, args ...any) (int, error) {
	return fmt.Fprintf(os.Stdout, format, args...)
}

// WriterSink adapts an io.Writer into a Sink. Each line arrives as a
// single Write call on w.
func WriterSink(w io.Writer) Sink {
	return func(format string, args ...any) (int, error) {
		return fmt.Fprintf(w, format, args...)
	}
}

// DiscardSink drops every line while reporting success.
func DiscardSink(string, ...any) (int, error) { return 0, nil }
