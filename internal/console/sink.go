package console

import (
	"fmt"
	"io"
)

// Sink receives interactive feedback (the prompt and welcome banner) that is
// useful in a live session but must never reach the primary output stream.
type Sink interface {
	// Print writes msg without a trailing newline.
	Print(msg string)
	// Println writes msg followed by a newline.
	Println(msg string)
}

// NewOptionalSink wraps w in a Sink. A nil writer yields a no-op sink, which
// is what allows the console to be driven non-interactively while still
// producing deterministic primary output.
func NewOptionalSink(w io.Writer) Sink {
	if w == nil {
		return nopSink{}
	}
	return &writerSink{w: w}
}

// writerSink writes feedback to an io.Writer. Write errors are discarded:
// feedback is best-effort and never affects command processing.
type writerSink struct {
	w io.Writer
}

func (s *writerSink) Print(msg string)   { _, _ = io.WriteString(s.w, msg) }
func (s *writerSink) Println(msg string) { _, _ = fmt.Fprintln(s.w, msg) }

type nopSink struct{}

func (nopSink) Print(string)   {}
func (nopSink) Println(string) {}
