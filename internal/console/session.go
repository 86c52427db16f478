// Package console implements the fire-control command interpreter: a
// line-oriented dispatch loop over a fixed keyword table, a mutable session
// holding the currently configured ship, and the handlers for the HELP,
// GT4500, TORPEDO, and EXIT commands.
package console

import (
	"fmt"
	"io"

	"github.com/cory-johannsen/gt4500/internal/ship"
)

// Session is the mutable state that persists across commands within one run
// of the loop: the currently configured ship and the primary output sink.
type Session struct {
	// Ship is the currently configured spacecraft. Nil until a GT4500
	// command succeeds; replaced wholesale on reconfiguration.
	Ship *ship.Ship
	// Out receives command results, one line per write.
	Out io.Writer
}

// Println writes one result line to the session's primary output.
//
// Postcondition: Returns any I/O error from the underlying writer; such
// errors are fatal to the loop, not validation failures.
func (s *Session) Println(msg string) error {
	_, err := fmt.Fprintln(s.Out, msg)
	return err
}
