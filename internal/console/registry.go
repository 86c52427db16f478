package console

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gt4500/internal/ship"
)

// Result signals whether the command loop should keep reading input.
type Result int

const (
	// ResultContinue keeps the loop running.
	ResultContinue Result = iota
	// ResultStop ends the loop after the current command.
	ResultStop
)

// Handler processes one dispatched command line.
//
// fields is the comma-split line with the (original-case) keyword at index 0;
// argument fields are passed verbatim, exactly as split.
type Handler interface {
	Handle(ctx context.Context, sess *Session, fields []string) (Result, error)
}

// Registry maps command keywords to handlers. It is built once at startup
// and treated as read-only afterwards.
type Registry struct {
	handlers map[string]Handler
	names    []string
}

// NewRegistry creates the fixed four-entry command table.
//
// Precondition: gunner, recorder, and logger must be non-nil.
// Postcondition: Returns a Registry with exactly the HELP, GT4500, TORPEDO,
// and EXIT commands registered.
func NewRegistry(gunner *ship.Gunner, recorder Recorder, logger *zap.Logger) *Registry {
	names := []string{"HELP", "GT4500", "TORPEDO", "EXIT"}
	r := &Registry{
		handlers: make(map[string]Handler, len(names)),
		names:    names,
	}
	r.handlers["HELP"] = &helpHandler{commands: r.NameList()}
	r.handlers["GT4500"] = &gt4500Handler{}
	r.handlers["TORPEDO"] = &torpedoHandler{gunner: gunner, recorder: recorder, logger: logger}
	r.handlers["EXIT"] = &exitHandler{}
	return r
}

// Resolve looks up a handler by its upper-cased keyword.
//
// Postcondition: Returns (handler, true) if found, or (nil, false).
func (r *Registry) Resolve(keyword string) (Handler, bool) {
	h, ok := r.handlers[keyword]
	return h, ok
}

// Names returns the command keywords in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// NameList renders the keywords as a bracketed list for banner and help text.
func (r *Registry) NameList() string {
	return "[" + strings.Join(r.names, ", ") + "]"
}
