// Package handlers connects the Telnet transport to the console command loop.
package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gt4500/internal/console"
	"github.com/cory-johannsen/gt4500/internal/frontend/telnet"
	"github.com/cory-johannsen/gt4500/internal/ship"
)

// ConsoleHandler runs one console command loop per Telnet connection.
// It implements telnet.SessionHandler.
type ConsoleHandler struct {
	recorder console.Recorder
	sessions *Manager
	logger   *zap.Logger
}

// NewConsoleHandler creates a handler that serves the console over Telnet.
//
// Precondition: recorder, sessions, and logger must be non-nil.
func NewConsoleHandler(recorder console.Recorder, sessions *Manager, logger *zap.Logger) *ConsoleHandler {
	return &ConsoleHandler{
		recorder: recorder,
		sessions: sessions,
		logger:   logger,
	}
}

// HandleSession runs the console loop until the client exits or disconnects.
// Each connection gets its own ship state and its own randomness source.
//
// Postcondition: The session is deregistered when this method returns.
func (h *ConsoleHandler) HandleSession(ctx context.Context, conn *telnet.Conn) error {
	entry := h.sessions.Add(conn.RemoteAddr().String())
	defer h.sessions.Remove(entry.ID)

	logger := h.logger.With(
		zap.String("session_id", entry.ID.String()),
		zap.String("remote_addr", entry.RemoteAddr),
	)

	gunner := ship.NewGunner(ship.NewCryptoSource(), logger)
	c := console.New(gunner, h.recorder, logger)

	out := &crlfWriter{conn: conn}
	return c.Run(ctx, conn, out, console.NewOptionalSink(out))
}

// crlfWriter adapts a telnet.Conn to io.Writer, translating \n to \r\n
// so console output renders correctly on Telnet clients.
type crlfWriter struct {
	conn *telnet.Conn
}

func (w *crlfWriter) Write(p []byte) (int, error) {
	buf := make([]byte, 0, len(p)+8)
	for _, b := range p {
		if b == '\n' {
			buf = append(buf, '\r')
		}
		buf = append(buf, b)
	}
	if err := w.conn.Write(buf); err != nil {
		return 0, err
	}
	return len(p), nil
}
