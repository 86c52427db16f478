package console

import "context"

// exitHandler ends the command loop.
type exitHandler struct{}

// Handle signals the loop to stop. No output, no side effects.
func (h *exitHandler) Handle(_ context.Context, _ *Session, _ []string) (Result, error) {
	return ResultStop, nil
}
