package console

import "context"

// helpHandler prints the command summary. No side effects.
type helpHandler struct {
	commands string
}

// Handle emits the fixed help text.
//
// Postcondition: Always returns ResultContinue; the session is unchanged.
func (h *helpHandler) Handle(_ context.Context, sess *Session, _ []string) (Result, error) {
	lines := []string{
		"Available commands: " + h.commands,
		"Generally, commands receive parameters; refer to the documentation",
		"Before firing torpedoes using the TORPEDO command, you must initialize a ship (eg. a GT4500) using its name as a command",
	}
	for _, line := range lines {
		if err := sess.Println(line); err != nil {
			return ResultStop, err
		}
	}
	return ResultContinue, nil
}
