package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gt4500/internal/ship"
)

// LineReader supplies the console's input, one command line at a time.
// ReadLine returns io.EOF when the input is exhausted; a non-empty line may
// accompany the final io.EOF.
type LineReader interface {
	ReadLine() (string, error)
}

// Console runs the command dispatch loop for one or more sessions.
// A Console is immutable after construction and safe to share across
// concurrent sessions; each Run call owns its own Session.
type Console struct {
	registry *Registry
	logger   *zap.Logger
}

// New creates a Console with the fixed command table.
//
// Precondition: gunner, recorder, and logger must be non-nil. Use
// NopRecorder and zap.NewNop() where persistence or logging is not wanted.
func New(gunner *ship.Gunner, recorder Recorder, logger *zap.Logger) *Console {
	return &Console{
		registry: NewRegistry(gunner, recorder, logger),
		logger:   logger,
	}
}

// Registry exposes the command table (read-only) for banners and tooling.
func (c *Console) Registry() *Registry {
	return c.registry
}

// Run reads and handles commands from lines until the input is exhausted or
// an EXIT command is seen, writing results to out.
//
// feedback receives the welcome banner and per-command prompt only; pass
// NewOptionalSink(nil) for non-interactive runs. Validation failures are
// reported on out and never end the loop; I/O errors propagate.
//
// Postcondition: Returns nil on EXIT or end-of-input.
func (c *Console) Run(ctx context.Context, lines LineReader, out io.Writer, feedback Sink) error {
	sess := &Session{Out: out}

	feedback.Println("Welcome to the console interface.  Available commands: " + c.registry.NameList())

	for {
		feedback.Print("> ")

		line, err := lines.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// A final unterminated line is still a command.
				if line != "" {
					if _, derr := c.Dispatch(ctx, sess, line); derr != nil {
						return derr
					}
				}
				return nil
			}
			return fmt.Errorf("reading command: %w", err)
		}

		result, err := c.Dispatch(ctx, sess, line)
		if err != nil {
			return err
		}
		if result == ResultStop {
			return nil
		}
	}
}

// RunReader runs the loop over a plain byte stream, splitting it into lines.
func (c *Console) RunReader(ctx context.Context, r io.Reader, out io.Writer, feedback Sink) error {
	return c.Run(ctx, &scannerReader{scanner: bufio.NewScanner(r)}, out, feedback)
}

// Dispatch handles a single raw input line against the session.
//
// Comment-only and blank lines are no-ops. Unknown keywords produce a single
// output line and continue. A handler's ValidationError is rendered as one
// output line and the loop continues; any other handler error propagates.
//
// Postcondition: Returns (ResultContinue, nil) for every recovered
// condition; a non-nil error is always fatal to the caller's loop.
func (c *Console) Dispatch(ctx context.Context, sess *Session, line string) (Result, error) {
	if strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "#") {
		return ResultContinue, nil
	}

	// Strip a trailing comment, then surrounding whitespace.
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return ResultContinue, nil
	}

	fields := tokenize(line)
	keyword := strings.ToUpper(fields[0])

	handler, ok := c.registry.Resolve(keyword)
	if !ok {
		c.logger.Debug("unknown command", zap.String("keyword", keyword))
		if err := sess.Println(fmt.Sprintf("Unknown command: '%s'", keyword)); err != nil {
			return ResultStop, err
		}
		return ResultContinue, nil
	}

	result, err := handler.Handle(ctx, sess, fields)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			c.logger.Debug("command rejected",
				zap.String("keyword", keyword),
				zap.String("reason", verr.Message),
			)
			if perr := sess.Println(verr.Message); perr != nil {
				return ResultStop, perr
			}
			return ResultContinue, nil
		}
		return result, err
	}
	return result, nil
}

// tokenize splits a command line on commas. Argument fields are kept
// verbatim (no per-field trimming); trailing empty fields are dropped so
// that "TORPEDO," is an arity error rather than an empty mode name.
func tokenize(line string) []string {
	fields := strings.Split(line, ",")
	for len(fields) > 1 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// scannerReader adapts a bufio.Scanner to the LineReader interface.
type scannerReader struct {
	scanner *bufio.Scanner
}

func (s *scannerReader) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
