package console

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/gt4500/internal/ship"
)

// torpedoHandler resolves a TORPEDO command into a probabilistic outcome.
type torpedoHandler struct {
	gunner   *ship.Gunner
	recorder Recorder
	logger   *zap.Logger
}

// Handle validates the firing mode, fires, records the attempt, and prints
// the outcome.
//
// Preconditions checked in order: a ship must be configured, exactly one
// mode argument must be present, and the argument must name a firing mode.
// Postcondition: Exactly one SUCCESS or FAIL line is printed on the happy
// path. Recorder failures are logged but never surface in command output.
func (h *torpedoHandler) Handle(ctx context.Context, sess *Session, fields []string) (Result, error) {
	if sess.Ship == nil {
		return ResultContinue, validationf("No ship has been initialized")
	}
	if len(fields) != 2 {
		return ResultContinue, validationf("usage: TORPEDO,<SINGLE|ALL>")
	}

	modeName := strings.ToUpper(fields[1])
	mode, err := ship.ParseFiringMode(modeName)
	if err != nil {
		return ResultContinue, validationf("Unknown firing mode: '%s'", modeName)
	}

	success := h.gunner.Fire(sess.Ship, mode)

	rec := FiringRecord{
		ID:                uuid.New(),
		Mode:              mode.String(),
		Success:           success,
		PrimaryCount:      sess.Ship.Primary().Count,
		PrimaryFailRate:   sess.Ship.Primary().FailureRate,
		SecondaryCount:    sess.Ship.Secondary().Count,
		SecondaryFailRate: sess.Ship.Secondary().FailureRate,
		FiredAt:           time.Now().UTC(),
	}
	if err := h.recorder.RecordFiring(ctx, rec); err != nil {
		h.logger.Warn("recording firing",
			zap.String("id", rec.ID.String()),
			zap.Error(err),
		)
	}

	outcome := "FAIL"
	if success {
		outcome = "SUCCESS"
	}
	if err := sess.Println(outcome); err != nil {
		return ResultStop, err
	}
	return ResultContinue, nil
}
