package console

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FiringRecord is one audit entry for a TORPEDO command.
type FiringRecord struct {
	ID                uuid.UUID
	Mode              string
	Success           bool
	PrimaryCount      int
	PrimaryFailRate   float64
	SecondaryCount    int
	SecondaryFailRate float64
	FiredAt           time.Time
}

// Recorder persists firing records. Implementations must tolerate being
// called once per TORPEDO command on the session's single thread.
type Recorder interface {
	RecordFiring(ctx context.Context, rec FiringRecord) error
}

// NopRecorder discards all records. Used when the firing log is disabled.
type NopRecorder struct{}

// RecordFiring discards rec and always succeeds.
func (NopRecorder) RecordFiring(_ context.Context, _ FiringRecord) error {
	return nil
}
