// Package ship models the GT4500 torpedo-armed spacecraft: two independent
// tube banks, a firing-mode state machine, and the randomness abstraction
// that decides whether each shot leaves the tube.
package ship

import "fmt"

// FiringMode selects how many banks participate in a TORPEDO command.
type FiringMode int

const (
	// FiringModeSingle fires one torpedo from the primary bank, falling back
	// to the secondary bank when the primary has no tubes.
	FiringModeSingle FiringMode = iota
	// FiringModeAll fires one torpedo from every bank that has at least one
	// tube; the command succeeds only if every attempted bank succeeds.
	FiringModeAll
)

// String returns the wire-format mode name (SINGLE or ALL).
func (m FiringMode) String() string {
	switch m {
	case FiringModeSingle:
		return "SINGLE"
	case FiringModeAll:
		return "ALL"
	}
	return fmt.Sprintf("FiringMode(%d)", int(m))
}

// ParseFiringMode resolves a mode name to a FiringMode.
//
// Precondition: name must already be upper-cased by the caller.
// Postcondition: Returns the mode, or an error naming the unrecognised input.
func ParseFiringMode(name string) (FiringMode, error) {
	switch name {
	case "SINGLE":
		return FiringModeSingle, nil
	case "ALL":
		return FiringModeAll, nil
	}
	return 0, fmt.Errorf("unknown firing mode: %q", name)
}

// TubeBank is one battery of torpedo tubes sharing a failure probability.
// A bank is immutable once constructed: Count is a capacity label, not
// ammunition, and firing never decrements it.
type TubeBank struct {
	// Count is the number of tubes in the bank. A bank with zero tubes
	// never attempts a shot.
	Count int
	// FailureRate is the probability in [0,1] that a single shot fails.
	// Out-of-range values are accepted and behave as clamped by the draw
	// comparison (u < rate for u in [0,1)).
	FailureRate float64
}

// Fire attempts a single shot from the bank.
//
// Precondition: src must be non-nil; the bank must have Count > 0 (callers
// select banks before drawing).
// Postcondition: Exactly one value is drawn from src. Returns true when the
// drawn value is >= FailureRate.
func (b TubeBank) Fire(src Source) bool {
	return src.Float64() >= b.FailureRate
}

// Ship is a configured spacecraft with a primary and a secondary tube bank.
// Ships are immutable; reconfiguration replaces the whole value.
type Ship struct {
	primary   TubeBank
	secondary TubeBank
}

// New creates a Ship from the two tube banks.
//
// No range validation is applied: negative counts and failure rates outside
// [0,1] are accepted as configured. A negative count behaves like an empty
// bank.
func New(primary, secondary TubeBank) *Ship {
	return &Ship{primary: primary, secondary: secondary}
}

// Primary returns the primary tube bank.
func (s *Ship) Primary() TubeBank { return s.primary }

// Secondary returns the secondary tube bank.
func (s *Ship) Secondary() TubeBank { return s.secondary }

// FireTorpedo executes a firing mode against the ship's banks.
//
// SINGLE fires the primary bank if it has tubes, otherwise the secondary;
// with both banks empty the shot fails without drawing randomness. ALL fires
// every non-empty bank independently and succeeds only if every attempted
// bank succeeds, which is vacuously true when no bank has tubes.
//
// Precondition: src must be non-nil.
// Postcondition: At most one draw per bank is consumed from src.
func (s *Ship) FireTorpedo(mode FiringMode, src Source) bool {
	switch mode {
	case FiringModeSingle:
		switch {
		case s.primary.Count > 0:
			return s.primary.Fire(src)
		case s.secondary.Count > 0:
			return s.secondary.Fire(src)
		default:
			return false
		}
	case FiringModeAll:
		success := true
		if s.primary.Count > 0 {
			success = s.primary.Fire(src) && success
		}
		if s.secondary.Count > 0 {
			success = s.secondary.Fire(src) && success
		}
		return success
	}
	return false
}
