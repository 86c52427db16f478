package console

import (
	"context"
	"strconv"

	"github.com/cory-johannsen/gt4500/internal/ship"
)

// gt4500Handler configures a new GT4500, replacing the session's ship.
type gt4500Handler struct{}

// Handle parses the four tube-bank parameters and installs the new ship.
//
// The parameters are deliberately not range-checked: negative counts and
// failure rates outside [0,1] are accepted as given.
//
// Postcondition: On success the session's ship is replaced and one SUCCESS
// line is printed. On validation failure the previous ship is untouched.
func (h *gt4500Handler) Handle(_ context.Context, sess *Session, fields []string) (Result, error) {
	if len(fields) != 5 {
		return ResultContinue, validationf("usage: GT4500,<PRI_CNT>,<PRI_FAIL_RATE>,<SEC_CNT>,<SEC_FAIL_RATE>")
	}

	primaryCount, err := strconv.Atoi(fields[1])
	if err != nil {
		return ResultContinue, validationf("Invalid numerical arguments passed: %s", err)
	}
	primaryFailRate, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return ResultContinue, validationf("Invalid numerical arguments passed: %s", err)
	}
	secondaryCount, err := strconv.Atoi(fields[3])
	if err != nil {
		return ResultContinue, validationf("Invalid numerical arguments passed: %s", err)
	}
	secondaryFailRate, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return ResultContinue, validationf("Invalid numerical arguments passed: %s", err)
	}

	sess.Ship = ship.New(
		ship.TubeBank{Count: primaryCount, FailureRate: primaryFailRate},
		ship.TubeBank{Count: secondaryCount, FailureRate: secondaryFailRate},
	)
	if err := sess.Println("SUCCESS"); err != nil {
		return ResultStop, err
	}
	return ResultContinue, nil
}
