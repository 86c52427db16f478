package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/gt4500/internal/console"
	"github.com/cory-johannsen/gt4500/internal/ship"
)

func TestHelp_EmitsFixedText(t *testing.T) {
	c, _ := newTestConsole(ship.NewSequenceSource(0.5))
	var out bytes.Buffer
	sess := &console.Session{Out: &out}

	dispatch(t, c, sess, "HELP")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Available commands: [HELP, GT4500, TORPEDO, EXIT]", lines[0])
	assert.Equal(t, "Generally, commands receive parameters; refer to the documentation", lines[1])
	assert.Contains(t, lines[2], "you must initialize a ship")
	assert.Nil(t, sess.Ship, "HELP must not mutate the session")
}

func TestGT4500_WrongArity(t *testing.T) {
	c, _ := newTestConsole(ship.NewSequenceSource(0.5))
	var out bytes.Buffer
	sess := &console.Session{Out: &out}

	for _, line := range []string{"GT4500", "GT4500,1", "GT4500,1,0.5,2", "GT4500,1,0.5,2,0.5,9"} {
		out.Reset()
		dispatch(t, c, sess, line)
		assert.Equal(t, "usage: GT4500,<PRI_CNT>,<PRI_FAIL_RATE>,<SEC_CNT>,<SEC_FAIL_RATE>\n", out.String(), "line %q", line)
	}
	assert.Nil(t, sess.Ship)
}

func TestGT4500_UnparseableArgument(t *testing.T) {
	c, _ := newTestConsole(ship.NewSequenceSource(0.5))
	var out bytes.Buffer
	sess := &console.Session{Out: &out}

	dispatch(t, c, sess, "GT4500,one,0.5,2,0.5")
	assert.True(t, strings.HasPrefix(out.String(), "Invalid numerical arguments passed: "), "got %q", out.String())

	out.Reset()
	dispatch(t, c, sess, "GT4500,1,half,2,0.5")
	assert.True(t, strings.HasPrefix(out.String(), "Invalid numerical arguments passed: "), "got %q", out.String())

	assert.Nil(t, sess.Ship)
}

func TestGT4500_ReplacesShip(t *testing.T) {
	c, _ := newTestConsole(ship.NewSequenceSource(0.5))
	var out bytes.Buffer
	sess := &console.Session{Out: &out}

	dispatch(t, c, sess, "GT4500,1,0.25,2,0.75")
	require.NotNil(t, sess.Ship)
	first := sess.Ship
	assert.Equal(t, ship.TubeBank{Count: 1, FailureRate: 0.25}, first.Primary())
	assert.Equal(t, ship.TubeBank{Count: 2, FailureRate: 0.75}, first.Secondary())

	dispatch(t, c, sess, "GT4500,9,0,9,0")
	assert.NotSame(t, first, sess.Ship, "reconfiguration must replace the ship")
	assert.Equal(t, 9, sess.Ship.Primary().Count)
}

func TestGT4500_FailedReconfigureKeepsOldShip(t *testing.T) {
	c, _ := newTestConsole(ship.NewSequenceSource(0.5))
	var out bytes.Buffer
	sess := &console.Session{Out: &out}

	dispatch(t, c, sess, "GT4500,1,0.25,2,0.75")
	configured := sess.Ship

	dispatch(t, c, sess, "GT4500,bad,args")
	assert.Same(t, configured, sess.Ship, "validation failure must leave the ship unchanged")
}

// TestGT4500_PermissiveRanges pins the deliberate lack of range validation:
// negative counts and out-of-[0,1] rates are accepted.
func TestGT4500_PermissiveRanges(t *testing.T) {
	c, _ := newTestConsole(ship.NewSequenceSource(0.5))
	var out bytes.Buffer
	sess := &console.Session{Out: &out}

	dispatch(t, c, sess, "GT4500,-1,2.5,3,-0.5")
	assert.Equal(t, "SUCCESS\n", out.String())
	require.NotNil(t, sess.Ship)
	assert.Equal(t, -1, sess.Ship.Primary().Count)
	assert.Equal(t, 2.5, sess.Ship.Primary().FailureRate)
}

func TestTorpedo_RequiresShipFirst(t *testing.T) {
	c, rec := newTestConsole(ship.NewSequenceSource(0.5))
	var out bytes.Buffer
	sess := &console.Session{Out: &out}

	// Ship precondition is checked before arity.
	dispatch(t, c, sess, "TORPEDO")
	assert.Equal(t, "No ship has been initialized\n", out.String())
	assert.Empty(t, rec.all())
}

func TestTorpedo_WrongArity(t *testing.T) {
	c, _ := newTestConsole(ship.NewSequenceSource(0.5))
	var out bytes.Buffer
	sess := &console.Session{Out: &out}

	dispatch(t, c, sess, "GT4500,1,0,1,0")
	out.Reset()

	dispatch(t, c, sess, "TORPEDO")
	assert.Equal(t, "usage: TORPEDO,<SINGLE|ALL>\n", out.String())

	out.Reset()
	dispatch(t, c, sess, "TORPEDO,SINGLE,ALL")
	assert.Equal(t, "usage: TORPEDO,<SINGLE|ALL>\n", out.String())
}

func TestTorpedo_UnknownMode(t *testing.T) {
	c, rec := newTestConsole(ship.NewSequenceSource(0.5))
	var out bytes.Buffer
	sess := &console.Session{Out: &out}

	dispatch(t, c, sess, "GT4500,1,0,1,0")
	out.Reset()

	dispatch(t, c, sess, "TORPEDO,spread")
	assert.Equal(t, "Unknown firing mode: 'SPREAD'\n", out.String())
	assert.Empty(t, rec.all(), "a rejected mode must not be recorded")
}

func TestTorpedo_ModeCaseInsensitive(t *testing.T) {
	c, _ := newTestConsole(ship.NewSequenceSource(0.9))
	var out bytes.Buffer
	sess := &console.Session{Out: &out}

	dispatch(t, c, sess, "GT4500,1,0,1,0")
	out.Reset()

	dispatch(t, c, sess, "TORPEDO,single")
	assert.Equal(t, "SUCCESS\n", out.String())
}

func TestTorpedo_RecordsFiring(t *testing.T) {
	c, rec := newTestConsole(ship.NewSequenceSource(0.9))
	var out bytes.Buffer
	sess := &console.Session{Out: &out}

	dispatch(t, c, sess, "GT4500,2,0.25,3,0.5")
	dispatch(t, c, sess, "TORPEDO,ALL")

	records := rec.all()
	require.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, "ALL", r.Mode)
	assert.True(t, r.Success)
	assert.Equal(t, 2, r.PrimaryCount)
	assert.Equal(t, 0.25, r.PrimaryFailRate)
	assert.Equal(t, 3, r.SecondaryCount)
	assert.Equal(t, 0.5, r.SecondaryFailRate)
	assert.NotZero(t, r.ID)
	assert.False(t, r.FiredAt.IsZero())
}

func TestTorpedo_RecorderFailureDoesNotAffectOutput(t *testing.T) {
	c, rec := newTestConsole(ship.NewSequenceSource(0.9))
	rec.err = assert.AnError
	var out bytes.Buffer
	sess := &console.Session{Out: &out}

	dispatch(t, c, sess, "GT4500,1,0,1,0")
	out.Reset()

	dispatch(t, c, sess, "TORPEDO,SINGLE")
	assert.Equal(t, "SUCCESS\n", out.String(), "recorder failures must stay out of command output")
}
