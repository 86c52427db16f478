package ship_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/gt4500/internal/ship"
)

func TestGunnerFire_DelegatesToShip(t *testing.T) {
	g := ship.NewGunner(ship.NewSequenceSource(0.9), zap.NewNop())
	s := ship.New(
		ship.TubeBank{Count: 1, FailureRate: 0.5},
		ship.TubeBank{Count: 0, FailureRate: 0},
	)
	assert.True(t, g.Fire(s, ship.FiringModeSingle))
}

func TestGunnerFire_LogsDrawsAndOutcome(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	g := ship.NewGunner(ship.NewSequenceSource(0.9, 0.9), zap.New(core))
	s := ship.New(
		ship.TubeBank{Count: 1, FailureRate: 0},
		ship.TubeBank{Count: 1, FailureRate: 0},
	)

	assert.True(t, g.Fire(s, ship.FiringModeAll))

	assert.Equal(t, 2, logs.FilterMessage("shot draw").Len(), "one draw log per attempted bank")
	fired := logs.FilterMessage("torpedo fired")
	assert.Equal(t, 1, fired.Len())
	assert.Equal(t, int64(2), fired.All()[0].ContextMap()["draws"])
	assert.Equal(t, true, fired.All()[0].ContextMap()["success"])
}

func TestGunnerFire_EmptyShipLogsZeroDraws(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	g := ship.NewGunner(ship.NewSequenceSource(0.5), zap.New(core))
	s := ship.New(ship.TubeBank{}, ship.TubeBank{})

	assert.False(t, g.Fire(s, ship.FiringModeSingle))
	assert.Equal(t, 0, logs.FilterMessage("shot draw").Len())
}
