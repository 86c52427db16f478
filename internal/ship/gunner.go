package ship

import "go.uber.org/zap"

// Gunner wraps a Source and logger to provide logged torpedo firing.
// Every draw and every command-level outcome is logged at debug level.
type Gunner struct {
	src    Source
	logger *zap.Logger
}

// NewGunner creates a Gunner that resolves shots with src and logs each
// firing to logger.
//
// Precondition: src and logger must be non-nil.
func NewGunner(src Source, logger *zap.Logger) *Gunner {
	return &Gunner{src: src, logger: logger}
}

// Fire executes a firing mode against s and logs the outcome.
//
// Precondition: s must be non-nil.
// Postcondition: outcome logged; returns the overall success of the command.
func (g *Gunner) Fire(s *Ship, mode FiringMode) bool {
	draws := &loggingSource{src: g.src, logger: g.logger}
	success := s.FireTorpedo(mode, draws)
	g.logger.Debug("torpedo fired",
		zap.String("mode", mode.String()),
		zap.Int("draws", draws.count),
		zap.Bool("success", success),
	)
	return success
}

// loggingSource logs each drawn value before handing it to the firing logic.
type loggingSource struct {
	src    Source
	logger *zap.Logger
	count  int
}

func (l *loggingSource) Float64() float64 {
	v := l.src.Float64()
	l.count++
	l.logger.Debug("shot draw",
		zap.Int("attempt", l.count),
		zap.Float64("value", v),
	)
	return v
}
