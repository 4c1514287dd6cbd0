package sounds

import "go.uber.org/zap"

// Cue identifies an audible feedback sound
type Cue string

const (
	// CueTick is the low-priority feedback played on every field change
	CueTick Cue = "tick"
	// CueComplete is played after a successful commit
	CueComplete Cue = "complete"
	// CueError is played when a submission fails
	CueError Cue = "error"
)

// Player plays audible cues. Play is fire-and-forget and never awaited;
// implementations must not let playback failures reach the caller.
type Player interface {
	Play(cue Cue, volume float64)
}

// LogPlayer is a Player that records cue requests to the log instead of
// producing sound. The CLI has no audio device; the cue contract still has
// to be exercised so downstream ordering stays observable.
type LogPlayer struct {
	logger *zap.Logger
}

func NewLogPlayer(logger *zap.Logger) *LogPlayer {
	return &LogPlayer{logger: logger}
}

// Play logs the cue request
func (p *LogPlayer) Play(cue Cue, volume float64) {
	p.logger.Debug("Audible cue requested",
		zap.String("cue", string(cue)),
		zap.Float64("volume", volume))
}
