package component

import "github.com/milk9111/charmotion/common"

// TTL is the remaining lifetime of a transient entity (explosion shards,
// landing dust) in update ticks.
type TTL struct {
	Frames int
}

// LifetimeTTL converts a lifetime in seconds into ticks. Every transient
// lives at least one tick so it is drawn once.
func LifetimeTTL(seconds float64) *TTL {
	frames := common.SecondsToFrames(seconds)
	if frames < 1 {
		frames = 1
	}
	return &TTL{Frames: frames}
}

// Tick consumes one frame and reports whether the lifetime ran out.
func (t *TTL) Tick() bool {
	t.Frames--
	return t.Frames <= 0
}

var TTLComponent = NewComponent[TTL]()
