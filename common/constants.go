package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed simulation rate; every Update is one frame and one
	// physics step.
	TPS        = 60
	FrameDelta = 1.0 / TPS

	// Gravity is applied along -Y. The simulation is y-up in world units.
	Gravity = 9.81

	PixelsPerUnit = 32.0
)

// SecondsToFrames converts a duration in seconds to whole update ticks.
func SecondsToFrames(seconds float64) int {
	if seconds <= 0 {
		return 0
	}
	return int(seconds*TPS + 0.5)
}
