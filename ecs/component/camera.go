package component

type Camera struct {
	Target     string
	Zoom       float64
	Smoothness float64

	ShakeFrames    int
	ShakeTotal     int
	ShakeIntensity float64
	ShakeX         float64
	ShakeY         float64
}

var CameraComponent = NewComponent[Camera]()
