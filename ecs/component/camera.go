package component

type Camera struct {
	// TargetName follows the body with this name; empty keeps the camera
	// where its transform puts it.
	TargetName string
	Zoom       float64
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
