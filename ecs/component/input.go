package component

// Input holds the viewer commands pressed this tick.
type Input struct {
	TogglePause bool
	Step        bool
	Reset       bool
	Copy        bool
	ToggleDebug bool
	Zoom        float64
}

var InputComponent = NewComponent[Input]()
