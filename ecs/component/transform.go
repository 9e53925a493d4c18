package component

// Transform is the visual position of an entity in world units, y up. The
// physics system moves it by the same delta it applies to the body.
type Transform struct {
	X      float64
	Y      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = NewComponent[Transform]()
