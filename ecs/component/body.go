package component

import "github.com/icmeyer/boing/physics"

// Body links an entity to the simulated shape it draws.
type Body struct {
	Shape *physics.Shape
}

var BodyComponent = NewComponent[Body]()
