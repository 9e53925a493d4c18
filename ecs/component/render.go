package component

import "image/color"

type Render struct {
	Fill    color.NRGBA
	Outline color.NRGBA
	Layer   int
}

var RenderComponent = NewComponent[Render]()
