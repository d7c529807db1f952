package component

import "image/color"

// RenderRect draws an entity as a filled rectangle centered on its
// transform. Size is in world units.
type RenderRect struct {
	Width  float64
	Height float64
	Color  color.RGBA
	Layer  int
}

var RenderRectComponent = NewComponent[RenderRect]()
