package task

import (
	"fmt"
	"image/color"
)

// Coordinate is a pixel position in the viewport. Column grows to the right and Row grows downwards.
type Coordinate struct {
	Column int
	Row    int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Column, c.Row)
}

// Pixel is the colour a worker computed for a coordinate
type Pixel struct {
	Coordinate
	Color color.RGBA
}

func (p Pixel) String() string {
	return fmt.Sprintf("{Pixel %s #%02x%02x%02x}", p.Coordinate, p.Color.R, p.Color.G, p.Color.B)
}
