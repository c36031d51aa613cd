package misc

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorfulToRGBA clamps c into the RGB gamut and rounds each channel to 8 bits
func ColorfulToRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func NewRGBA(width int, height int) *image.RGBA {
	return image.NewRGBA(image.Rectangle{
		Min: image.Point{
			X: 0,
			Y: 0,
		},
		Max: image.Point{
			X: width,
			Y: height,
		},
	})
}
