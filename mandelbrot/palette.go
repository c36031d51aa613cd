package mandelbrot

import (
	"image/color"
	"math"

	"MandelbrotExplorer/misc"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPalette approximates the gradient commonly used to render the Mandelbrot set.
// http://stackoverflow.com/questions/16500656/which-color-gradient-is-used-to-color-mandelbrot-in-wikipedia
var DefaultPalette = [16]color.RGBA{
	{R: 66, G: 30, B: 15, A: 255},
	{R: 25, G: 7, B: 26, A: 255},
	{R: 9, G: 1, B: 47, A: 255},
	{R: 4, G: 4, B: 73, A: 255},
	{R: 0, G: 7, B: 100, A: 255},
	{R: 12, G: 44, B: 138, A: 255},
	{R: 24, G: 82, B: 177, A: 255},
	{R: 57, G: 125, B: 209, A: 255},
	{R: 134, G: 181, B: 229, A: 255},
	{R: 211, G: 236, B: 248, A: 255},
	{R: 241, G: 233, B: 191, A: 255},
	{R: 248, G: 201, B: 95, A: 255},
	{R: 255, G: 170, B: 0, A: 255},
	{R: 204, G: 128, B: 0, A: 255},
	{R: 153, G: 87, B: 0, A: 255},
	{R: 106, G: 52, B: 3, A: 255},
}

func PaletteColour(iterations uint) color.RGBA {
	return DefaultPalette[iterations%uint(len(DefaultPalette))]
}

// SmoothColour maps the normalized iteration count onto a polynomial gradient that runs from
// black through blue and orange back to black
func SmoothColour(iterations uint, maxIterations uint) color.RGBA {
	x := float64(iterations) / float64(maxIterations)
	c := colorful.Color{
		R: 9 * (1 - x) * math.Pow(x, 3),
		G: 15 * math.Pow(1-x, 2) * math.Pow(x, 2),
		B: 8.5 * math.Pow(1-x, 3) * x,
	}
	return misc.ColorfulToRGBA(c)
}
