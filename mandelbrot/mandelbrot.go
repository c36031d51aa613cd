package mandelbrot

import (
	"fmt"
	"image/color"
)

// Result is the outcome of the escape time test for a single point
type Result struct {
	Iterations uint
	Escaped    bool
}

func (r Result) String() string {
	return fmt.Sprintf("{Result Iterations: %d Escaped: %t}", r.Iterations, r.Escaped)
}

type Mandelbrot struct {
	settings Settings
}

func NewMandelbrot(settings Settings) Mandelbrot {
	return Mandelbrot{
		settings: settings,
	}
}

func (m *Mandelbrot) Settings() Settings {
	return m.settings
}

// EscapeTime iterates z = z^2 + c until |z| exceeds 2 or MaxIterations is reached.
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Optimized_escape_time_algorithms
func (m *Mandelbrot) EscapeTime(re float64, im float64) Result {
	var zRe, zIm float64
	if m.settings.SeedFromPoint {
		zRe, zIm = re, im
	}

	var iteration uint
	for iteration < m.settings.MaxIterations {
		zRe2, zIm2 := zRe*zRe, zIm*zIm
		if zRe2+zIm2 > 4 {
			return Result{Iterations: iteration, Escaped: true}
		}

		zIm = 2*zRe*zIm + im
		zRe = zRe2 - zIm2 + re
		iteration++
	}

	return Result{Iterations: iteration, Escaped: false}
}

func (m *Mandelbrot) Colour(result Result) color.RGBA {
	if !result.Escaped {
		return m.settings.EscapeColor
	}
	switch m.settings.Colouring {
	case Smooth:
		return SmoothColour(result.Iterations, m.settings.MaxIterations)
	default:
		return PaletteColour(result.Iterations)
	}
}

func (m *Mandelbrot) Pixel(re float64, im float64) color.RGBA {
	return m.Colour(m.EscapeTime(re, im))
}
