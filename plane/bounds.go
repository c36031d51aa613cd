package plane

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidBounds   = errors.New("invalid plane bounds")
	ErrInvalidViewport = errors.New("invalid viewport size")
)

// Point is a location on the complex plane
type Point struct {
	Re float64
	Im float64
}

func (p Point) String() string {
	return fmt.Sprintf("{Point Re: %f Im: %f}", p.Re, p.Im)
}

// Bounds is the rectangular region of the complex plane mapped onto the viewport
type Bounds struct {
	MinRe float64
	MaxRe float64
	MinIm float64
	MaxIm float64
}

func (b Bounds) String() string {
	output := "{Bounds "
	output += fmt.Sprintf("MinRe: %f ", b.MinRe)
	output += fmt.Sprintf("MaxRe: %f ", b.MaxRe)
	output += fmt.Sprintf("MinIm: %f ", b.MinIm)
	output += fmt.Sprintf("MaxIm: %f}", b.MaxIm)
	return output
}

func (b Bounds) Verify() error {
	for _, v := range []float64{b.MinRe, b.MaxRe, b.MinIm, b.MaxIm} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidBounds, b)
		}
	}
	if b.MinRe >= b.MaxRe {
		return fmt.Errorf("%w: MinRe %f must be less than MaxRe %f", ErrInvalidBounds, b.MinRe, b.MaxRe)
	}
	if b.MinIm >= b.MaxIm {
		return fmt.Errorf("%w: MinIm %f must be less than MaxIm %f", ErrInvalidBounds, b.MinIm, b.MaxIm)
	}
	return nil
}

func (b Bounds) Width() float64 {
	return b.MaxRe - b.MinRe
}

func (b Bounds) Height() float64 {
	return b.MaxIm - b.MinIm
}

func (b Bounds) Center() Point {
	return Point{
		Re: b.MinRe + b.Width()/2,
		Im: b.MinIm + b.Height()/2,
	}
}

// Zoom shrinks the extent of the bounds by factor and centers the result on focus
func (b Bounds) Zoom(focus Point, factor float64) Bounds {
	newWidth := b.Width() / factor
	newHeight := b.Height() / factor
	return Bounds{
		MinRe: focus.Re - newWidth/2,
		MaxRe: focus.Re + newWidth/2,
		MinIm: focus.Im - newHeight/2,
		MaxIm: focus.Im + newHeight/2,
	}
}

// Scale multiplies the extent of the bounds by factor while keeping the center fixed.
// A factor below 1 zooms in, above 1 zooms out.
func (b Bounds) Scale(factor float64) Bounds {
	return b.Zoom(b.Center(), 1/factor)
}

func (b Bounds) Translate(dRe float64, dIm float64) Bounds {
	return Bounds{
		MinRe: b.MinRe + dRe,
		MaxRe: b.MaxRe + dRe,
		MinIm: b.MinIm + dIm,
		MaxIm: b.MaxIm + dIm,
	}
}

// AspectBounds spans [minRe, maxRe] on the real axis and sizes the imaginary axis so a
// plane unit has the same length in both directions on the viewport
func AspectBounds(minRe float64, maxRe float64, viewport Viewport) Bounds {
	maxIm := float64(viewport.Height) * (maxRe - minRe) / float64(viewport.Width) / 2
	return Bounds{
		MinRe: minRe,
		MaxRe: maxRe,
		MinIm: -maxIm,
		MaxIm: maxIm,
	}
}
