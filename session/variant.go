package session

import (
	"errors"
	"fmt"
	"strings"

	"MandelbrotExplorer/builder"
	"MandelbrotExplorer/mandelbrot"
	"MandelbrotExplorer/plane"
	"MandelbrotExplorer/view"
)

var ErrUnknownVariant = errors.New("unknown variant")

const (
	Classic = "classic"
	Stacked = "stacked"
	Panning = "panning"
)

var Variants = []string{Classic, Stacked, Panning}

const (
	AnchorCursor = "cursor"
	AnchorOrigin = "origin"
)

// Preset returns the settings of one of the built-in variants
//
//   - classic: 800x600, 60 iterations, palette colouring, each click halves the bounds about the
//     origin, reset restores ±1.2 on the imaginary axis
//   - stacked: 800x600, 50 iterations, palette colouring, left click zooms in about the cursor and
//     right click returns to the previous frame
//   - panning: 800x750, 500 iterations, smooth colouring, held arrow keys pan and held zoom keys
//     zoom continuously
func Preset(variant string) (Settings, error) {
	switch strings.ToLower(variant) {
	case Classic:
		return Settings{
			Variant:            Classic,
			BuilderSettings:    builder.Settings{Viewport: plane.Viewport{Width: 800, Height: 600}},
			MandelbrotSettings: mandelbrot.Settings{MaxIterations: 60, Colouring: mandelbrot.Palette},
			ViewSettings: view.Settings{
				InitialBounds: plane.Bounds{MinRe: -2.0, MaxRe: 1.0, MinIm: -1.125, MaxIm: 1.125},
				ResetBounds:   plane.Bounds{MinRe: -2.0, MaxRe: 1.0, MinIm: -1.2, MaxIm: 1.2},
			},
			ZoomAnchor: AnchorOrigin,
			ZoomFactor: 2,
			PanStep:    0.1,
		}, nil
	case Stacked:
		return Settings{
			Variant:            Stacked,
			AspectCorrect:      true,
			BuilderSettings:    builder.Settings{Viewport: plane.Viewport{Width: 800, Height: 600}},
			MandelbrotSettings: mandelbrot.Settings{MaxIterations: 50, Colouring: mandelbrot.Palette},
			ViewSettings: view.Settings{
				InitialBounds: plane.Bounds{MinRe: -2.0, MaxRe: 1.0, MinIm: -1.125, MaxIm: 1.125},
				Stacked:       true,
			},
			ZoomAnchor: AnchorCursor,
			ZoomFactor: 2,
			PanStep:    0.1,
		}, nil
	case Panning:
		return Settings{
			Variant:            Panning,
			AspectCorrect:      true,
			BuilderSettings:    builder.Settings{Viewport: plane.Viewport{Width: 800, Height: 750}},
			MandelbrotSettings: mandelbrot.Settings{MaxIterations: 500, Colouring: mandelbrot.Smooth},
			ViewSettings: view.Settings{
				InitialBounds: plane.Bounds{MinRe: -2.0, MaxRe: 1.0, MinIm: -1.40625, MaxIm: 1.40625},
			},
			ContinuousZoomRate: 0.0005,
			PollKeys:           true,
			ZoomAnchor:         AnchorCursor,
			ZoomFactor:         2,
			PanStep:            0.01,
		}, nil
	}
	return Settings{}, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
}
