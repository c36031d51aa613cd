package view

import (
	"image"

	"MandelbrotExplorer/plane"

	"github.com/BrugadaSyndrome/bslogger"
)

// Renderer produces the raster for a region of the plane
type Renderer interface {
	Build(bounds plane.Bounds) *image.RGBA
}

type Settings struct {
	InitialBounds plane.Bounds
	ResetBounds   plane.Bounds
	// Stacked keeps every zoomed frame so zooming out is instant. Without it only the current
	// frame is kept.
	Stacked bool
}

func (s *Settings) Verify() error {
	if err := s.InitialBounds.Verify(); err != nil {
		return err
	}
	if s.ResetBounds == (plane.Bounds{}) {
		s.ResetBounds = s.InitialBounds
	}
	return s.ResetBounds.Verify()
}

// View holds the bounds on display and the zoom history behind them
type View struct {
	history  *History
	logger   bslogger.Logger
	renderer Renderer
	settings Settings
}

// NewView renders the initial bounds and pushes the result as the first frame
func NewView(renderer Renderer, settings Settings) *View {
	v := &View{
		logger:   bslogger.NewLogger("View", bslogger.Normal, nil),
		renderer: renderer,
		settings: settings,
	}
	v.history = NewHistory(v.render(settings.InitialBounds))
	return v
}

func (v *View) render(bounds plane.Bounds) Frame {
	return Frame{
		Bounds: bounds,
		Image:  v.renderer.Build(bounds),
	}
}

func (v *View) Bounds() plane.Bounds {
	return v.history.Top().Bounds
}

func (v *View) Image() *image.RGBA {
	return v.history.Top().Image
}

func (v *View) Frame() Frame {
	return v.history.Top()
}

func (v *View) Depth() int {
	return v.history.Len()
}

func (v *View) Stacked() bool {
	return v.settings.Stacked
}

// ZoomIn divides the extent of the current bounds by factor around focus and renders the result
func (v *View) ZoomIn(focus plane.Point, factor float64) bool {
	bounds := v.Bounds().Zoom(focus, factor)
	if factor <= 0 || bounds.Verify() != nil {
		v.logger.Warningf("Ignoring zoom by %f around %s", factor, focus)
		return false
	}

	v.logger.Infof("Zooming in around %s", focus)
	frame := v.render(bounds)
	if v.settings.Stacked {
		v.history.Push(frame)
	} else {
		v.history.Replace(frame)
	}
	return true
}

// ZoomOut restores the previous frame. It does nothing when only the initial frame is left.
func (v *View) ZoomOut() bool {
	frame, ok := v.history.Pop()
	if !ok {
		v.logger.Debug("Nothing to zoom out to")
		return false
	}
	v.logger.Infof("Zooming out to %s", frame.Bounds)
	return true
}

func (v *View) Reset() {
	v.logger.Info("Resetting image...")
	first := v.history.Truncate()

	// A stacked history already holds the reset frame unless panning moved it
	if v.settings.Stacked && first.Bounds == v.settings.ResetBounds {
		return
	}
	v.history.Replace(v.render(v.settings.ResetBounds))
}

// Pan moves the current bounds by a fraction of their extent
func (v *View) Pan(fractionRe float64, fractionIm float64) {
	v.Adjust(fractionRe, fractionIm, 1)
}

// Scale multiplies the extent of the current bounds by factor around their center
func (v *View) Scale(factor float64) {
	v.Adjust(0, 0, factor)
}

// Adjust pans and scales the current bounds with a single rebuild. The top frame is replaced so the
// zoom history is left as is.
func (v *View) Adjust(fractionRe float64, fractionIm float64, factor float64) {
	if factor <= 0 {
		v.logger.Warningf("Ignoring scale by %f", factor)
		return
	}
	current := v.Bounds()
	bounds := current.Translate(fractionRe*current.Width(), fractionIm*current.Height())
	if factor != 1 {
		bounds = bounds.Scale(factor)
	}
	if err := bounds.Verify(); err != nil {
		v.logger.Warning(err.Error())
		return
	}
	v.history.Replace(v.render(bounds))
}
