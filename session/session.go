package session

import (
	"context"
	"fmt"
	"image"
	"sync"
	"sync/atomic"
	"time"

	"MandelbrotExplorer/builder"
	"MandelbrotExplorer/mandelbrot"
	"MandelbrotExplorer/plane"
	"MandelbrotExplorer/view"

	"github.com/BrugadaSyndrome/bslogger"
)

// RenderContext is everything a display collaborator needs to draw one frame
type RenderContext struct {
	Bounds  plane.Bounds
	Closed  bool
	Image   *image.RGBA
	Version uint64
	X       string
	Y       string
	// PollKeys asks for a KeysHeld event every frame instead of KeyPressed events
	PollKeys bool
}

// Session owns the view of the fractal and applies input events to it one at a time
type Session struct {
	builder       *builder.Builder
	closeOnce     sync.Once
	cursorInside  bool
	cursorX       int
	cursorY       int
	done          chan struct{}
	events        chan Event
	eventsDropped atomic.Uint64
	eventsHandled uint
	logger        bslogger.Logger
	mutex         sync.Mutex
	settings      Settings
	textX         string
	textY         string
	version       uint64
	view          *view.View
}

// NewSession renders the initial frame. settings must have been verified.
func NewSession(settings Settings) *Session {
	m := mandelbrot.NewMandelbrot(settings.MandelbrotSettings)
	b := builder.NewBuilder(m, settings.BuilderSettings)

	s := &Session{
		builder:  b,
		done:     make(chan struct{}),
		events:   make(chan Event, 16),
		logger:   settings.Logger("Session"),
		settings: settings,
	}
	s.logger.Infof("Starting %s session", settings.Variant)
	s.view = view.NewView(b, settings.ViewSettings)
	s.version = 1
	return s
}

func (s *Session) Settings() Settings {
	return s.settings
}

func (s *Session) Viewport() plane.Viewport {
	return s.settings.BuilderSettings.Viewport
}

// Done is closed once a Closed event has been handled
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) Closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *Session) RenderContext() RenderContext {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	frame := s.view.Frame()
	return RenderContext{
		Bounds:   frame.Bounds,
		Closed:   s.Closed(),
		Image:    frame.Image,
		Version:  s.version,
		X:        s.textX,
		Y:        s.textY,
		PollKeys: s.settings.PollKeys,
	}
}

func (s *Session) Depth() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.view.Depth()
}

// Submit queues the event for Run without blocking. The event is dropped when the queue is full,
// which happens while a rebuild is running and input keeps arriving. Handle holds the mutex for the
// whole rebuild so it is never taken here.
func (s *Session) Submit(e Event) bool {
	select {
	case s.events <- e:
		return true
	default:
		s.eventsDropped.Add(1)
		s.logger.Debugf("Dropping %s while busy", e)
		return false
	}
}

// Run handles queued events until ctx is cancelled or the session is closed
func (s *Session) Run(ctx context.Context) {
	heartBeat := time.NewTicker(s.settings.HeartBeat)
	defer heartBeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case e := <-s.events:
			s.Handle(e)
		case <-heartBeat.C:
			s.logger.Debug("Heart beat ticker")
			s.logger.Info(s.status())
		}
	}
}

func (s *Session) status() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return fmt.Sprintf("Events [Handled: %d] [Dropped: %d] | Images [Built: %d] | History [Depth: %d] | %s",
		s.eventsHandled, s.eventsDropped.Load(), s.builder.Builds(), s.view.Depth(), s.view.Bounds())
}

// Handle applies a single event and reports whether the frame on display changed. Calls are
// serialized so at most one rebuild runs at a time.
func (s *Session) Handle(e Event) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.Closed() {
		return false
	}
	s.eventsHandled++

	before := s.view.Frame()
	switch e.Type {
	case Closed:
		s.logger.Info("Closing session")
		s.closeOnce.Do(func() { close(s.done) })
		return false
	case KeyPressed:
		s.keyPressed(e.Key)
	case MouseButtonPressed:
		s.mouseButtonPressed(e)
	case CursorMoved:
		s.cursorX, s.cursorY = e.X, e.Y
		s.cursorInside = s.Viewport().Contains(e.X, e.Y)
	case KeysHeld:
		s.keysHeld(e.Held)
	default:
		s.logger.Warningf("Ignoring unknown event type %d", e.Type)
	}

	s.updateText()
	if after := s.view.Frame(); after != before {
		s.version++
		return true
	}
	return false
}

func (s *Session) keyPressed(key Key) {
	switch key {
	case KeyReset:
		s.view.Reset()
	case KeyUp:
		s.view.Pan(0, s.settings.PanStep)
	case KeyDown:
		s.view.Pan(0, -s.settings.PanStep)
	case KeyLeft:
		s.view.Pan(-s.settings.PanStep, 0)
	case KeyRight:
		s.view.Pan(s.settings.PanStep, 0)
	case KeyZoomIn:
		s.view.ZoomIn(s.view.Bounds().Center(), s.settings.ZoomFactor)
	case KeyZoomOut:
		s.view.ZoomOut()
	}
}

func (s *Session) mouseButtonPressed(e Event) {
	if !s.Viewport().Contains(e.X, e.Y) {
		return
	}
	switch e.Button {
	case ButtonLeft:
		s.view.ZoomIn(s.zoomFocus(e.X, e.Y), s.settings.ZoomFactor)
	case ButtonRight:
		s.view.ZoomOut()
	}
}

// zoomFocus is the center of the zoomed bounds. Anchoring on the origin keeps the origin at the same
// place on the plane, which is what halving every bound does.
func (s *Session) zoomFocus(px int, py int) plane.Point {
	bounds := s.view.Bounds()
	if s.settings.ZoomAnchor == AnchorOrigin {
		center := bounds.Center()
		return plane.Point{
			Re: center.Re / s.settings.ZoomFactor,
			Im: center.Im / s.settings.ZoomFactor,
		}
	}
	return plane.NewMapper(bounds, s.Viewport()).PixelToPoint(px, py)
}

func (s *Session) keysHeld(keys []Key) {
	var panRe, panIm float64
	factor := 1.0
	for _, key := range keys {
		switch key {
		case KeyUp:
			panIm += s.settings.PanStep
		case KeyDown:
			panIm -= s.settings.PanStep
		case KeyLeft:
			panRe -= s.settings.PanStep
		case KeyRight:
			panRe += s.settings.PanStep
		case KeyZoomIn:
			factor *= 1 - s.settings.ContinuousZoomRate
		case KeyZoomOut:
			factor *= 1 + s.settings.ContinuousZoomRate
		}
	}
	if panRe == 0 && panIm == 0 && factor == 1 {
		return
	}
	s.view.Adjust(panRe, panIm, factor)
}

// updateText refreshes the coordinate overlay from the last cursor position inside the viewport
func (s *Session) updateText() {
	if !s.cursorInside {
		return
	}
	re, im := plane.NewMapper(s.view.Bounds(), s.Viewport()).PixelToComplex(s.cursorX, s.cursorY)
	s.textX = fmt.Sprintf("x: %f", re)
	s.textY = fmt.Sprintf("y: %f", im)
}
