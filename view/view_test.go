package view

import (
	"image"
	"testing"

	"MandelbrotExplorer/plane"
)

var initial = plane.Bounds{MinRe: -2, MaxRe: 1, MinIm: -1.125, MaxIm: 1.125}

// countingRenderer records every build request and returns a tiny raster
type countingRenderer struct {
	requests []plane.Bounds
}

func (r *countingRenderer) Build(bounds plane.Bounds) *image.RGBA {
	r.requests = append(r.requests, bounds)
	return image.NewRGBA(image.Rect(0, 0, 2, 2))
}

func newView(t *testing.T, settings Settings) (*View, *countingRenderer) {
	t.Helper()
	if err := settings.Verify(); err != nil {
		t.Fatal(err)
	}
	r := &countingRenderer{}
	return NewView(r, settings), r
}

func TestNewViewRendersInitialFrame(t *testing.T) {
	v, r := newView(t, Settings{InitialBounds: initial, Stacked: true})
	if v.Depth() != 1 || v.Bounds() != initial || len(r.requests) != 1 {
		t.Errorf("depth %d bounds %s builds %d", v.Depth(), v.Bounds(), len(r.requests))
	}
	if v.Image() == nil {
		t.Error("initial frame has no image")
	}
}

func TestZoomInThenOutRestoresBounds(t *testing.T) {
	v, r := newView(t, Settings{InitialBounds: initial, Stacked: true})
	before := v.Frame()

	if !v.ZoomIn(plane.Point{Re: -0.75, Im: 0.1}, 2) {
		t.Fatal("zoom in rejected")
	}
	if v.Depth() != 2 {
		t.Fatalf("depth %d after zoom in, want 2", v.Depth())
	}
	if w := v.Bounds().Width(); w != initial.Width()/2 {
		t.Errorf("zoomed width %v, want %v", w, initial.Width()/2)
	}

	if !v.ZoomOut() {
		t.Fatal("zoom out rejected")
	}
	after := v.Frame()
	if after.Bounds != before.Bounds || after.Image != before.Image {
		t.Errorf("zoom out restored %s, want %s and the original raster", after.Bounds, before.Bounds)
	}
	if len(r.requests) != 2 {
		t.Errorf("got %d builds, zoom out must not rebuild", len(r.requests))
	}
}

func TestZoomOutOnSingleFrameIsNoop(t *testing.T) {
	for _, stacked := range []bool{true, false} {
		v, r := newView(t, Settings{InitialBounds: initial, Stacked: stacked})
		before := v.Frame()
		if v.ZoomOut() {
			t.Errorf("stacked %t: zoom out reported success on a single frame", stacked)
		}
		if after := v.Frame(); after != before || v.Depth() != 1 || len(r.requests) != 1 {
			t.Errorf("stacked %t: frame changed to %s, depth %d", stacked, &after, v.Depth())
		}
	}
}

func TestResetRestoresInitialBounds(t *testing.T) {
	v, r := newView(t, Settings{InitialBounds: initial, Stacked: true})
	for i := 0; i < 5; i++ {
		v.ZoomIn(v.Bounds().Center(), 2)
	}
	builds := len(r.requests)

	v.Reset()
	if v.Depth() != 1 || v.Bounds() != initial {
		t.Errorf("after reset depth %d bounds %s", v.Depth(), v.Bounds())
	}
	if len(r.requests) != builds {
		t.Error("stacked reset should reuse the first frame")
	}
}

func TestResetNonStackedRebuildsAtResetBounds(t *testing.T) {
	reset := plane.Bounds{MinRe: -2, MaxRe: 1, MinIm: -1.2, MaxIm: 1.2}
	v, r := newView(t, Settings{InitialBounds: initial, ResetBounds: reset})

	v.ZoomIn(plane.Point{}, 2)
	v.ZoomIn(plane.Point{}, 2)
	if v.Depth() != 1 {
		t.Errorf("non-stacked depth %d, want 1", v.Depth())
	}

	v.Reset()
	if v.Bounds() != reset || v.Depth() != 1 {
		t.Errorf("after reset depth %d bounds %s, want %s", v.Depth(), v.Bounds(), reset)
	}
	if last := r.requests[len(r.requests)-1]; last != reset {
		t.Errorf("last build at %s, want %s", last, reset)
	}
}

func TestResetAfterPanOnFirstFrame(t *testing.T) {
	v, _ := newView(t, Settings{InitialBounds: initial, Stacked: true})
	v.Pan(0.1, 0)
	if v.Bounds() == initial {
		t.Fatal("pan did not move the bounds")
	}
	v.Reset()
	if v.Bounds() != initial {
		t.Errorf("reset to %s, want %s", v.Bounds(), initial)
	}
}

func TestRejectsInvalidZoom(t *testing.T) {
	v, r := newView(t, Settings{InitialBounds: initial, Stacked: true})
	if v.ZoomIn(plane.Point{}, 0) || v.ZoomIn(plane.Point{}, -2) {
		t.Error("non-positive zoom factor accepted")
	}
	if v.Depth() != 1 || len(r.requests) != 1 {
		t.Errorf("depth %d builds %d after rejected zooms", v.Depth(), len(r.requests))
	}
}

func TestPanAndScaleReplaceTopFrame(t *testing.T) {
	v, _ := newView(t, Settings{InitialBounds: initial, Stacked: true})
	v.ZoomIn(plane.Point{}, 2)
	zoomed := v.Bounds()

	v.Pan(0.5, -0.5)
	want := zoomed.Translate(0.5*zoomed.Width(), -0.5*zoomed.Height())
	if v.Bounds() != want || v.Depth() != 2 {
		t.Errorf("pan gave %s depth %d, want %s depth 2", v.Bounds(), v.Depth(), want)
	}

	v.Scale(0.5)
	if v.Bounds().Width() >= want.Width() || v.Depth() != 2 {
		t.Errorf("scale gave %s depth %d", v.Bounds(), v.Depth())
	}
}

func TestHistory(t *testing.T) {
	h := NewHistory(Frame{Bounds: initial})
	if _, ok := h.Pop(); ok {
		t.Error("popped the last frame")
	}
	for i := 1; i <= 3; i++ {
		h.Push(Frame{Bounds: initial.Zoom(plane.Point{}, float64(2*i))})
	}
	if h.Len() != 4 {
		t.Fatalf("len %d, want 4", h.Len())
	}
	top, ok := h.Pop()
	if !ok || top.Bounds != initial.Zoom(plane.Point{}, 4) {
		t.Errorf("pop gave %s", &top)
	}
	if first := h.Truncate(); first.Bounds != initial || h.Len() != 1 {
		t.Errorf("truncate gave %s len %d", &first, h.Len())
	}
}
