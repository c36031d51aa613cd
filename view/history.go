package view

import (
	"fmt"
	"image"

	"MandelbrotExplorer/plane"
)

// Frame pairs a rendered raster with the bounds that produced it
type Frame struct {
	Bounds plane.Bounds
	Image  *image.RGBA
}

func (f *Frame) String() string {
	return fmt.Sprintf("{Frame Bounds: %s}", f.Bounds)
}

// History is a stack of frames. Once initialized it always holds at least one frame and the top
// frame is the one on display.
type History struct {
	frames []Frame
}

func NewHistory(initial Frame) *History {
	return &History{
		frames: []Frame{initial},
	}
}

func (h *History) Len() int {
	return len(h.frames)
}

func (h *History) Top() Frame {
	return h.frames[len(h.frames)-1]
}

func (h *History) Push(frame Frame) {
	h.frames = append(h.frames, frame)
}

// Pop removes the top frame and returns the new top. The last frame is never removed.
func (h *History) Pop() (Frame, bool) {
	if len(h.frames) <= 1 {
		return h.Top(), false
	}
	h.frames[len(h.frames)-1] = Frame{}
	h.frames = h.frames[:len(h.frames)-1]
	return h.Top(), true
}

func (h *History) Replace(frame Frame) {
	h.frames[len(h.frames)-1] = frame
}

// Truncate drops every frame but the first
func (h *History) Truncate() Frame {
	for i := 1; i < len(h.frames); i++ {
		h.frames[i] = Frame{}
	}
	h.frames = h.frames[:1]
	return h.frames[0]
}
