package plane

import "fmt"

// Viewport is the size of the raster in pixels
type Viewport struct {
	Width  int
	Height int
}

func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d", v.Width, v.Height)
}

func (v Viewport) Verify() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidViewport, v)
	}
	return nil
}

func (v Viewport) Contains(px int, py int) bool {
	return px >= 0 && px < v.Width && py >= 0 && py < v.Height
}

func (v Viewport) PixelCount() int {
	return v.Width * v.Height
}

// Mapper converts pixel coordinates to complex plane coordinates
type Mapper struct {
	Bounds   Bounds
	Viewport Viewport
}

func NewMapper(bounds Bounds, viewport Viewport) Mapper {
	return Mapper{
		Bounds:   bounds,
		Viewport: viewport,
	}
}

// PixelToComplex maps the (column, row) pixel to the plane. Row 0 is the top of the image
// and therefore MaxIm.
func (m Mapper) PixelToComplex(px int, py int) (float64, float64) {
	re := m.Bounds.MinRe + float64(px)*(m.Bounds.MaxRe-m.Bounds.MinRe)/float64(m.Viewport.Width)
	im := m.Bounds.MaxIm - float64(py)*(m.Bounds.MaxIm-m.Bounds.MinIm)/float64(m.Viewport.Height)
	return re, im
}

func (m Mapper) PixelToPoint(px int, py int) Point {
	re, im := m.PixelToComplex(px, py)
	return Point{Re: re, Im: im}
}
