package mandelbrot

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/BrugadaSyndrome/bslogger"
)

var ErrUnknownColouring = errors.New("unknown colouring")

const (
	Palette Colouring = iota
	Smooth
)

type Colouring int

func (c Colouring) String() string {
	names := []string{
		"palette", "smooth",
	}
	if int(c) < 0 || int(c) >= len(names) {
		return fmt.Sprintf("%d", int(c))
	}
	return names[c]
}

func ParseColouring(name string) (Colouring, error) {
	switch strings.ToLower(name) {
	case "palette":
		return Palette, nil
	case "smooth":
		return Smooth, nil
	}
	return Palette, fmt.Errorf("%w: %q", ErrUnknownColouring, name)
}

func (c Colouring) MarshalText() ([]byte, error) {
	if c < Palette || c > Smooth {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColouring, int(c))
	}
	return []byte(c.String()), nil
}

func (c *Colouring) UnmarshalText(text []byte) error {
	parsed, err := ParseColouring(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

type Settings struct {
	logger bslogger.Logger

	Colouring     Colouring
	EscapeColor   color.RGBA
	MaxIterations uint
	SeedFromPoint bool
}

func (s *Settings) String() string {
	output := "\nMandelbrot settings\n"
	output += fmt.Sprintf("Colouring: %s\n", s.Colouring)
	output += fmt.Sprintf("Escape Color: %v\n", s.EscapeColor)
	output += fmt.Sprintf("Max Iterations: %d\n", s.MaxIterations)
	output += fmt.Sprintf("Seed From Point: %t\n", s.SeedFromPoint)
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("MandelbrotSettings", bslogger.Normal, nil)

	if s.Colouring < Palette || s.Colouring > Smooth {
		return fmt.Errorf("%w: %d", ErrUnknownColouring, int(s.Colouring))
	}
	if s.EscapeColor == (color.RGBA{}) {
		s.EscapeColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = 60
	}
	if s.SeedFromPoint {
		s.logger.Info("Seeding the recurrence with z0 = c; iteration counts are shifted by one")
	}

	return nil
}
