package session

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"MandelbrotExplorer/builder"
	"MandelbrotExplorer/mandelbrot"
	"MandelbrotExplorer/misc"
	"MandelbrotExplorer/plane"
	"MandelbrotExplorer/view"

	"github.com/BrugadaSyndrome/bslogger"
)

type Settings struct {
	logFile *os.File
	logger  bslogger.Logger

	// AspectCorrect derives the imaginary bounds from the real bounds and the viewport
	AspectCorrect      bool
	BuilderSettings    builder.Settings
	ContinuousZoomRate float64
	HeartBeat          time.Duration
	LogFile            string
	MandelbrotSettings mandelbrot.Settings
	PanStep            float64
	// PollKeys asks display collaborators to report held keys every frame instead of key presses
	PollKeys     bool
	Variant      string
	ViewSettings view.Settings
	ZoomAnchor   string
	ZoomFactor   float64
}

// NewSettings starts from the variant preset and applies the json settings file on top of it when one
// is given
func NewSettings(settingsFile string, variant string) (Settings, error) {
	s, err := Preset(variant)
	if err != nil {
		return Settings{}, err
	}
	s.logger = bslogger.NewLogger("SessionSettings", bslogger.Normal, nil)
	if settingsFile != "" {
		fileBytes, err := misc.ReadFile(settingsFile)
		if err != nil {
			return Settings{}, err
		}
		if err := json.Unmarshal(fileBytes, &s); err != nil {
			return Settings{}, fmt.Errorf("unable to parse %s - %w", settingsFile, err)
		}
		s.logger.Infof("Loaded settings from %s", settingsFile)
	}

	if err := s.Verify(); err != nil {
		return Settings{}, err
	}
	s.logger.Debug(s.String())
	return s, nil
}

func (s *Settings) String() string {
	output := "\nSession settings\n"
	output += fmt.Sprintf("Variant: %s\n", s.Variant)
	output += fmt.Sprintf("Viewport: %s\n", s.BuilderSettings.Viewport)
	output += fmt.Sprintf("Workers: %d\n", s.BuilderSettings.Workers)
	output += fmt.Sprintf("Initial Bounds: %s\n", s.ViewSettings.InitialBounds)
	output += fmt.Sprintf("Reset Bounds: %s\n", s.ViewSettings.ResetBounds)
	output += fmt.Sprintf("Stacked: %t\n", s.ViewSettings.Stacked)
	output += fmt.Sprintf("Zoom Factor: %f\n", s.ZoomFactor)
	output += fmt.Sprintf("Zoom Anchor: %s\n", s.ZoomAnchor)
	output += fmt.Sprintf("Pan Step: %f\n", s.PanStep)
	output += fmt.Sprintf("Poll Keys: %t\n", s.PollKeys)
	output += fmt.Sprintf("Continuous Zoom Rate: %f\n", s.ContinuousZoomRate)
	output += s.MandelbrotSettings.String()
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("SessionSettings", bslogger.Normal, nil)
	if s.LogFile != "" && s.logFile == nil {
		logFile, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if misc.CheckError(err, s.logger, misc.Warning) {
			s.LogFile = ""
		} else {
			s.logFile = logFile
		}
	}
	s.logger = s.Logger("SessionSettings")

	if err := s.MandelbrotSettings.Verify(); err != nil {
		return err
	}
	if err := s.BuilderSettings.Verify(); err != nil {
		return err
	}

	viewport := s.BuilderSettings.Viewport
	if s.AspectCorrect {
		s.ViewSettings.InitialBounds = s.aspectCorrect("initial", s.ViewSettings.InitialBounds, viewport)
		if s.ViewSettings.ResetBounds != (plane.Bounds{}) {
			s.ViewSettings.ResetBounds = s.aspectCorrect("reset", s.ViewSettings.ResetBounds, viewport)
		}
	}
	if err := s.ViewSettings.Verify(); err != nil {
		return err
	}

	if s.ContinuousZoomRate < 0 || s.ContinuousZoomRate >= 1 {
		return fmt.Errorf("continuous zoom rate %f must be in [0, 1)", s.ContinuousZoomRate)
	}
	if s.ContinuousZoomRate == 0 {
		s.ContinuousZoomRate = 0.0005
	}
	if s.HeartBeat <= 0 {
		s.HeartBeat = 30 * time.Second
	}
	if s.PanStep <= 0 {
		s.PanStep = 0.1
	}
	switch strings.ToLower(s.ZoomAnchor) {
	case "":
		s.ZoomAnchor = AnchorCursor
	case AnchorCursor, AnchorOrigin:
		s.ZoomAnchor = strings.ToLower(s.ZoomAnchor)
	default:
		return fmt.Errorf("unknown zoom anchor: %q", s.ZoomAnchor)
	}
	if s.ZoomFactor <= 1 {
		s.ZoomFactor = 2
	}

	return nil
}

// aspectCorrect keeps the real axis of b and derives the imaginary axis from the viewport. Imaginary
// bounds that were given and do not fit the viewport are reported.
func (s *Settings) aspectCorrect(name string, b plane.Bounds, viewport plane.Viewport) plane.Bounds {
	corrected := plane.AspectBounds(b.MinRe, b.MaxRe, viewport)
	if (b.MinIm != 0 || b.MaxIm != 0) && (b.MinIm != corrected.MinIm || b.MaxIm != corrected.MaxIm) {
		s.logger.Warningf("Replacing %s imaginary bounds [%f, %f] with [%f, %f] to fit %s",
			name, b.MinIm, b.MaxIm, corrected.MinIm, corrected.MaxIm, viewport)
	}
	return corrected
}

// Logger returns a logger named name. Every logger shares the log file opened by Verify.
func (s *Settings) Logger(name string) bslogger.Logger {
	return bslogger.NewLogger(name, bslogger.Normal, s.logFile)
}

// Close releases the log file
func (s *Settings) Close() error {
	if s.logFile == nil {
		return nil
	}
	err := s.logFile.Close()
	s.logFile = nil
	return err
}
