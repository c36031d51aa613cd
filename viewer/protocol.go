package viewer

import (
	"errors"
	"fmt"
	"strings"

	"MandelbrotExplorer/plane"
	"MandelbrotExplorer/session"
)

var ErrUnknownInput = errors.New("unknown input")

var keyNames = map[string]session.Key{
	"reset":   session.KeyReset,
	"up":      session.KeyUp,
	"down":    session.KeyDown,
	"left":    session.KeyLeft,
	"right":   session.KeyRight,
	"zoomin":  session.KeyZoomIn,
	"zoomout": session.KeyZoomOut,
}

var buttonNames = map[string]session.Button{
	"left":  session.ButtonLeft,
	"right": session.ButtonRight,
}

// Input is a message sent by the browser. Type is one of close, key, click, move or held.
type Input struct {
	Button string   `json:"button,omitempty"`
	Key    string   `json:"key,omitempty"`
	Keys   []string `json:"keys,omitempty"`
	Type   string   `json:"type"`
	X      int      `json:"x"`
	Y      int      `json:"y"`
}

func parseKey(name string) session.Key {
	if key, ok := keyNames[strings.ToLower(name)]; ok {
		return key
	}
	return session.KeyOther
}

func (in Input) Event() (session.Event, error) {
	switch strings.ToLower(in.Type) {
	case "close":
		return session.Close(), nil
	case "key":
		return session.Press(parseKey(in.Key)), nil
	case "click":
		button, ok := buttonNames[strings.ToLower(in.Button)]
		if !ok {
			button = session.ButtonOther
		}
		return session.Click(button, in.X, in.Y), nil
	case "move":
		return session.Move(in.X, in.Y), nil
	case "held":
		keys := make([]session.Key, 0, len(in.Keys))
		for _, name := range in.Keys {
			keys = append(keys, parseKey(name))
		}
		return session.Hold(keys...), nil
	}
	return session.Event{}, fmt.Errorf("%w: %q", ErrUnknownInput, in.Type)
}

// State is sent as a text message ahead of every frame and whenever the overlay text changes. A binary
// message holding the RGBA pixels follows when Version moved.
type State struct {
	Bounds   plane.Bounds `json:"bounds"`
	Closed   bool         `json:"closed"`
	Height   int          `json:"height"`
	PollKeys bool         `json:"pollKeys"`
	Version  uint64       `json:"version"`
	Width    int          `json:"width"`
	X        string       `json:"x"`
	Y        string       `json:"y"`
}

func newState(rc session.RenderContext) State {
	size := rc.Image.Bounds().Size()
	return State{
		Bounds:   rc.Bounds,
		Closed:   rc.Closed,
		Height:   size.Y,
		PollKeys: rc.PollKeys,
		Version:  rc.Version,
		Width:    size.X,
		X:        rc.X,
		Y:        rc.Y,
	}
}
