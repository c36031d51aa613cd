package session

import "fmt"

const (
	Closed EventType = iota
	KeyPressed
	MouseButtonPressed
	CursorMoved
	KeysHeld
)

type EventType int

func (e EventType) String() string {
	names := []string{
		"Closed", "KeyPressed", "MouseButtonPressed", "CursorMoved", "KeysHeld",
	}
	if int(e) < 0 || int(e) >= len(names) {
		return fmt.Sprintf("%d", int(e))
	}
	return names[e]
}

const (
	KeyOther Key = iota
	KeyReset
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyZoomIn
	KeyZoomOut
)

type Key int

func (k Key) String() string {
	names := []string{
		"Other", "Reset", "Up", "Down", "Left", "Right", "ZoomIn", "ZoomOut",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return fmt.Sprintf("%d", int(k))
	}
	return names[k]
}

const (
	ButtonOther Button = iota
	ButtonLeft
	ButtonRight
)

type Button int

func (b Button) String() string {
	names := []string{
		"Other", "Left", "Right",
	}
	if int(b) < 0 || int(b) >= len(names) {
		return fmt.Sprintf("%d", int(b))
	}
	return names[b]
}

// Event is an input event translated from a display collaborator. X and Y are the cursor position in
// viewport pixels for mouse events; Held lists the keys down during the frame for KeysHeld.
type Event struct {
	Button Button
	Held   []Key
	Key    Key
	Type   EventType
	X      int
	Y      int
}

func (e Event) String() string {
	output := "{Event "
	output += fmt.Sprintf("Type: %s ", e.Type)
	switch e.Type {
	case KeyPressed:
		output += fmt.Sprintf("Key: %s", e.Key)
	case MouseButtonPressed:
		output += fmt.Sprintf("Button: %s X: %d Y: %d", e.Button, e.X, e.Y)
	case CursorMoved:
		output += fmt.Sprintf("X: %d Y: %d", e.X, e.Y)
	case KeysHeld:
		output += fmt.Sprintf("Held: %v", e.Held)
	}
	return output + "}"
}

func Close() Event {
	return Event{Type: Closed}
}

func Press(key Key) Event {
	return Event{Type: KeyPressed, Key: key}
}

func Click(button Button, x int, y int) Event {
	return Event{Type: MouseButtonPressed, Button: button, X: x, Y: y}
}

func Move(x int, y int) Event {
	return Event{Type: CursorMoved, X: x, Y: y}
}

func Hold(keys ...Key) Event {
	return Event{Type: KeysHeld, Held: keys}
}
