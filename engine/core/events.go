package core

import "fmt"

type EventKind uint8

const (
	EVENT_KEY_DOWN EventKind = iota + 1
	EVENT_KEY_UP
	EVENT_MOUSE_DOWN
	EVENT_MOUSE_UP
	EVENT_MOUSE_POS
	EVENT_MOUSE_WHEEL
	// Resized/resolution changed from the OS. Uses X and Y as width and height.
	EVENT_RESIZED
	// Shuts the application down on the next frame.
	EVENT_QUIT
)

// Event is a single input or window event. Only the fields relevant to Kind
// are populated.
type Event struct {
	Kind   EventKind
	Code   KeyCode
	Button Button
	X, Y   int32
}

// EventBatch is the ordered set of events collected during one frame.
// Consumers must treat it as read-only.
type EventBatch []Event

func KeyDown(code KeyCode) Event {
	return Event{Kind: EVENT_KEY_DOWN, Code: code}
}

func KeyUp(code KeyCode) Event {
	return Event{Kind: EVENT_KEY_UP, Code: code}
}

func MouseDown(button Button) Event {
	return Event{Kind: EVENT_MOUSE_DOWN, Button: button}
}

func MouseUp(button Button) Event {
	return Event{Kind: EVENT_MOUSE_UP, Button: button}
}

func MousePos(x, y int32) Event {
	return Event{Kind: EVENT_MOUSE_POS, X: x, Y: y}
}

func MouseWheel(delta int32) Event {
	return Event{Kind: EVENT_MOUSE_WHEEL, Y: delta}
}

func Resized(width, height int32) Event {
	return Event{Kind: EVENT_RESIZED, X: width, Y: height}
}

func Quit() Event {
	return Event{Kind: EVENT_QUIT}
}

func (e Event) String() string {
	switch e.Kind {
	case EVENT_KEY_DOWN:
		return fmt.Sprintf("KeyDown(%s)", e.Code)
	case EVENT_KEY_UP:
		return fmt.Sprintf("KeyUp(%s)", e.Code)
	case EVENT_MOUSE_DOWN:
		return fmt.Sprintf("MouseDown(%d)", e.Button)
	case EVENT_MOUSE_UP:
		return fmt.Sprintf("MouseUp(%d)", e.Button)
	case EVENT_MOUSE_POS:
		return fmt.Sprintf("MousePos(%d, %d)", e.X, e.Y)
	case EVENT_MOUSE_WHEEL:
		return fmt.Sprintf("MouseWheel(%d)", e.Y)
	case EVENT_RESIZED:
		return fmt.Sprintf("Resized(%d, %d)", e.X, e.Y)
	case EVENT_QUIT:
		return "Quit"
	}
	return fmt.Sprintf("Event(%d)", e.Kind)
}

// Contains reports whether the batch holds an event equal to e.
func (b EventBatch) Contains(e Event) bool {
	for _, ev := range b {
		if ev == e {
			return true
		}
	}
	return false
}
