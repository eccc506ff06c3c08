package core

type Button uint16

const (
	BUTTON_LEFT Button = iota
	BUTTON_RIGHT
	BUTTON_MIDDLE
	BUTTON_MAX_BUTTONS
)

// BUTTON_PRIMARY is the button that starts a mouse-look drag.
const BUTTON_PRIMARY = BUTTON_LEFT

// KeyCode is a platform-neutral physical key name, following the
// KeyboardEvent.code naming scheme ("KeyW", "ArrowLeft", ...).
type KeyCode string

const (
	KEY_UNKNOWN KeyCode = ""

	KEY_A KeyCode = "KeyA"
	KEY_B KeyCode = "KeyB"
	KEY_C KeyCode = "KeyC"
	KEY_D KeyCode = "KeyD"
	KEY_E KeyCode = "KeyE"
	KEY_F KeyCode = "KeyF"
	KEY_G KeyCode = "KeyG"
	KEY_H KeyCode = "KeyH"
	KEY_I KeyCode = "KeyI"
	KEY_J KeyCode = "KeyJ"
	KEY_K KeyCode = "KeyK"
	KEY_L KeyCode = "KeyL"
	KEY_M KeyCode = "KeyM"
	KEY_N KeyCode = "KeyN"
	KEY_O KeyCode = "KeyO"
	KEY_P KeyCode = "KeyP"
	KEY_Q KeyCode = "KeyQ"
	KEY_R KeyCode = "KeyR"
	KEY_S KeyCode = "KeyS"
	KEY_T KeyCode = "KeyT"
	KEY_U KeyCode = "KeyU"
	KEY_V KeyCode = "KeyV"
	KEY_W KeyCode = "KeyW"
	KEY_X KeyCode = "KeyX"
	KEY_Y KeyCode = "KeyY"
	KEY_Z KeyCode = "KeyZ"

	KEY_SPACE  KeyCode = "Space"
	KEY_ESCAPE KeyCode = "Escape"
	KEY_ENTER  KeyCode = "Enter"
	KEY_TAB    KeyCode = "Tab"
	KEY_LSHIFT KeyCode = "ShiftLeft"
	KEY_RSHIFT KeyCode = "ShiftRight"
	KEY_LEFT   KeyCode = "ArrowLeft"
	KEY_RIGHT  KeyCode = "ArrowRight"
	KEY_UP     KeyCode = "ArrowUp"
	KEY_DOWN   KeyCode = "ArrowDown"
)

// KeyCodeForLetter returns the code of an ASCII letter key, or KEY_UNKNOWN.
func KeyCodeForLetter(r rune) KeyCode {
	switch {
	case r >= 'a' && r <= 'z':
		r -= 'a' - 'A'
	case r >= 'A' && r <= 'Z':
	default:
		return KEY_UNKNOWN
	}
	return KeyCode("Key" + string(r))
}
