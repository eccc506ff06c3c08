package fpcamera

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/anima-actors/engine/core"
)

var (
	ErrUnknownMovement = errors.New("unknown movement")
	ErrMouseLookKey    = errors.New("mouse_look cannot be bound to a key")
)

// Binding associates a key with the movement it drives while held.
// MouseLook is driven by the primary mouse button drag and carries no key.
type Binding struct {
	Kind MovementKind
	Key  core.KeyCode
}

func (b Binding) Flag() Movement {
	return b.Kind.Flag()
}

// DefaultBindings returns the binding table in registration order.
func DefaultBindings() []Binding {
	return []Binding{
		{MovementTurnLeft, core.KEY_A},
		{MovementTurnRight, core.KEY_D},
		{MovementUp, core.KEY_E},
		{MovementDown, core.KEY_C},
		{MovementForward, core.KEY_W},
		{MovementBackward, core.KEY_S},
		{MovementStrafeLeft, core.KEY_Z},
		{MovementStrafeRight, core.KEY_X},
		{MovementMouseLook, core.KEY_UNKNOWN},
	}
}

// BindingsFromNames rebinds the default table using movement name -> key code
// overrides (as read from config). Registration order is never changed.
func BindingsFromNames(overrides map[string]string) ([]Binding, error) {
	bindings := DefaultBindings()
	for name, key := range overrides {
		kind, err := ParseMovementKind(name)
		if err != nil {
			return nil, err
		}
		if kind == MovementMouseLook {
			return nil, fmt.Errorf("%w: %q", ErrMouseLookKey, key)
		}
		for i := range bindings {
			if bindings[i].Kind == kind {
				bindings[i].Key = core.KeyCode(key)
			}
		}
	}
	return bindings, nil
}
