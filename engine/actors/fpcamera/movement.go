package fpcamera

import (
	"fmt"
	"strings"
)

// Movement is the set of intents currently requested by held input.
type Movement uint32

const (
	MOVEMENT_TURN_LEFT Movement = 1 << iota
	MOVEMENT_TURN_RIGHT
	MOVEMENT_FORWARD
	MOVEMENT_BACKWARD
	MOVEMENT_UP
	MOVEMENT_DOWN
	MOVEMENT_STRAFE_LEFT
	MOVEMENT_STRAFE_RIGHT
	MOVEMENT_MOUSE_LOOK

	MOVEMENT_NONE Movement = 0
)

func (m Movement) Has(flag Movement) bool {
	return flag != 0 && m&flag == flag
}

func (m *Movement) Set(flag Movement) {
	*m |= flag
}

func (m *Movement) Clear(flag Movement) {
	*m &^= flag
}

func (m Movement) String() string {
	if m == MOVEMENT_NONE {
		return "none"
	}
	var names []string
	for k := MovementTurnLeft; k <= MovementMouseLook; k++ {
		if m.Has(k.Flag()) {
			names = append(names, k.String())
		}
	}
	return strings.Join(names, "|")
}

// MovementKind selects the per-frame mutation a binding performs.
type MovementKind uint8

const (
	MovementTurnLeft MovementKind = iota
	MovementTurnRight
	MovementForward
	MovementBackward
	MovementUp
	MovementDown
	MovementStrafeLeft
	MovementStrafeRight
	MovementMouseLook
)

var movementKindNames = [...]string{
	MovementTurnLeft:    "turn_left",
	MovementTurnRight:   "turn_right",
	MovementForward:     "forward",
	MovementBackward:    "backward",
	MovementUp:          "up",
	MovementDown:        "down",
	MovementStrafeLeft:  "strafe_left",
	MovementStrafeRight: "strafe_right",
	MovementMouseLook:   "mouse_look",
}

// Flag returns the intent bit driven by this kind.
func (k MovementKind) Flag() Movement {
	return Movement(1) << k
}

func (k MovementKind) String() string {
	if int(k) < len(movementKindNames) {
		return movementKindNames[k]
	}
	return fmt.Sprintf("movement(%d)", uint8(k))
}

// ParseMovementKind is the inverse of MovementKind.String.
func ParseMovementKind(name string) (MovementKind, error) {
	for k, n := range movementKindNames {
		if n == name {
			return MovementKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMovement, name)
}
