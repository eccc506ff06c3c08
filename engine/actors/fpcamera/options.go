package fpcamera

import "github.com/spaghettifunk/anima-actors/engine/math"

// Option configures a Controller at construction.
type Option func(*Controller)

// WithPosition sets the starting eye position.
func WithPosition(p math.Vec3) Option {
	return func(c *Controller) {
		c.position = p
	}
}

// WithDirection sets the starting facing direction. It does not need to be normalized.
func WithDirection(d math.Vec3) Option {
	return func(c *Controller) {
		c.direction = d
	}
}

// WithSpeed sets the translation speed in units per second.
func WithSpeed(speed float32) Option {
	return func(c *Controller) {
		c.speed = speed
	}
}

// WithAngleSpeed sets the keyboard turn rate in radians per second.
func WithAngleSpeed(speed float32) Option {
	return func(c *Controller) {
		c.angleSpeed = speed
	}
}

// WithMouseSensitivity sets the radians of look rotation per pixel of drag.
func WithMouseSensitivity(sensitivity float32) Option {
	return func(c *Controller) {
		c.sensitivity = sensitivity
	}
}

// WithPitchEpsilon sets how far from straight up/down the pitch is clamped, in radians.
func WithPitchEpsilon(eps float32) Option {
	return func(c *Controller) {
		c.pitchEpsilon = math.Clamp(eps, 0, math.K_HALF_PI)
	}
}

// WithLookDistance sets how far in front of the eye the published target sits.
func WithLookDistance(d float32) Option {
	return func(c *Controller) {
		c.lookDistance = d
	}
}

// WithBindings replaces the binding table. The slice order is the order in
// which active bindings are applied each tick. Mouse look is appended when
// the table lacks it.
func WithBindings(bindings []Binding) Option {
	return func(c *Controller) {
		c.bindings = make([]Binding, 0, len(bindings)+1)
		mouseLook := false
		for _, b := range bindings {
			if b.Kind == MovementMouseLook {
				mouseLook = true
			}
			c.bindings = append(c.bindings, b)
		}
		if !mouseLook {
			c.bindings = append(c.bindings, Binding{Kind: MovementMouseLook})
		}
	}
}

// WithTuning applies every positive field of t.
func WithTuning(t Tuning) Option {
	return func(c *Controller) {
		c.SetTuning(t)
	}
}
