package fpcamera

import (
	m "math"

	"github.com/spaghettifunk/anima-actors/engine/components"
	"github.com/spaghettifunk/anima-actors/engine/core"
	"github.com/spaghettifunk/anima-actors/engine/math"
)

// Tuning holds the values that may change while the controller runs.
type Tuning struct {
	Speed            float32
	AngleSpeed       float32
	MouseSensitivity float32
	LookDistance     float32
}

// Controller is a first-person camera driven by key and mouse-drag input.
//
// Orientation is kept as a committed yaw/pitch pair plus a live offset while
// the primary button is held. Releasing the button folds the offset into the
// committed angles, so the next drag continues from there.
type Controller struct {
	speed        float32
	angleSpeed   float32
	sensitivity  float32
	pitchEpsilon float32
	lookDistance float32

	position  math.Vec3
	direction math.Vec3

	state    Movement
	bindings []Binding

	mousePos math.Vec2i
	clickPos math.Vec2i
	dragging bool

	yaw, pitch             float32
	yawOffset, pitchOffset float32
}

// New creates a controller with the default binding table.
func New(options ...Option) *Controller {
	c := &Controller{
		speed:        10.0,
		angleSpeed:   0.5,
		sensitivity:  0.005,
		pitchEpsilon: 0.1,
		lookDistance: 1.0,
		position:     math.NewVec3(0, 0, -3),
		direction:    math.NewVec3(0, 0, 1),
		bindings:     DefaultBindings(),
	}

	for _, option := range options {
		option(c)
	}

	if c.direction.LengthSquared() < math.K_FLOAT_EPSILON {
		core.LogWarn("first person camera created with a zero direction, facing +Z instead")
		c.direction = math.NewVec3(0, 0, 1)
	}
	c.direction = c.direction.Normalize()
	c.yaw, c.pitch = c.direction.YawPitch()
	if limit := c.pitchLimit(); c.pitch > limit || c.pitch < -limit {
		c.pitch = math.Clamp(c.pitch, -limit, limit)
		c.ComputeOrientation()
	}
	return c
}

func (c *Controller) pitchLimit() float32 {
	return math.K_HALF_PI - c.pitchEpsilon
}

// HandleEvent updates the intent set and drag state from one input event.
// Unknown keys, buttons and event kinds are ignored.
func (c *Controller) HandleEvent(e core.Event) {
	switch e.Kind {
	case core.EVENT_KEY_DOWN:
		c.keyDown(e.Code)
	case core.EVENT_KEY_UP:
		c.keyUp(e.Code)
	case core.EVENT_MOUSE_DOWN:
		c.mouseDown(e.Button)
	case core.EVENT_MOUSE_UP:
		c.mouseUp(e.Button)
	case core.EVENT_MOUSE_POS:
		c.mouseMove(e.X, e.Y)
	}
}

func (c *Controller) keyDown(code core.KeyCode) {
	if code == core.KEY_UNKNOWN {
		return
	}
	for _, b := range c.bindings {
		if b.Key == code {
			c.state.Set(b.Flag())
		}
	}
}

func (c *Controller) keyUp(code core.KeyCode) {
	if code == core.KEY_UNKNOWN {
		return
	}
	for _, b := range c.bindings {
		if b.Key == code {
			c.state.Clear(b.Flag())
		}
	}
}

func (c *Controller) mouseDown(button core.Button) {
	if button != core.BUTTON_PRIMARY || c.dragging {
		return
	}
	c.dragging = true
	c.clickPos = c.mousePos
	c.yawOffset, c.pitchOffset = 0, 0
}

func (c *Controller) mouseUp(button core.Button) {
	if button != core.BUTTON_PRIMARY || !c.dragging {
		return
	}
	c.updateDragOffset()
	c.yaw = wrapAngle(c.yaw + c.yawOffset)
	c.pitch = math.Clamp(c.pitch+c.pitchOffset, -c.pitchLimit(), c.pitchLimit())
	c.yawOffset, c.pitchOffset = 0, 0
	c.dragging = false
	c.state.Clear(MOVEMENT_MOUSE_LOOK)
	c.ComputeOrientation()
}

func (c *Controller) mouseMove(x, y int32) {
	c.mousePos = math.NewVec2i(x, y)
	if c.dragging {
		c.state.Set(MOVEMENT_MOUSE_LOOK)
	} else {
		c.state.Clear(MOVEMENT_MOUSE_LOOK)
	}
}

// updateDragOffset derives the live look offset from the cursor travel since
// the drag started. Screen Y grows downwards, so moving up pitches up.
func (c *Controller) updateDragOffset() {
	dx := float32(c.mousePos.X) - float32(c.clickPos.X)
	dy := float32(c.mousePos.Y) - float32(c.clickPos.Y)
	c.yawOffset = dx * c.sensitivity
	c.pitchOffset = -dy * c.sensitivity
}

// Tick applies every active binding, in registration order, for deltaTime
// seconds. Non-positive deltas are ignored.
func (c *Controller) Tick(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	dt := float32(deltaTime)
	for _, b := range c.bindings {
		if c.state.Has(b.Flag()) {
			c.apply(b.Kind, dt)
		}
	}
}

func (c *Controller) apply(kind MovementKind, dt float32) {
	up := math.NewVec3Up()
	step := c.speed * dt

	switch kind {
	case MovementTurnLeft:
		c.yaw = wrapAngle(c.yaw - c.angleSpeed*dt)
		c.ComputeOrientation()
	case MovementTurnRight:
		c.yaw = wrapAngle(c.yaw + c.angleSpeed*dt)
		c.ComputeOrientation()
	case MovementUp:
		c.position = c.position.Add(up.MulScalar(step))
	case MovementDown:
		c.position = c.position.Sub(up.MulScalar(step))
	case MovementForward:
		c.position = c.position.Add(c.direction.MulScalar(step))
	case MovementBackward:
		c.position = c.position.Sub(c.direction.MulScalar(step))
	case MovementStrafeLeft:
		c.position = c.position.Sub(c.right().MulScalar(step))
	case MovementStrafeRight:
		c.position = c.position.Add(c.right().MulScalar(step))
	case MovementMouseLook:
		if c.dragging {
			c.updateDragOffset()
			c.ComputeOrientation()
		}
	}
}

func (c *Controller) right() math.Vec3 {
	return c.direction.Cross(math.NewVec3Up()).Normalize()
}

// ComputeOrientation rebuilds the facing direction from the committed angles
// plus the live drag offset and returns it. Pitch is kept away from the poles.
func (c *Controller) ComputeOrientation() math.Vec3 {
	yaw, pitch := c.Orientation()
	c.direction = math.NewVec3FromYawPitch(yaw, pitch)
	return c.direction
}

// Publish points camera along the current direction. A nil camera is a
// programming error and panics.
func (c *Controller) Publish(camera *components.Camera) {
	if camera == nil {
		core.LogError("first person camera has nothing to publish to")
		panic(core.ErrCameraMissing)
	}
	target := c.position.Add(c.direction.MulScalar(c.lookDistance))
	camera.LookAt(c.position, target, math.NewVec3Up())
}

// Update runs one frame: events in order, then the active bindings, then the
// orientation.
func (c *Controller) Update(events core.EventBatch, deltaTime float64) {
	for _, e := range events {
		c.HandleEvent(e)
	}
	c.Tick(deltaTime)
	c.ComputeOrientation()
}

// Orientation returns the effective yaw and pitch, live drag offset included.
func (c *Controller) Orientation() (yaw, pitch float32) {
	limit := c.pitchLimit()
	return c.yaw + c.yawOffset, math.Clamp(c.pitch+c.pitchOffset, -limit, limit)
}

// CommittedOrientation returns the yaw and pitch as of the last drag release.
func (c *Controller) CommittedOrientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// DragOffset returns the uncommitted yaw and pitch of the drag in progress.
func (c *Controller) DragOffset() (yaw, pitch float32) {
	return c.yawOffset, c.pitchOffset
}

func (c *Controller) SetTuning(t Tuning) {
	if t.Speed > 0 {
		c.speed = t.Speed
	}
	if t.AngleSpeed > 0 {
		c.angleSpeed = t.AngleSpeed
	}
	if t.MouseSensitivity > 0 {
		c.sensitivity = t.MouseSensitivity
	}
	if t.LookDistance > 0 {
		c.lookDistance = t.LookDistance
	}
}

func (c *Controller) Tuning() Tuning {
	return Tuning{
		Speed:            c.speed,
		AngleSpeed:       c.angleSpeed,
		MouseSensitivity: c.sensitivity,
		LookDistance:     c.lookDistance,
	}
}

func (c *Controller) Position() math.Vec3 {
	return c.position
}

func (c *Controller) Direction() math.Vec3 {
	return c.direction
}

func (c *Controller) State() Movement {
	return c.state
}

func (c *Controller) IsDragging() bool {
	return c.dragging
}

func (c *Controller) MousePosition() math.Vec2i {
	return c.mousePos
}

// DragAnchor returns the cursor position the current drag started at.
// The value is meaningless when IsDragging is false.
func (c *Controller) DragAnchor() math.Vec2i {
	return c.clickPos
}

func (c *Controller) Bindings() []Binding {
	out := make([]Binding, len(c.bindings))
	copy(out, c.bindings)
	return out
}

// wrapAngle keeps an angle in [-Pi, Pi] so long sessions don't lose precision.
func wrapAngle(a float32) float32 {
	return float32(m.Remainder(float64(a), 2*m.Pi))
}
