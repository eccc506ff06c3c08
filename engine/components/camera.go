package components

import (
	"github.com/spaghettifunk/anima-actors/engine/math"
)

/**
 * @brief Represents a render camera. Actors drive it through LookAt
 * once per frame; the renderer only ever reads the view matrix.
 */
type Camera struct {
	/** @brief The eye position of this camera. */
	Position math.Vec3
	/** @brief The point the camera looks at. */
	Target math.Vec3
	/** @brief The up vector used to build the view basis. */
	Up math.Vec3
	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	IsDirty bool
	/**
	 * @brief The view matrix of this camera.
	 * NOTE: Do not read this directly, use GetView() instead
	 * so the view matrix is recalculated when needed.
	 */
	ViewMatrix math.Mat4
	// Updates counts LookAt calls, mostly useful for debugging stalled actors.
	Updates uint64
}

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.Position = math.NewVec3Zero()
	c.Target = math.NewVec3(0, 0, -1)
	c.Up = math.NewVec3Up()
	c.IsDirty = false
	c.ViewMatrix = math.NewMat4Identity()
	c.Updates = 0
}

// LookAt points the camera from eye towards target.
func (c *Camera) LookAt(eye, target, up math.Vec3) {
	c.Position = eye
	c.Target = target
	c.Up = up
	c.IsDirty = true
	c.Updates++
}

func (c *Camera) GetPosition() math.Vec3 {
	return c.Position
}

func (c *Camera) GetView() math.Mat4 {
	if c.IsDirty {
		c.ViewMatrix = math.NewMat4LookAt(c.Position, c.Target, c.Up)
		c.IsDirty = false
	}
	return c.ViewMatrix
}

func (c *Camera) Forward() math.Vec3 {
	view := c.GetView()
	return view.Forward()
}
