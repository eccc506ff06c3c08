package fpcamera

import (
	"errors"
	m "math"
	"testing"

	"github.com/spaghettifunk/anima-actors/engine/components"
	"github.com/spaghettifunk/anima-actors/engine/core"
	"github.com/spaghettifunk/anima-actors/engine/math"
)

const tolerance = 1e-5

func approx(a, b float32) bool {
	return float32(m.Abs(float64(a-b))) <= tolerance
}

func assertUnit(t *testing.T, v math.Vec3) {
	t.Helper()
	if l := v.Length(); !approx(l, 1) {
		t.Fatalf("direction %v has length %v, want 1", v, l)
	}
}

// startDrag moves the cursor to (x, y) and presses the primary button there.
func startDrag(c *Controller, x, y int32) {
	c.HandleEvent(core.MousePos(x, y))
	c.HandleEvent(core.MouseDown(core.BUTTON_PRIMARY))
}

func TestKeyParity(t *testing.T) {
	cases := []struct {
		name   string
		events []core.Event
		want   bool
	}{
		{"down", []core.Event{core.KeyDown(core.KEY_W)}, true},
		{"down_up", []core.Event{core.KeyDown(core.KEY_W), core.KeyUp(core.KEY_W)}, false},
		{"double_down", []core.Event{core.KeyDown(core.KEY_W), core.KeyDown(core.KEY_W)}, true},
		{"double_down_single_up", []core.Event{core.KeyDown(core.KEY_W), core.KeyDown(core.KEY_W), core.KeyUp(core.KEY_W)}, false},
		{"up_only", []core.Event{core.KeyUp(core.KEY_W)}, false},
		{"up_down", []core.Event{core.KeyUp(core.KEY_W), core.KeyDown(core.KEY_W)}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := New()
			for _, e := range c.events {
				ctrl.HandleEvent(e)
			}
			if got := ctrl.State().Has(MOVEMENT_FORWARD); got != c.want {
				t.Fatalf("forward active = %v, want %v (state %s)", got, c.want, ctrl.State())
			}
		})
	}
}

func TestIgnoredInput(t *testing.T) {
	ctrl := New()
	ctrl.HandleEvent(core.KeyDown("KeyQ"))
	ctrl.HandleEvent(core.KeyDown(core.KEY_UNKNOWN))
	ctrl.HandleEvent(core.MouseDown(core.BUTTON_RIGHT))
	ctrl.HandleEvent(core.MouseWheel(3))
	ctrl.HandleEvent(core.Resized(800, 600))
	if ctrl.State() != MOVEMENT_NONE {
		t.Fatalf("state = %s, want none", ctrl.State())
	}
	if ctrl.IsDragging() {
		t.Fatalf("secondary button must not start a drag")
	}
}

func TestSimultaneousIntents(t *testing.T) {
	ctrl := New()
	ctrl.HandleEvent(core.KeyDown(core.KEY_W))
	ctrl.HandleEvent(core.KeyDown(core.KEY_A))
	ctrl.HandleEvent(core.KeyDown(core.KEY_E))
	want := MOVEMENT_FORWARD | MOVEMENT_TURN_LEFT | MOVEMENT_UP
	if ctrl.State() != want {
		t.Fatalf("state = %s, want %s", ctrl.State(), want)
	}
	ctrl.HandleEvent(core.KeyUp(core.KEY_A))
	if ctrl.State() != MOVEMENT_FORWARD|MOVEMENT_UP {
		t.Fatalf("state after KeyUp(KeyA) = %s", ctrl.State())
	}
}

func TestTickZeroIsNoop(t *testing.T) {
	ctrl := New()
	for _, code := range []core.KeyCode{core.KEY_W, core.KEY_A, core.KEY_E, core.KEY_X} {
		ctrl.HandleEvent(core.KeyDown(code))
	}
	startDrag(ctrl, 10, 10)
	ctrl.HandleEvent(core.MousePos(400, -300))

	pos, dir := ctrl.Position(), ctrl.Direction()
	ctrl.Tick(0)
	if ctrl.Position() != pos || ctrl.Direction() != dir {
		t.Fatalf("Tick(0) moved the camera: %v/%v -> %v/%v", pos, dir, ctrl.Position(), ctrl.Direction())
	}
	ctrl.Tick(-1)
	if ctrl.Position() != pos || ctrl.Direction() != dir {
		t.Fatalf("negative tick moved the camera")
	}
}

func TestForwardScenario(t *testing.T) {
	ctrl := New(
		WithPosition(math.NewVec3(0, 0, -3)),
		WithDirection(math.NewVec3(0, 0, 1)),
		WithSpeed(10),
	)
	ctrl.HandleEvent(core.KeyDown(core.KEY_W))
	ctrl.Tick(1.0)

	if got := ctrl.Position(); !got.Compare(math.NewVec3(0, 0, 7), tolerance) {
		t.Fatalf("position = %v, want (0,0,7)", got)
	}
	if got := ctrl.Direction(); !got.Compare(math.NewVec3(0, 0, 1), tolerance) {
		t.Fatalf("direction = %v, want (0,0,1)", got)
	}
}

func TestTranslationBindings(t *testing.T) {
	cases := []struct {
		name string
		key  core.KeyCode
		want math.Vec3
	}{
		{"backward", core.KEY_S, math.NewVec3(0, 0, -5)},
		{"up", core.KEY_E, math.NewVec3(0, 2, -3)},
		{"down", core.KEY_C, math.NewVec3(0, -2, -3)},
		// Facing +Z with +Y up, the right hand side is -X.
		{"strafe_left", core.KEY_Z, math.NewVec3(2, 0, -3)},
		{"strafe_right", core.KEY_X, math.NewVec3(-2, 0, -3)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := New(WithSpeed(4))
			ctrl.HandleEvent(core.KeyDown(c.key))
			ctrl.Tick(0.5)
			if got := ctrl.Position(); !got.Compare(c.want, tolerance) {
				t.Fatalf("position = %v, want %v", got, c.want)
			}
		})
	}
}

func TestTurnBindings(t *testing.T) {
	ctrl := New(WithAngleSpeed(0.5))
	yaw0, _ := ctrl.Orientation()

	ctrl.HandleEvent(core.KeyDown(core.KEY_D))
	ctrl.Tick(1.0)
	yaw, pitch := ctrl.Orientation()
	if !approx(yaw, yaw0+0.5) || !approx(pitch, 0) {
		t.Fatalf("after turning right yaw = %v pitch = %v, want %v, 0", yaw, pitch, yaw0+0.5)
	}
	if ctrl.Direction().X >= 0 {
		t.Fatalf("turning right from +Z should swing towards -X, got %v", ctrl.Direction())
	}
	assertUnit(t, ctrl.Direction())

	ctrl.HandleEvent(core.KeyUp(core.KEY_D))
	ctrl.HandleEvent(core.KeyDown(core.KEY_A))
	ctrl.Tick(1.0)
	if yaw, _ := ctrl.Orientation(); !approx(yaw, yaw0) {
		t.Fatalf("turning back left yaw = %v, want %v", yaw, yaw0)
	}
}

func TestDirectionStaysUnit(t *testing.T) {
	ctrl := New(WithDirection(math.NewVec3(3, 1, 2)))
	assertUnit(t, ctrl.Direction())

	frames := []core.EventBatch{
		{core.KeyDown(core.KEY_A), core.KeyDown(core.KEY_W)},
		{core.MousePos(0, 0), core.MouseDown(core.BUTTON_PRIMARY)},
		{core.MousePos(5000, -9000)},
		{core.KeyDown(core.KEY_Z), core.MousePos(-700, 12000)},
		{core.MouseUp(core.BUTTON_PRIMARY), core.KeyUp(core.KEY_A)},
		{core.KeyDown(core.KEY_D)},
	}
	for i, batch := range frames {
		for _, e := range batch {
			ctrl.HandleEvent(e)
		}
		ctrl.Tick(0.016 * float64(i+1))
		assertUnit(t, ctrl.Direction())
		assertUnit(t, ctrl.ComputeOrientation())
	}
	// A long pause only scales motion linearly.
	ctrl.Tick(3600)
	assertUnit(t, ctrl.Direction())
}

func TestPitchClampedDuringDrag(t *testing.T) {
	limit := math.K_HALF_PI - 0.1
	ctrl := New()
	startDrag(ctrl, 100, 100)
	for _, y := range []int32{-100000, 100000, -37, 1 << 30, -(1 << 30), 100} {
		ctrl.HandleEvent(core.MousePos(100, y))
		ctrl.Tick(0.016)
		_, pitch := ctrl.Orientation()
		if pitch < -limit-tolerance || pitch > limit+tolerance {
			t.Fatalf("pitch %v escaped [-%v, %v] at y=%d", pitch, limit, limit, y)
		}
		assertUnit(t, ctrl.Direction())
	}

	// Releasing far above commits a clamped pitch.
	ctrl.HandleEvent(core.MousePos(100, -100000))
	ctrl.HandleEvent(core.MouseUp(core.BUTTON_PRIMARY))
	if _, pitch := ctrl.CommittedOrientation(); !approx(pitch, limit) {
		t.Fatalf("committed pitch = %v, want %v", pitch, limit)
	}
}

func TestDragStateMachine(t *testing.T) {
	t.Run("mouse_up_without_down", func(t *testing.T) {
		ctrl := New()
		ctrl.HandleEvent(core.MousePos(30, 40))
		yaw, pitch := ctrl.CommittedOrientation()
		dir := ctrl.Direction()
		ctrl.HandleEvent(core.MouseUp(core.BUTTON_PRIMARY))
		if ctrl.IsDragging() || ctrl.Direction() != dir {
			t.Fatalf("MouseUp while idle changed state")
		}
		if y, p := ctrl.CommittedOrientation(); y != yaw || p != pitch {
			t.Fatalf("MouseUp while idle committed an orientation")
		}
	})

	t.Run("mouse_down_while_dragging", func(t *testing.T) {
		ctrl := New()
		startDrag(ctrl, 10, 20)
		ctrl.HandleEvent(core.MousePos(50, 60))
		ctrl.HandleEvent(core.MouseDown(core.BUTTON_PRIMARY))
		if !ctrl.IsDragging() {
			t.Fatalf("drag should still be active")
		}
		if got := ctrl.DragAnchor(); got != math.NewVec2i(10, 20) {
			t.Fatalf("anchor = %v, want (10,20)", got)
		}
	})

	t.Run("mouse_look_follows_drag", func(t *testing.T) {
		ctrl := New()
		ctrl.HandleEvent(core.MousePos(1, 1))
		if ctrl.State().Has(MOVEMENT_MOUSE_LOOK) {
			t.Fatalf("mouse look set without a drag")
		}
		startDrag(ctrl, 1, 1)
		ctrl.HandleEvent(core.MousePos(2, 2))
		if !ctrl.State().Has(MOVEMENT_MOUSE_LOOK) {
			t.Fatalf("mouse look not set while dragging")
		}
		ctrl.HandleEvent(core.MouseUp(core.BUTTON_PRIMARY))
		if ctrl.State().Has(MOVEMENT_MOUSE_LOOK) || ctrl.IsDragging() {
			t.Fatalf("release should end the drag and mouse look")
		}
	})
}

func TestDragYawScenario(t *testing.T) {
	ctrl := New(WithMouseSensitivity(0.005))
	committedYaw, committedPitch := ctrl.CommittedOrientation()

	startDrag(ctrl, 100, 100)
	ctrl.HandleEvent(core.MousePos(150, 100))
	ctrl.Tick(0.016)

	yawOff, pitchOff := ctrl.DragOffset()
	if !approx(yawOff, 0.25) || pitchOff != 0 {
		t.Fatalf("drag offset = (%v, %v), want (0.25, 0)", yawOff, pitchOff)
	}
	yaw, pitch := ctrl.Orientation()
	if !approx(yaw, committedYaw+0.25) || !approx(pitch, committedPitch) {
		t.Fatalf("orientation = (%v, %v), want (%v, %v)", yaw, pitch, committedYaw+0.25, committedPitch)
	}
	if y, _ := ctrl.CommittedOrientation(); y != committedYaw {
		t.Fatalf("committed yaw changed before release")
	}
}

func TestDragExtremeCursorTravel(t *testing.T) {
	ctrl := New(WithMouseSensitivity(0.005))

	startDrag(ctrl, -2_000_000_000, 0)
	ctrl.HandleEvent(core.MousePos(2_000_000_000, 0))
	ctrl.Tick(0.016)

	// 4e9 pixels of travel, beyond the int32 range.
	yawOff, _ := ctrl.DragOffset()
	want := float32(2e7)
	if yawOff <= 0 || float32(m.Abs(float64(yawOff-want)))/want > 1e-5 {
		t.Fatalf("yaw offset = %v, want %v", yawOff, want)
	}
}

func TestDragCommitScenario(t *testing.T) {
	ctrl := New(WithMouseSensitivity(0.005))
	yaw0, _ := ctrl.CommittedOrientation()

	startDrag(ctrl, 100, 100)
	ctrl.HandleEvent(core.MousePos(150, 100))
	ctrl.Tick(0.016)
	ctrl.HandleEvent(core.MouseUp(core.BUTTON_PRIMARY))

	yaw1, _ := ctrl.CommittedOrientation()
	if !approx(yaw1, yaw0+0.25) {
		t.Fatalf("committed yaw = %v, want %v", yaw1, yaw0+0.25)
	}
	if yo, po := ctrl.DragOffset(); yo != 0 || po != 0 {
		t.Fatalf("drag offset not reset on commit: (%v, %v)", yo, po)
	}

	// The second drag is measured from its own anchor, on top of the new base.
	ctrl.HandleEvent(core.MouseDown(core.BUTTON_PRIMARY))
	if got := ctrl.DragAnchor(); got != math.NewVec2i(150, 100) {
		t.Fatalf("second anchor = %v, want (150,100)", got)
	}
	ctrl.HandleEvent(core.MousePos(170, 80))
	ctrl.Tick(0.016)
	yaw, pitch := ctrl.Orientation()
	if !approx(yaw, yaw1+0.1) || !approx(pitch, 0.1) {
		t.Fatalf("orientation = (%v, %v), want (%v, 0.1)", yaw, pitch, yaw1+0.1)
	}
}

func TestCommitWithoutTick(t *testing.T) {
	ctrl := New(WithMouseSensitivity(0.01))
	yaw0, _ := ctrl.CommittedOrientation()
	ctrl.Update(core.EventBatch{
		core.MousePos(0, 0),
		core.MouseDown(core.BUTTON_PRIMARY),
		core.MousePos(10, 0),
		core.MouseUp(core.BUTTON_PRIMARY),
	}, 0)
	if yaw, _ := ctrl.CommittedOrientation(); !approx(yaw, yaw0+0.1) {
		t.Fatalf("committed yaw = %v, want %v", yaw, yaw0+0.1)
	}
}

func TestPublish(t *testing.T) {
	ctrl := New(WithLookDistance(5))
	cam := components.NewCamera()
	ctrl.Publish(cam)
	if cam.Updates != 1 {
		t.Fatalf("LookAt calls = %d, want 1", cam.Updates)
	}
	if cam.Position != ctrl.Position() {
		t.Fatalf("eye = %v, want %v", cam.Position, ctrl.Position())
	}
	if !cam.Target.Compare(math.NewVec3(0, 0, 2), tolerance) {
		t.Fatalf("target = %v, want (0,0,2)", cam.Target)
	}
	if cam.Up != math.NewVec3Up() {
		t.Fatalf("up = %v, want world up", cam.Up)
	}
}

func TestPublishWithoutCameraPanics(t *testing.T) {
	var typedNil *components.Camera
	tests := []struct {
		name   string
		camera *components.Camera
	}{
		{name: "untyped_nil", camera: nil},
		{name: "typed_nil", camera: typedNil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, core.ErrCameraMissing) {
					t.Fatalf("recovered %v, want ErrCameraMissing", r)
				}
			}()
			New().Publish(tt.camera)
		})
	}
}

func TestZeroDirectionFallsBack(t *testing.T) {
	ctrl := New(WithDirection(math.NewVec3Zero()))
	if !ctrl.Direction().Compare(math.NewVec3(0, 0, 1), tolerance) {
		t.Fatalf("direction = %v, want +Z", ctrl.Direction())
	}
}

func TestVerticalDirectionIsClamped(t *testing.T) {
	ctrl := New(WithDirection(math.NewVec3(0, 1, 0)))
	_, pitch := ctrl.Orientation()
	if !approx(pitch, math.K_HALF_PI-0.1) {
		t.Fatalf("pitch = %v, want clamped to %v", pitch, math.K_HALF_PI-0.1)
	}
	assertUnit(t, ctrl.Direction())
}

func TestSetTuning(t *testing.T) {
	ctrl := New()
	ctrl.SetTuning(Tuning{Speed: 2, MouseSensitivity: 0.01})
	got := ctrl.Tuning()
	if got.Speed != 2 || got.MouseSensitivity != 0.01 || got.AngleSpeed != 0.5 || got.LookDistance != 1 {
		t.Fatalf("Tuning() = %+v", got)
	}
}
