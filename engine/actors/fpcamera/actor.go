package fpcamera

import (
	"github.com/spaghettifunk/anima-actors/engine/components"
	"github.com/spaghettifunk/anima-actors/engine/core"
	"github.com/spaghettifunk/anima-actors/engine/world"
)

// Actor attaches a Controller to a world. On start it creates the main
// camera; every frame it consumes the event batch and moves that camera.
type Actor struct {
	*Controller

	camera  *components.Camera
	retunes <-chan Tuning
}

var _ world.Actor = &Actor{}

func NewActor(c *Controller) *Actor {
	return &Actor{Controller: c}
}

// WatchTuning makes the actor pick up new tuning values between frames.
func (a *Actor) WatchTuning(ch <-chan Tuning) {
	a.retunes = ch
}

func (a *Actor) OnStart(w *world.World) error {
	g := w.NewGameObject("main camera")
	cam := components.NewCamera()
	g.AddComponent(cam)
	w.SetCurrentCamera(cam)
	a.camera = cam

	a.Publish(cam)
	core.LogInfo("first person camera started at %v facing %v", a.Position(), a.Direction())
	return nil
}

func (a *Actor) OnUpdate(w *world.World) error {
	select {
	case t := <-a.retunes:
		a.SetTuning(t)
		core.LogInfo("first person camera retuned: %+v", a.Tuning())
	default:
	}

	a.Update(w.Events(), w.DeltaTime())

	cam, ok := w.CurrentCamera()
	if !ok {
		core.LogError("world has no current camera")
		panic(core.ErrCameraMissing)
	}
	a.Publish(cam)
	return nil
}

func (a *Actor) Capabilities() world.Capability {
	return world.CapabilityInput
}

// Camera returns the camera created on start, or nil before that.
func (a *Actor) Camera() *components.Camera {
	return a.camera
}
