package world

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spaghettifunk/anima-actors/engine/components"
	"github.com/spaghettifunk/anima-actors/engine/core"
)

// Capability flags advertise what an actor needs from the world.
type Capability uint8

const (
	CapabilityNone Capability = 0
	// The actor reads the per-frame event batch. Input actors update before
	// every other actor so cameras are placed before anything reads them.
	CapabilityInput Capability = 1 << 0
)

func (c Capability) Has(other Capability) bool {
	return c&other == other
}

// Actor is a script attached to a game object.
type Actor interface {
	// OnStart runs once, on the first frame after the actor was attached.
	OnStart(w *World) error
	// OnUpdate runs every frame after the actor started.
	OnUpdate(w *World) error
	Capabilities() Capability
}

type attachedActor struct {
	owner   *GameObject
	actor   Actor
	started bool
}

// World owns the game objects of a scene and steps their actors.
// It is driven from a single goroutine.
type World struct {
	objects []*GameObject
	byID    map[uuid.UUID]*GameObject
	actors  []*attachedActor

	events    core.EventBatch
	deltaTime float64
	frame     uint64

	camera *components.Camera
}

func New() *World {
	return &World{
		byID: make(map[uuid.UUID]*GameObject),
	}
}

// NewGameObject creates an empty game object and adds it to the world.
func (w *World) NewGameObject(name string) *GameObject {
	g := &GameObject{
		ID:   uuid.New(),
		Name: name,
	}
	w.objects = append(w.objects, g)
	w.byID[g.ID] = g
	core.LogDebug("game object %q created with id %s", name, g.ID)
	return g
}

// AddActor attaches actor to g. It starts on the next Update.
func (w *World) AddActor(g *GameObject, actor Actor) {
	w.actors = append(w.actors, &attachedActor{owner: g, actor: actor})
}

func (w *World) Find(id uuid.UUID) (*GameObject, bool) {
	g, ok := w.byID[id]
	return g, ok
}

func (w *World) GameObjects() []*GameObject {
	return w.objects
}

// Events returns the batch delivered for the current frame.
func (w *World) Events() core.EventBatch {
	return w.events
}

// DeltaTime returns the seconds elapsed since the previous frame.
func (w *World) DeltaTime() float64 {
	return w.deltaTime
}

func (w *World) Frame() uint64 {
	return w.frame
}

// CurrentCamera returns the camera the renderer should use, if any actor registered one.
func (w *World) CurrentCamera() (*components.Camera, bool) {
	return w.camera, w.camera != nil
}

func (w *World) SetCurrentCamera(c *components.Camera) {
	w.camera = c
}

// Update delivers one frame: pending actors are started, then every started
// actor is updated. Actors attached while this runs start on the next frame.
func (w *World) Update(events core.EventBatch, deltaTime float64) error {
	w.events = events
	w.deltaTime = deltaTime
	w.frame++

	actors := w.actors
	for _, a := range actors {
		if a.started {
			continue
		}
		if err := a.actor.OnStart(w); err != nil {
			return fmt.Errorf("starting actor on %q: %w", a.owner.Name, err)
		}
		a.started = true
	}

	for _, pass := range []bool{true, false} {
		for _, a := range actors {
			if a.actor.Capabilities().Has(CapabilityInput) != pass {
				continue
			}
			if err := a.actor.OnUpdate(w); err != nil {
				return fmt.Errorf("updating actor on %q: %w", a.owner.Name, err)
			}
		}
	}
	return nil
}

// Reset drops every game object, actor and the current camera.
func (w *World) Reset() {
	w.objects = nil
	w.byID = make(map[uuid.UUID]*GameObject)
	w.actors = nil
	w.events = nil
	w.deltaTime = 0
	w.camera = nil
}
